package entity

// Record is the capability set shared by Command and Category.
type Record interface {
	Kind() Kind
	// RecordName is the declaration name and the output file's base name.
	RecordName() string
	// Dir is the configured output directory, before normalization.
	Dir() string
	// TypeName is the value rendered after the colon in the header.
	TypeName() string
}

// Command describes one command declaration.
type Command struct {
	Name        string
	Model       Model
	Handler     string
	Desc        *string
	Category    *string
	Cooldown    *int // milliseconds
	Middlewares []string
	Afterwares  []string
	Shortcuts   []string
	Usages      []string
	Path        string
}

// Category describes one category declaration.
type Category struct {
	Name        string
	Desc        *string
	Middlewares []string
	Afterwares  []string
	Path        string
}

var (
	_ Record = (*Command)(nil)
	_ Record = (*Category)(nil)
)

func (c *Command) Kind() Kind         { return KindCommand }
func (c *Command) RecordName() string { return c.Name }
func (c *Command) TypeName() string   { return c.Model.String() }

// Dir returns Path, falling back to "commands".
func (c *Command) Dir() string {
	if c.Path == "" {
		return KindCommand.DefaultPath()
	}
	return c.Path
}

// Validate reports the first missing required field.
func (c *Command) Validate() error {
	switch {
	case c.Name == "":
		return &MissingFieldError{Kind: KindCommand, Field: "name"}
	case c.Model == "":
		return &MissingFieldError{Kind: KindCommand, Field: "model"}
	case c.Handler == "":
		return &MissingFieldError{Kind: KindCommand, Field: "handler"}
	}
	if _, err := ParseModel(string(c.Model)); err != nil {
		return err
	}
	return nil
}

func (c *Category) Kind() Kind         { return KindCategory }
func (c *Category) RecordName() string { return c.Name }
func (c *Category) TypeName() string   { return KindCategory.String() }

// Dir returns Path, falling back to "categories".
func (c *Category) Dir() string {
	if c.Path == "" {
		return KindCategory.DefaultPath()
	}
	return c.Path
}

// Validate reports a missing name.
func (c *Category) Validate() error {
	if c.Name == "" {
		return &MissingFieldError{Kind: KindCategory, Field: "name"}
	}
	return nil
}
