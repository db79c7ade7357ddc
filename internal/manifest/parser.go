package manifest

import (
	"fmt"
	"os"

	"github.com/velen-dev/velen/internal/entity"
	"go.yaml.in/yaml/v3"
)

// Parse decodes manifest YAML without schema validation.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &f, nil
}

// ParseFile reads and decodes the manifest at path.
func ParseFile(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Records converts every entry into a validated entity record, categories
// first and then commands, each group in file order.
func (f *File) Records(d Defaults) ([]entity.Record, error) {
	records := make([]entity.Record, 0, len(f.Categories)+len(f.Commands))

	for i, e := range f.Categories {
		cat := &entity.Category{
			Name:        e.Name,
			Desc:        e.Desc,
			Middlewares: e.Middlewares,
			Afterwares:  e.Afterwares,
			Path:        firstNonEmpty(e.Path, d.CategoriesPath),
		}
		if err := cat.Validate(); err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		records = append(records, cat)
	}

	for i, e := range f.Commands {
		if e.Model == "" {
			return nil, fmt.Errorf("commands[%d]: %w", i, &entity.MissingFieldError{Kind: entity.KindCommand, Field: "model"})
		}
		model, err := entity.ParseModel(e.Model)
		if err != nil {
			return nil, fmt.Errorf("commands[%d]: %w", i, err)
		}
		cmd := &entity.Command{
			Name:        e.Name,
			Model:       model,
			Handler:     e.Handler,
			Desc:        e.Desc,
			Category:    e.Category,
			Cooldown:    e.Cooldown,
			Middlewares: e.Middlewares,
			Afterwares:  e.Afterwares,
			Shortcuts:   e.Shortcuts,
			Usages:      e.Usages,
			Path:        firstNonEmpty(e.Path, d.CommandsPath),
		}
		if err := cmd.Validate(); err != nil {
			return nil, fmt.Errorf("commands[%d]: %w", i, err)
		}
		records = append(records, cmd)
	}

	return records, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
