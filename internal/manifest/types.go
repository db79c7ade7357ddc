package manifest

// File is the top-level document of a batch manifest.
type File struct {
	Requires   string          `yaml:"requires,omitempty" json:"requires,omitempty"`
	Categories []CategoryEntry `yaml:"categories,omitempty" json:"categories,omitempty"`
	Commands   []CommandEntry  `yaml:"commands,omitempty" json:"commands,omitempty"`
}

// CommandEntry describes one command in a manifest.
type CommandEntry struct {
	Name        string   `yaml:"name" json:"name"`
	Model       string   `yaml:"model" json:"model"`
	Handler     string   `yaml:"handler" json:"handler"`
	Desc        *string  `yaml:"desc,omitempty" json:"desc,omitempty"`
	Category    *string  `yaml:"category,omitempty" json:"category,omitempty"`
	Cooldown    *int     `yaml:"cooldown,omitempty" json:"cooldown,omitempty"`
	Middlewares []string `yaml:"middlewares,omitempty" json:"middlewares,omitempty"`
	Afterwares  []string `yaml:"afterwares,omitempty" json:"afterwares,omitempty"`
	Shortcuts   []string `yaml:"shortcuts,omitempty" json:"shortcuts,omitempty"`
	Usages      []string `yaml:"usages,omitempty" json:"usages,omitempty"`
	Path        string   `yaml:"path,omitempty" json:"path,omitempty"`
}

// CategoryEntry describes one category in a manifest.
type CategoryEntry struct {
	Name        string   `yaml:"name" json:"name"`
	Desc        *string  `yaml:"desc,omitempty" json:"desc,omitempty"`
	Middlewares []string `yaml:"middlewares,omitempty" json:"middlewares,omitempty"`
	Afterwares  []string `yaml:"afterwares,omitempty" json:"afterwares,omitempty"`
	Path        string   `yaml:"path,omitempty" json:"path,omitempty"`
}

// Defaults supplies output directories for entries that omit a path.
type Defaults struct {
	CommandsPath   string
	CategoriesPath string
}
