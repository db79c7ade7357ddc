// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	ConfigFile   string `yaml:"config_file"`
	ManifestFile string `yaml:"manifest_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "velen",
			DisplayName:  "Velen",
			Description:  "Scaffolding generator for Velen declarations",
			ConfigFile:   ".velen.yaml",
			ManifestFile: "velen.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "velen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigFile returns the project-local settings file name (e.g., ".velen.yaml").
func ConfigFile() string { load(); return defaults.ConfigFile }

// ManifestFile returns the default batch manifest file name (e.g., "velen.yaml").
func ManifestFile() string { load(); return defaults.ManifestFile }
