package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
	"github.com/velen-dev/velen/internal/branding"
	"github.com/velen-dev/velen/internal/entity"
)

const fileType = "yaml"

// Setting keys.
const (
	KeyCommandsPath   = "commands.path"
	KeyCategoriesPath = "categories.path"
	KeyManifest       = "manifest"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyCommandsPath, KeyCategoriesPath, KeyManifest}

// Config wraps a viper instance bound to one settings file.
type Config struct {
	v    *viper.Viper
	file string
}

// FilePath returns the default settings file path, relative to the working
// directory.
func FilePath() string {
	return filepath.Join(".", branding.ConfigFile())
}

// Load reads settings from file, or FilePath() when file is empty. A missing
// file is not an error; built-in defaults apply.
func Load(file string) (*Config, error) {
	if file == "" {
		file = FilePath()
	}

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType(fileType)
	v.SetDefault(KeyCommandsPath, entity.KindCommand.DefaultPath())
	v.SetDefault(KeyCategoriesPath, entity.KindCategory.DefaultPath())
	v.SetDefault(KeyManifest, branding.ManifestFile())

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("reading config file %s: %w", file, err)
	}

	return &Config{v: v, file: file}, nil
}

// File returns the settings file this Config reads and writes.
func (c *Config) File() string { return c.file }

// Get returns a setting by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// CommandsPath returns the default output directory for commands.
func (c *Config) CommandsPath() string { return c.v.GetString(KeyCommandsPath) }

// CategoriesPath returns the default output directory for categories.
func (c *Config) CategoriesPath() string { return c.v.GetString(KeyCategoriesPath) }

// ManifestPath returns the default batch manifest path.
func (c *Config) ManifestPath() string { return c.v.GetString(KeyManifest) }

// Set writes a known key and saves the settings file.
func (c *Config) Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}

	c.v.Set(key, value)

	if dir := filepath.Dir(c.file); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory %s: %w", dir, err)
		}
	}

	if err := c.v.WriteConfigAs(c.file); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
