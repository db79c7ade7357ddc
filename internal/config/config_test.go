package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.CommandsPath(); got != "commands" {
		t.Errorf("CommandsPath() = %q, want %q", got, "commands")
	}
	if got := cfg.CategoriesPath(); got != "categories" {
		t.Errorf("CategoriesPath() = %q, want %q", got, "categories")
	}
	if got := cfg.ManifestPath(); got != "velen.yaml" {
		t.Errorf("ManifestPath() = %q, want %q", got, "velen.yaml")
	}
}

func TestLoad_FromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".velen.yaml")
	content := "commands:\n  path: src/commands\ncategories:\n  path: src/categories\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.CommandsPath(); got != "src/commands" {
		t.Errorf("CommandsPath() = %q, want %q", got, "src/commands")
	}
	if got := cfg.CategoriesPath(); got != "src/categories" {
		t.Errorf("CategoriesPath() = %q, want %q", got, "src/categories")
	}
	if got := cfg.ManifestPath(); got != "velen.yaml" {
		t.Errorf("ManifestPath() = %q, want default", got)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".velen.yaml")
	if err := os.WriteFile(file, []byte("commands: [oops\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(file); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoad_IgnoresEnvironment(t *testing.T) {
	t.Setenv("VELEN_COMMANDS_PATH", "from-env")
	t.Setenv("COMMANDS_PATH", "from-env")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.CommandsPath(); got != "commands" {
		t.Errorf("CommandsPath() = %q, environment should not be read", got)
	}
}

func TestSet_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", ".velen.yaml")
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := cfg.Set(KeyCommandsPath, "bot/commands"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	reloaded, err := Load(file)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if got := reloaded.CommandsPath(); got != "bot/commands" {
		t.Errorf("CommandsPath() after reload = %q, want %q", got, "bot/commands")
	}
	if got := reloaded.Get(KeyCommandsPath); got != "bot/commands" {
		t.Errorf("Get() after reload = %q", got)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".velen.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	err = cfg.Set("mirror", "https://example.com")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("unexpected error: %v", err)
	}
}
