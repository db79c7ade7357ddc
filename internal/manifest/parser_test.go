package manifest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/velen-dev/velen/internal/entity"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

var testDefaults = Defaults{CommandsPath: "commands", CategoriesPath: "categories"}

func TestParseFile_Full(t *testing.T) {
	f, err := ParseFile(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if f.Requires != ">= 1.0.0" {
		t.Errorf("Requires = %q", f.Requires)
	}
	if len(f.Categories) != 2 {
		t.Fatalf("Categories len = %d, want 2", len(f.Categories))
	}
	if len(f.Commands) != 2 {
		t.Fatalf("Commands len = %d, want 2", len(f.Commands))
	}

	ban := f.Commands[1]
	if ban.Cooldown == nil || *ban.Cooldown != 5000 {
		t.Errorf("Cooldown = %v, want 5000", ban.Cooldown)
	}
	if len(ban.Middlewares) != 2 || ban.Middlewares[0] != "auth" || ban.Middlewares[1] != "mod" {
		t.Errorf("Middlewares = %v", ban.Middlewares)
	}
	if f.Commands[0].Desc != nil {
		t.Errorf("ping Desc should be absent, got %q", *f.Commands[0].Desc)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	if _, err := ParseFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParseFile_InvalidYAML(t *testing.T) {
	if _, err := ParseFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestRecords_OrderAndDefaults(t *testing.T) {
	f, err := ParseFile(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	records, err := f.Records(testDefaults)
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}

	want := []struct {
		kind entity.Kind
		name string
		dir  string
		typ  string
	}{
		{entity.KindCategory, "Fun", "categories", "category"},
		{entity.KindCategory, "Moderation", "src/categories", "category"},
		{entity.KindCommand, "ping", "commands", "slash"},
		{entity.KindCommand, "ban", "src/commands", "hybrid"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		r := records[i]
		if r.Kind() != w.kind || r.RecordName() != w.name || r.Dir() != w.dir || r.TypeName() != w.typ {
			t.Errorf("record[%d] = {%v %s %s %s}, want %+v", i, r.Kind(), r.RecordName(), r.Dir(), r.TypeName(), w)
		}
	}

	ping := records[2].(*entity.Command)
	if ping.Model != entity.ModelSlash {
		t.Errorf("ping Model = %q, want canonical %q", ping.Model, entity.ModelSlash)
	}
}

func TestRecords_Errors(t *testing.T) {
	tests := []struct {
		name string
		file *File
		want error
	}{
		{
			name: "bad model",
			file: &File{Commands: []CommandEntry{{Name: "p", Model: "button", Handler: "H"}}},
			want: entity.ErrInvalidEnumValue,
		},
		{
			name: "missing model",
			file: &File{Commands: []CommandEntry{{Name: "p", Handler: "H"}}},
			want: entity.ErrMissingField,
		},
		{
			name: "missing handler",
			file: &File{Commands: []CommandEntry{{Name: "p", Model: "slash"}}},
			want: entity.ErrMissingField,
		},
		{
			name: "category without name",
			file: &File{Categories: []CategoryEntry{{}}},
			want: entity.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Records(testDefaults)
			if !errors.Is(err, tt.want) {
				t.Errorf("Records() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		wantErr    bool
	}{
		{"no constraint", "", "1.0.0", false},
		{"satisfied", ">= 1.0.0", "1.2.0", false},
		{"v prefix", "^1.0", "v1.4.2", false},
		{"too old", ">= 2.0.0", "1.9.9", true},
		{"dev build passes", ">= 2.0.0", "dev", false},
		{"bad constraint", "not a range", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequires(tt.constraint, tt.version)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
