package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devkent/goboot/internal/scaffold/model"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Project.Name != model.DefaultProjectName {
		t.Errorf("default project name = %q, want %q", cfg.Project.Name, model.DefaultProjectName)
	}
	if cfg.Scaffold.Blueprint != DefaultBlueprint {
		t.Errorf("default blueprint = %q, want %q", cfg.Scaffold.Blueprint, DefaultBlueprint)
	}
	if cfg.Toolchain.Command != "go" {
		t.Errorf("default toolchain command = %q, want go", cfg.Toolchain.Command)
	}
	if cfg.Toolchain.Skip {
		t.Error("toolchain should be enabled by default")
	}
}

func TestLoadFullManifest(t *testing.T) {
	path := writeManifest(t, `
[project]
name = "shop-api"
module = "github.com/acme/shop-api"

[scaffold]
blueprint = "memory"

[toolchain]
skip = true
command = "gotip"
`)

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Project.Name != "shop-api" {
		t.Errorf("project name = %q, want shop-api", cfg.Project.Name)
	}
	if cfg.Project.Module != "github.com/acme/shop-api" {
		t.Errorf("module = %q", cfg.Project.Module)
	}
	if cfg.Scaffold.Blueprint != "memory" {
		t.Errorf("blueprint = %q, want memory", cfg.Scaffold.Blueprint)
	}
	if !cfg.Toolchain.Skip {
		t.Error("toolchain skip should be true")
	}
	if cfg.Toolchain.Command != "gotip" {
		t.Errorf("toolchain command = %q, want gotip", cfg.Toolchain.Command)
	}
}

func TestLoadPartialManifestMergesDefaults(t *testing.T) {
	path := writeManifest(t, `
[project]
name = "shop-api"
`)

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Project.Name != "shop-api" {
		t.Errorf("project name = %q, want shop-api", cfg.Project.Name)
	}
	if cfg.Scaffold.Blueprint != DefaultBlueprint {
		t.Errorf("blueprint should default to %q, got %q", DefaultBlueprint, cfg.Scaffold.Blueprint)
	}
	if cfg.Toolchain.Command != "go" {
		t.Errorf("toolchain command should default to go, got %q", cfg.Toolchain.Command)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeManifest(t, "[project\nname =")

	_, err := NewLoader().Load(path)
	if err == nil {
		t.Fatal("Load should fail for invalid TOML")
	}

	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Type != ConfigInvalid {
		t.Errorf("error type = %v, want ConfigInvalid", cfgErr.Type)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	_, err := NewLoader().Load(path)
	if err == nil {
		t.Fatal("Load should fail for missing file")
	}
	cfgErr, ok := err.(*ConfigError)
	if !ok || cfgErr.Type != ConfigNotFound {
		t.Errorf("expected ConfigNotFound, got %v", err)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := NewLoader().LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg.Project.Name != model.DefaultProjectName {
		t.Errorf("expected defaults, got project name %q", cfg.Project.Name)
	}
}

func TestValidate(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		field   string
	}{
		{"valid defaults", func(c *Config) {}, false, ""},
		{"empty name", func(c *Config) { c.Project.Name = "" }, true, "project.name"},
		{"name with space", func(c *Config) { c.Project.Name = "my app" }, true, "project.name"},
		{"name with slash", func(c *Config) { c.Project.Name = "a/b" }, true, "project.name"},
		{"long name", func(c *Config) { c.Project.Name = string(make([]byte, 65)) }, true, "project.name"},
		{"module with space", func(c *Config) { c.Project.Module = "bad module" }, true, "project.module"},
		{"empty blueprint", func(c *Config) { c.Scaffold.Blueprint = "" }, true, "scaffold.blueprint"},
		{"empty command", func(c *Config) { c.Toolchain.Command = "" }, true, "toolchain.command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := loader.Validate(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("Validate should fail")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if tt.wantErr {
				cfgErr, ok := err.(*ConfigError)
				if !ok {
					t.Fatalf("expected *ConfigError, got %T", err)
				}
				if cfgErr.Field != tt.field {
					t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
				}
			}
		})
	}
}
