package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Loader defines the interface for loading manifest files.
type Loader interface {
	// Load loads the manifest from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads the manifest or returns defaults if the file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the manifest.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based manifests.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads the manifest from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "manifest file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read manifest file", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
	}

	// Keep zero-valued fields at their defaults.
	mergeDefaults(cfg)

	return cfg, nil
}

// LoadOrDefault loads the manifest or returns defaults if the file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		// If file not found, return defaults
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the manifest.
func (l *FileLoader) Validate(config *Config) error {
	if config.Project.Name == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.name", "project name cannot be empty")
	}
	if len(config.Project.Name) > 64 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.name", "project name too long (max 64 characters)")
	}
	if strings.ContainsAny(config.Project.Name, " /\\") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.name", "project name must not contain spaces or path separators")
	}
	if config.Project.Module != "" && strings.Contains(config.Project.Module, " ") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "project.module", "module path must not contain spaces")
	}
	if config.Scaffold.Blueprint == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "scaffold.blueprint", "blueprint cannot be empty")
	}
	if config.Toolchain.Command == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "toolchain.command", "toolchain command cannot be empty")
	}
	return nil
}

// mergeDefaults fills zero-valued fields with their defaults.
func mergeDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Project.Name == "" {
		cfg.Project.Name = def.Project.Name
	}
	if cfg.Scaffold.Blueprint == "" {
		cfg.Scaffold.Blueprint = def.Scaffold.Blueprint
	}
	if cfg.Toolchain.Command == "" {
		cfg.Toolchain.Command = def.Toolchain.Command
	}
}
