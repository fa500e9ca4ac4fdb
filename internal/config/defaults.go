package config

import "github.com/devkent/goboot/internal/scaffold/model"

// DefaultBlueprint is the blueprint used when none is configured.
const DefaultBlueprint = "mysql"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:   model.DefaultProjectName,
			Module: "",
		},
		Scaffold: ScaffoldConfig{
			Blueprint: DefaultBlueprint,
		},
		Toolchain: ToolchainConfig{
			Skip:    false,
			Command: "go",
		},
	}
}
