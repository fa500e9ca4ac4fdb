package config

// DefaultFileName is the manifest file looked up in the working directory.
const DefaultFileName = "goboot.toml"

// Config represents the goboot manifest (goboot.toml).
type Config struct {
	// Project configuration for the generated project.
	Project ProjectConfig `toml:"project"`
	// Scaffold configuration selecting what gets generated.
	Scaffold ScaffoldConfig `toml:"scaffold"`
	// Toolchain configuration for the post-generation tool invocations.
	Toolchain ToolchainConfig `toml:"toolchain"`
}

// ProjectConfig represents project identity settings.
type ProjectConfig struct {
	// Name is the default project name (and output directory name).
	Name string `toml:"name"`
	// Module is the Go module path for "go mod init". When empty the
	// module path is derived from the project name.
	Module string `toml:"module"`
}

// ScaffoldConfig represents scaffold selection settings.
type ScaffoldConfig struct {
	// Blueprint is the default blueprint name.
	Blueprint string `toml:"blueprint"`
}

// ToolchainConfig represents the toolchain invocation settings.
type ToolchainConfig struct {
	// Skip disables the module-init and dependency-fetch pass.
	Skip bool `toml:"skip"`
	// Command is the toolchain binary to invoke.
	Command string `toml:"command"`
}
