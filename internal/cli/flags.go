package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagBlueprint = "blueprint"
	FlagModule    = "module"
	FlagOutput    = "output"
	FlagConfig    = "config"
	FlagForce     = "force"
	FlagDryRun    = "dry-run"
	FlagSkipTools = "skip-tools"
	FlagYes       = "yes"
	FlagNoColor   = "no-color"
	FlagQuiet     = "quiet"
	FlagDebug     = "debug"

	// Flag descriptions
	DescBlueprint = "Blueprint to generate from"
	DescModule    = "Go module path for the generated project"
	DescOutput    = "Output directory (defaults to the project name)"
	DescConfig    = "Path to goboot.toml manifest"
	DescForce     = "Overwrite existing files"
	DescDryRun    = "Show actions without execution"
	DescSkipTools = "Skip go mod init / go mod tidy"
	DescYes       = "Accept defaults instead of prompting"
	DescNoColor   = "Disable colored output"
	DescQuiet     = "Suppress output"
	DescDebug     = "Enable debug logging"
)
