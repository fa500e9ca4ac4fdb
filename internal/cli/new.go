package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devkent/goboot/internal/app"
	"github.com/devkent/goboot/internal/config"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Generate a new starter project",
	Long: `Generate a complete starter project from a built-in blueprint.

The project name becomes the output directory and, unless --module is
given, the Go module path. When the name or blueprint is omitted, goboot
prompts for it (use --yes to accept defaults non-interactively). The
default project name is "go-api-starter".

Defaults can also be set in a goboot.toml manifest in the working
directory (see --config).

Examples:
  goboot new my-api
  goboot new my-api --blueprint memory
  goboot new my-api --module github.com/acme/my-api
  goboot new my-api --output ./services/my-api
  goboot new my-api --dry-run
  goboot new my-api --force
  goboot new --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newBlueprint string
	newModule    string
	newOutput    string
	newConfig    string
	newForce     bool
	newDryRun    bool
	newSkipTools bool
	newYes       bool
)

func init() {
	// Flags for new
	newCmd.Flags().StringVarP(&newBlueprint, FlagBlueprint, "b", "", DescBlueprint)
	newCmd.Flags().StringVarP(&newModule, FlagModule, "m", "", DescModule)
	newCmd.Flags().StringVarP(&newOutput, FlagOutput, "o", "", DescOutput)
	newCmd.Flags().StringVarP(&newConfig, FlagConfig, "c", config.DefaultFileName, DescConfig)
	newCmd.Flags().BoolVarP(&newForce, FlagForce, "f", false, DescForce)
	newCmd.Flags().BoolVar(&newDryRun, FlagDryRun, false, DescDryRun)
	newCmd.Flags().BoolVar(&newSkipTools, FlagSkipTools, false, DescSkipTools)
	newCmd.Flags().BoolVarP(&newYes, FlagYes, "y", false, DescYes)
}

func runNew(cmd *cobra.Command, args []string) error {
	// Manifest defaults, overridden by flags and arguments.
	loader := config.NewLoader()
	cfg, err := loader.LoadOrDefault(newConfig)
	if err != nil {
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	projectName := cfg.Project.Name
	if len(args) == 1 {
		projectName = args[0]
	} else if !newYes {
		projectName, err = PromptProjectName(cfg.Project.Name)
		if err != nil {
			return err
		}
	}

	blueprintName := cfg.Scaffold.Blueprint
	if cmd.Flags().Changed(FlagBlueprint) {
		blueprintName = newBlueprint
	} else if !newYes && len(args) == 0 {
		blueprintName, err = PromptBlueprint(cfg.Scaffold.Blueprint)
		if err != nil {
			return err
		}
	}

	module := cfg.Project.Module
	if cmd.Flags().Changed(FlagModule) {
		module = newModule
	}

	if newDryRun {
		printInfo(fmt.Sprintf("Dry run: %s (blueprint: %s)", projectName, blueprintName))
	} else {
		printProgress(fmt.Sprintf("Generating %s (blueprint: %s)", projectName, blueprintName))
	}

	result, err := app.New(cmd.Context(), app.NewOptions{
		ProjectName: projectName,
		Blueprint:   blueprintName,
		Module:      module,
		OutputDir:   newOutput,
		Overwrite:   newForce,
		DryRun:      newDryRun,
		SkipTools:   newSkipTools || cfg.Toolchain.Skip,
		ToolCommand: cfg.Toolchain.Command,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Generation failed: %v", err))
		return err
	}

	if newDryRun {
		printPlanned(result)
		return nil
	}

	printGeneration(result)
	printToolchain(result)

	if result.Generation.FilesSkipped > 0 {
		printWarning(fmt.Sprintf("%d existing files left untouched (use --force to overwrite)",
			result.Generation.FilesSkipped))
	}
	for _, genErr := range result.Generation.Errors {
		printErrorMsg(genErr.Error())
	}

	printSuccess(fmt.Sprintf("Project created: %s", result.OutputDir))
	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  1. cd %s", result.OutputDir))
	printInfo("  2. go run ./cmd/server")

	return nil
}

// printPlanned reports a dry run without touching the filesystem.
func printPlanned(result *app.NewResult) {
	for _, planned := range result.Generation.Planned {
		if planned.WouldSkip {
			printDetail(fmt.Sprintf("skip      %s", planned.Path))
		} else if planned.Exists {
			printDetail(fmt.Sprintf("overwrite %s", planned.Path))
		} else {
			printDetail(fmt.Sprintf("create    %s", planned.Path))
		}
	}
	printInfo(fmt.Sprintf("Dry run complete: %d files planned, nothing written",
		len(result.Generation.Files)))
}

// printGeneration reports the file-writing phase.
func printGeneration(result *app.NewResult) {
	gen := result.Generation
	printInfo(fmt.Sprintf("Wrote %d files (%d directories, %d overwritten)",
		gen.FilesCreated+gen.FilesOverwritten, gen.DirsCreated, gen.FilesOverwritten))
}

// printToolchain reports the toolchain phase.
func printToolchain(result *app.NewResult) {
	if result.ToolchainSkipped {
		printWarning(fmt.Sprintf("Toolchain pass skipped: %s", result.ToolchainSkipReason))
		printInfo(fmt.Sprintf("Run manually: go mod init %s && go mod tidy", result.Module))
		return
	}

	for _, res := range result.Toolchain {
		if res.Succeeded() {
			printProgress(fmt.Sprintf("%s (%.1fs)", res.String(), res.Duration.Seconds()))
			continue
		}
		printWarning(fmt.Sprintf("%s failed (exit %d)", res.String(), res.ExitCode))
		if res.Output != "" {
			printDetail(res.Output)
		}
	}
}
