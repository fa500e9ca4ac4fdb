package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/devkent/goboot/internal/debug"
	"github.com/devkent/goboot/internal/scaffold/blueprint"
	"github.com/devkent/goboot/internal/scaffold/generator"
	"github.com/devkent/goboot/internal/scaffold/model"
	"github.com/devkent/goboot/internal/toolchain"
)

// projectNamePattern restricts project names to filesystem- and
// module-path-safe characters.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// NewOptions holds options for creating a new project.
type NewOptions struct {
	// ProjectName is the name of the project to generate.
	ProjectName string
	// Blueprint is the blueprint name to generate from.
	Blueprint string
	// Module is the Go module path. When empty it is derived from the
	// project name.
	Module string
	// OutputDir is the project root directory. When empty the project
	// name is used.
	OutputDir string
	// Overwrite replaces existing files when true; otherwise existing
	// files are skipped.
	Overwrite bool
	// DryRun reports what would be generated without writing anything.
	DryRun bool
	// SkipTools disables the toolchain pass.
	SkipTools bool
	// Runner executes toolchain commands. When nil an ExecRunner for
	// ToolCommand is used.
	Runner toolchain.Runner
	// ToolCommand is the toolchain binary (default "go").
	ToolCommand string
}

// NewResult holds the outcome of project creation.
type NewResult struct {
	// OutputDir is the project root directory.
	OutputDir string
	// Blueprint is the blueprint that was generated.
	Blueprint string
	// Module is the module path passed to the toolchain.
	Module string
	// Generation carries the file and directory statistics.
	Generation *generator.Result
	// Toolchain carries the results of the toolchain invocations, in order.
	Toolchain []toolchain.CommandResult
	// ToolchainSkipped indicates the toolchain pass did not run.
	ToolchainSkipped bool
	// ToolchainSkipReason explains why the toolchain pass was skipped.
	ToolchainSkipReason string
}

// ToolchainFailed reports whether any toolchain invocation failed.
func (r *NewResult) ToolchainFailed() bool {
	for _, res := range r.Toolchain {
		if !res.Succeeded() {
			return true
		}
	}
	return false
}

// New generates a project from a blueprint and then runs the toolchain
// pass. The file tree is complete before any toolchain command runs, and
// toolchain failures are reported in the result rather than destroying
// the generated tree.
func New(ctx context.Context, opts NewOptions) (*NewResult, error) {
	debug.DebugSection("[app] New workflow start")
	debug.DebugValue("[app] ProjectName", opts.ProjectName)
	debug.DebugValue("[app] Blueprint", opts.Blueprint)
	debug.DebugValue("[app] DryRun", opts.DryRun)

	if err := validateNewOptions(&opts); err != nil {
		debug.Debug("[app] Option validation failed: %v", err)
		return nil, err
	}

	module := opts.Module
	if module == "" {
		module = DeriveModule(opts.ProjectName)
	}
	debug.DebugValue("[app] Module", module)

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = opts.ProjectName
	}
	debug.DebugValue("[app] OutputDir", outputDir)

	// Resolve and render the blueprint.
	bp, err := blueprint.Load(opts.Blueprint, model.Vars{
		ProjectName: opts.ProjectName,
		Module:      module,
	})
	if err != nil {
		return nil, NewBlueprintResolveError("failed to load blueprint", err)
	}
	debug.Debug("[app] Blueprint loaded: %s (%d dirs, %d files)", bp.Name, len(bp.Dirs), len(bp.Files))

	result := &NewResult{
		OutputDir: outputDir,
		Blueprint: bp.Name,
		Module:    module,
	}

	// File-writing phase.
	gen := generator.NewGenerator()
	genOpts := generator.GenerateOptions{
		Blueprint: bp,
		OutputDir: outputDir,
		Overwrite: opts.Overwrite,
	}

	if opts.DryRun {
		genResult, err := gen.DryRun(ctx, genOpts)
		if err != nil {
			return nil, NewGenerateError("dry run failed", err)
		}
		result.Generation = genResult
		result.ToolchainSkipped = true
		result.ToolchainSkipReason = "dry run"
		return result, nil
	}

	genResult, err := gen.Generate(ctx, genOpts)
	if err != nil {
		return nil, NewGenerateError("generation failed", err)
	}
	result.Generation = genResult

	// Toolchain phase. Runs strictly after the file pass; failures are
	// surfaced in the result, never by removing generated files.
	if opts.SkipTools {
		result.ToolchainSkipped = true
		result.ToolchainSkipReason = "disabled"
		return result, nil
	}

	runner := opts.Runner
	if runner == nil {
		runner = toolchain.NewRunner(opts.ToolCommand)
	}
	if !runner.Available() {
		result.ToolchainSkipped = true
		result.ToolchainSkipReason = "toolchain binary not found in PATH"
		debug.Debug("[app] Toolchain unavailable, skipping module initialization")
		return result, nil
	}

	// A go.mod left by a previous run makes "go mod init" fail; tidy
	// alone is enough then.
	goModPath := filepath.Join(outputDir, "go.mod")
	if _, err := os.Stat(goModPath); os.IsNotExist(err) {
		initResult := toolchain.ModInit(ctx, runner, outputDir, module)
		result.Toolchain = append(result.Toolchain, initResult)
		if !initResult.Succeeded() {
			debug.Debug("[app] go mod init failed: %v", initResult.Err)
			return result, nil
		}
	} else {
		debug.Debug("[app] go.mod already present, skipping go mod init")
	}

	tidyResult := toolchain.ModTidy(ctx, runner, outputDir)
	result.Toolchain = append(result.Toolchain, tidyResult)

	debug.Debug("[app] New workflow completed")
	debug.DebugJSON("[app] Generation result", result.Generation)
	return result, nil
}

// validateNewOptions validates options for New.
func validateNewOptions(opts *NewOptions) error {
	if opts.ProjectName == "" {
		return NewValidationError("project name cannot be empty", nil)
	}
	if len(opts.ProjectName) > 64 {
		return NewValidationError("project name too long (max 64 characters)", nil)
	}
	if !projectNamePattern.MatchString(opts.ProjectName) {
		return NewValidationError(
			fmt.Sprintf("invalid project name %q (letters, digits, '.', '_' and '-' only)", opts.ProjectName),
			nil)
	}
	if opts.Blueprint == "" {
		return NewValidationError("blueprint cannot be empty", nil)
	}
	if !blueprint.Has(opts.Blueprint) {
		return NewValidationError(
			fmt.Sprintf("unknown blueprint: %s (available: %s)",
				opts.Blueprint, strings.Join(blueprint.Names(), ", ")),
			nil)
	}
	if opts.Module != "" && strings.Contains(opts.Module, " ") {
		return NewValidationError("module path must not contain spaces", nil)
	}
	return nil
}

// DeriveModule derives a Go module path from a project name.
func DeriveModule(projectName string) string {
	module := strings.ToLower(projectName)
	module = strings.ReplaceAll(module, " ", "-")
	module = strings.ReplaceAll(module, "_", "-")
	return module
}
