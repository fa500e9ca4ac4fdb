package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/devkent/goboot/internal/debug"
	"github.com/devkent/goboot/internal/scaffold/model"
)

// Generator materializes blueprints on disk.
type Generator interface {
	// Generate writes the blueprint's directories and files under the
	// output directory, respecting the overwrite flag.
	Generate(ctx context.Context, opts GenerateOptions) (*Result, error)

	// DryRun simulates generation without writing anything.
	DryRun(ctx context.Context, opts GenerateOptions) (*Result, error)
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// Blueprint is the rendered blueprint to materialize.
	Blueprint *model.Blueprint

	// OutputDir is the project root directory.
	OutputDir string

	// Overwrite determines whether existing files are replaced.
	// If false, existing files are skipped.
	Overwrite bool
}

// PlannedFile describes a file that would be written in dry-run mode.
type PlannedFile struct {
	// Path is the output file path.
	Path string
	// Exists indicates the file already exists.
	Exists bool
	// WouldSkip indicates the file would be left alone (Exists && !Overwrite).
	WouldSkip bool
}

// Result contains generation statistics.
type Result struct {
	// DirsCreated is the number of directories created (or planned).
	DirsCreated int

	// FilesCreated is the number of new files created.
	FilesCreated int

	// FilesSkipped is the number of files skipped (already exist).
	FilesSkipped int

	// FilesOverwritten is the number of existing files overwritten.
	FilesOverwritten int

	// Errors contains non-fatal errors encountered during generation.
	Errors []error

	// Files contains the paths of all files processed.
	Files []string

	// Planned contains per-file details (only populated in dry-run).
	Planned []PlannedFile
}

// DefaultGenerator implements Generator on top of a Writer.
type DefaultGenerator struct {
	writer Writer
}

// NewGenerator creates a DefaultGenerator writing to the real filesystem.
func NewGenerator() Generator {
	return &DefaultGenerator{writer: NewFileWriter()}
}

// NewGeneratorWithWriter creates a DefaultGenerator with a custom writer.
func NewGeneratorWithWriter(w Writer) Generator {
	return &DefaultGenerator{writer: w}
}

// Generate writes the blueprint under the output directory.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	return g.generate(ctx, opts, false)
}

// DryRun simulates generation without writing files.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*Result, error) {
	return g.generate(ctx, opts, true)
}

// generate is the internal implementation for both Generate and DryRun.
// The directory pass runs fully before the file pass so the declared tree
// exists even for directories that receive no file of their own.
func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	debug.Debug("[generator] Starting generation: blueprint=%s, outputDir=%s, dryRun=%v, overwrite=%v",
		opts.Blueprint.Name, opts.OutputDir, dryRun, opts.Overwrite)

	result := &Result{
		Errors: []error{},
		Files:  []string{},
	}

	// Directory pass.
	dirs := append([]string{""}, opts.Blueprint.Dirs...)
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		target := filepath.Join(opts.OutputDir, dir)
		existed := g.writer.Exists(target)
		if !dryRun {
			if err := g.writer.CreateDir(target); err != nil {
				return result, err
			}
		}
		if !existed {
			result.DirsCreated++
		}
	}
	debug.Debug("[generator] Directory pass complete: %d created", result.DirsCreated)

	// File pass.
	for _, file := range opts.Blueprint.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outputPath := filepath.Join(opts.OutputDir, file.Path)
		result.Files = append(result.Files, outputPath)

		fileExists := g.writer.Exists(outputPath)

		if fileExists && !opts.Overwrite {
			debug.Debug("[generator] Skipping existing file: %s", outputPath)
			result.FilesSkipped++
			if dryRun {
				result.Planned = append(result.Planned, PlannedFile{
					Path:      outputPath,
					Exists:    true,
					WouldSkip: true,
				})
			}
			continue
		}

		if !dryRun {
			if err := g.writer.WriteFile(outputPath, file.Content, file.Mode); err != nil {
				// Record error but continue processing
				result.Errors = append(result.Errors, fmt.Errorf("failed to write %s: %w", file.Path, err))
				continue
			}
		} else {
			result.Planned = append(result.Planned, PlannedFile{
				Path:   outputPath,
				Exists: fileExists,
			})
		}

		if fileExists {
			result.FilesOverwritten++
		} else {
			result.FilesCreated++
		}
	}

	debug.Debug("[generator] Generation complete: created=%d, overwritten=%d, skipped=%d, errors=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesSkipped, len(result.Errors))

	return result, nil
}

// validateOptions validates GenerateOptions.
func validateOptions(opts GenerateOptions) error {
	if opts.Blueprint == nil {
		return fmt.Errorf("blueprint cannot be nil")
	}

	if opts.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	if len(opts.Blueprint.Files) == 0 {
		return fmt.Errorf("blueprint has no files")
	}

	return nil
}
