// Package toolchain invokes the Go toolchain for freshly generated
// projects. Every invocation is captured in a CommandResult so callers
// can report failures instead of losing them.
package toolchain

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/devkent/goboot/internal/debug"
)

// DefaultCommand is the toolchain binary invoked when none is configured.
const DefaultCommand = "go"

// CommandResult captures a single toolchain invocation.
type CommandResult struct {
	// Command is the binary that was invoked.
	Command string
	// Args are the arguments passed to the command.
	Args []string
	// Dir is the working directory of the invocation.
	Dir string
	// ExitCode is the process exit code (-1 if the process never started).
	ExitCode int
	// Output is the combined stdout/stderr of the process.
	Output string
	// Duration is the wall-clock time of the invocation.
	Duration time.Duration
	// Err is the invocation error, nil on success.
	Err error
}

// Succeeded reports whether the invocation completed with exit code zero.
func (r CommandResult) Succeeded() bool {
	return r.Err == nil && r.ExitCode == 0
}

// String returns a short human-readable description of the invocation.
func (r CommandResult) String() string {
	return r.Command + " " + strings.Join(r.Args, " ")
}

// Runner executes toolchain commands.
type Runner interface {
	// Run executes the command with args in dir and returns its result.
	// The returned error mirrors result.Err for convenience.
	Run(ctx context.Context, dir string, args ...string) CommandResult

	// Available reports whether the toolchain binary can be found.
	Available() bool
}

// ExecRunner implements Runner via os/exec.
type ExecRunner struct {
	command string
}

// NewRunner creates an ExecRunner for the given binary. An empty command
// falls back to DefaultCommand.
func NewRunner(command string) *ExecRunner {
	if command == "" {
		command = DefaultCommand
	}
	return &ExecRunner{command: command}
}

// Run executes the toolchain command with the given arguments in dir.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) CommandResult {
	debug.Debug("[toolchain] Running: %s %s (dir: %s)", r.command, strings.Join(args, " "), dir)

	result := CommandResult{
		Command:  r.command,
		Args:     args,
		Dir:      dir,
		ExitCode: -1,
	}

	cmd := exec.CommandContext(ctx, r.command, args...)
	cmd.Dir = dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Output = output.String()
	result.Err = err

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	debug.Debug("[toolchain] Finished: %s (exit: %d, duration: %s)",
		result.String(), result.ExitCode, result.Duration)

	return result
}

// Available reports whether the toolchain binary is on PATH.
func (r *ExecRunner) Available() bool {
	_, err := exec.LookPath(r.command)
	return err == nil
}

// ModInit runs "go mod init <module>" in dir.
func ModInit(ctx context.Context, runner Runner, dir, module string) CommandResult {
	return runner.Run(ctx, dir, "mod", "init", module)
}

// ModTidy runs "go mod tidy" in dir.
func ModTidy(ctx context.Context, runner Runner, dir string) CommandResult {
	return runner.Run(ctx, dir, "mod", "tidy")
}
