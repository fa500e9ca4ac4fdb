package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devkent/goboot/internal/build"
	"github.com/devkent/goboot/internal/debug"
)

// Version information, overridable from main via ldflags.
var (
	Version   = build.Version()
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goboot",
	Short: "Go HTTP service project scaffolder",
	Long: `goboot generates a starter Go HTTP service project from a built-in
blueprint and initializes its Go module.

Use "goboot new <project-name>" to:
  1. Create the project directory tree
  2. Write the blueprint's source files
  3. Run "go mod init" and "go mod tidy" in the new project

Blueprints are fixed file sets shipped with goboot; run
"goboot blueprints" to list them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(blueprintsCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
