package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devkent/goboot/internal/config"
	"github.com/devkent/goboot/internal/scaffold/blueprint"
)

// blueprintsCmd represents the blueprints command
var blueprintsCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "List available blueprints",
	Long: `List the blueprints shipped with goboot.

Each blueprint is a fixed set of source files describing a complete
starter project. Select one with "goboot new --blueprint <name>".`,
	Args: cobra.NoArgs,
	RunE: runBlueprints,
}

func runBlueprints(cmd *cobra.Command, args []string) error {
	descs := blueprint.Descriptions()

	for _, name := range blueprint.Names() {
		marker := " "
		if name == config.DefaultBlueprint {
			marker = "*"
		}
		printInfo(fmt.Sprintf("%s %-8s %s", marker, name, descs[name]))
	}
	printInfo("")
	printInfo("* default blueprint")
	return nil
}
