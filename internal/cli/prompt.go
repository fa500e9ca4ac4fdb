package cli

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"

	"github.com/devkent/goboot/internal/scaffold/blueprint"
)

// promptNamePattern mirrors the app-layer project name restrictions.
var promptNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateProjectNameInput validates an interactively entered project name.
func ValidateProjectNameInput(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("project name too long (max 64 characters)")
	}
	if !promptNamePattern.MatchString(name) {
		return fmt.Errorf("use letters, digits, '.', '_' and '-' only")
	}
	return nil
}

// PromptProjectName interactively prompts for the project name.
func PromptProjectName(defaultName string) (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Project name:",
		Default: defaultName,
	}

	validator := func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected a string value")
		}
		return ValidateProjectNameInput(s)
	}

	if err := survey.AskOne(prompt, &name, survey.WithValidator(validator)); err != nil {
		return "", fmt.Errorf("failed to prompt for project name: %w", err)
	}
	return name, nil
}

// PromptBlueprint interactively prompts for the blueprint to use.
func PromptBlueprint(defaultName string) (string, error) {
	names := blueprint.Names()
	descs := blueprint.Descriptions()

	var choice string
	prompt := &survey.Select{
		Message: "Blueprint:",
		Options: names,
		Default: defaultName,
		Description: func(value string, index int) string {
			return descs[value]
		},
	}

	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("failed to prompt for blueprint: %w", err)
	}
	return choice, nil
}
