package cli

import (
	"testing"
)

// TestRootSubcommands tests subcommand registration
func TestRootSubcommands(t *testing.T) {
	want := map[string]bool{
		"new":        false,
		"blueprints": false,
		"version":    false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

// TestNewCommandFlags tests flag registration and defaults on the new command
func TestNewCommandFlags(t *testing.T) {
	tests := []struct {
		flag        string
		shorthand   string
		defaultWant string
	}{
		{FlagBlueprint, "b", ""},
		{FlagModule, "m", ""},
		{FlagOutput, "o", ""},
		{FlagConfig, "c", "goboot.toml"},
		{FlagForce, "f", "false"},
		{FlagDryRun, "", "false"},
		{FlagSkipTools, "", "false"},
		{FlagYes, "y", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := newCmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag %q not registered", tt.flag)
			}
			if f.Shorthand != tt.shorthand {
				t.Errorf("shorthand = %q, want %q", f.Shorthand, tt.shorthand)
			}
			if f.DefValue != tt.defaultWant {
				t.Errorf("default = %q, want %q", f.DefValue, tt.defaultWant)
			}
		})
	}
}

// TestGlobalFlags tests persistent flag registration on the root command
func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{FlagDebug, FlagQuiet, FlagNoColor} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

// TestNewCommandArgs tests positional argument validation
func TestNewCommandArgs(t *testing.T) {
	if err := newCmd.Args(newCmd, []string{}); err != nil {
		t.Errorf("no args should be accepted: %v", err)
	}
	if err := newCmd.Args(newCmd, []string{"my-api"}); err != nil {
		t.Errorf("one arg should be accepted: %v", err)
	}
	if err := newCmd.Args(newCmd, []string{"a", "b"}); err == nil {
		t.Error("two args should be rejected")
	}
}
