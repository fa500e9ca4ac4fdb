package cli

import (
	"strings"
	"testing"
)

// TestValidateProjectNameInput tests the interactive name validation logic
func TestValidateProjectNameInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "simple name",
			input: "myapi",
		},
		{
			name:  "dashed name",
			input: "my-api",
		},
		{
			name:  "name with digits and dots",
			input: "api.v2",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "name with space",
			input:   "my api",
			wantErr: true,
		},
		{
			name:    "name with slash",
			input:   "my/api",
			wantErr: true,
		},
		{
			name:    "leading dash",
			input:   "-api",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 65),
			wantErr: true,
			errMsg:  "too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectNameInput(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
