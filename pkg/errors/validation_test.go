package errors

import (
	"strings"
	"testing"
)

func TestValidateMealName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Hamburger", false},
		{"punctuation", "Bacon, Eggs, Toast", false},
		{"empty placeholder", "", false},
		{"unicode", "Crème brûlée", false},
		{"newline", "PB&J\nextra", true},
		{"null byte", "PB&J\x00", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length", strings.Repeat("a", 256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMealName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateMealName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	allowed := []string{"text", "json"}

	got, err := ValidateChoice(ErrCodeInvalidFormat, "format", " JSON ", allowed)
	if err != nil {
		t.Fatalf("ValidateChoice() error = %v", err)
	}
	if got != "json" {
		t.Errorf("ValidateChoice() = %q, want %q", got, "json")
	}

	_, err = ValidateChoice(ErrCodeInvalidFormat, "format", "yaml", allowed)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateChoice(yaml) error = %v, want %v", err, ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "text, json") {
		t.Errorf("error %q should list allowed values", err)
	}
}
