package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mealcycle/pkg/errors"
)

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	c.stdout = &stdout

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&stderr)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootDemo(t *testing.T) {
	out, errOut, err := runCLI(t)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, errOut)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16:\n%s", len(lines), out)
	}
	if lines[0] != "(Arroz con Pollo, 4)" {
		t.Errorf("first line = %q", lines[0])
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
			t.Errorf("line %d = %q, want (name, tolerance)", i, line)
		}
	}
	if !strings.Contains(errOut, "Planned 16 meals") {
		t.Errorf("stderr missing progress line:\n%s", errOut)
	}
}

func TestRootFlags(t *testing.T) {
	out, _, err := runCLI(t, "--sort=false", "-n", "9", "--strategy", "cycle")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if lines[0] != "(Beef Stroganoff, 3)" || lines[7] != "(Beef Stroganoff, 3)" || lines[8] != "(PB&J, 1)" {
		t.Errorf("unexpected cycle output:\n%s", out)
	}
}

func TestRootErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"short target", []string{"-n", "3"}, errors.ErrCodeDestinationTooShort},
		{"zero target", []string{"-n", "0"}, errors.ErrCodeDestinationTooShort},
		{"bad format", []string{"-f", "pdf"}, errors.ErrCodeInvalidFormat},
		{"bad strategy", []string{"--strategy", "shuffle"}, errors.ErrCodeInvalidStrategy},
		{"strict", []string{"--strict"}, errors.ErrCodePlacementIncomplete},
		{"missing catalog", []string{"-m", filepath.Join(os.TempDir(), "does-not-exist.toml")}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestRootCatalogAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "meals.toml")
	content := "[[meal]]\nname = \"Soup\"\ntolerance = 2\n\n[[meal]]\nname = \"Salad\"\ntolerance = 2\n"
	if err := os.WriteFile(catalog, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "plan.json")

	out, errOut, err := runCLI(t, "-m", catalog, "-n", "6", "-f", "json", "-o", output)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty when writing to a file, got %q", out)
	}
	if !strings.Contains(errOut, output) {
		t.Errorf("stderr should mention the output file:\n%s", errOut)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"name": "Salad"`)) {
		t.Errorf("plan file missing catalog meals:\n%s", data)
	}
}

func TestRootPlaceholderWarning(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "meals.toml")
	if err := os.WriteFile(catalog, []byte("[[meal]]\nname = \"Feast\"\ntolerance = 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := runCLI(t, "-m", catalog, "-n", "3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "(Feast, 9)\n(, 0)\n(, 0)\n" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "2 positions filled with a placeholder") {
		t.Errorf("stderr missing placeholder warning:\n%s", errOut)
	}
}

func TestVersionFlag(t *testing.T) {
	_, errOut, err := runCLI(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "mealcycle version") {
		t.Errorf("version output = %q", errOut)
	}
}

func TestCompletion(t *testing.T) {
	out, _, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "mealcycle") {
		t.Error("bash completion should mention the command name")
	}
}
