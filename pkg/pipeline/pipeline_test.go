package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mealcycle/pkg/errors"
	"github.com/matzehuels/mealcycle/pkg/meal"
	"github.com/matzehuels/mealcycle/pkg/observability"
	"github.com/matzehuels/mealcycle/pkg/render"
)

func testRunner() (*Runner, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRunner(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})), &buf
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Target != 0 {
		t.Errorf("Target = %d, want 0 left for the extender to reject", opts.Target)
	}
	if opts.Strategy != StrategySpread {
		t.Errorf("Strategy = %q, want %q", opts.Strategy, StrategySpread)
	}
	if opts.Format != render.FormatText {
		t.Errorf("Format = %q, want %q", opts.Format, render.FormatText)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"huge target", Options{Target: MaxTarget + 1}, errors.ErrCodeInvalidInput},
		{"negative period", Options{Period: -1}, errors.ErrCodeInvalidInput},
		{"bad strategy", Options{Strategy: "random"}, errors.ErrCodeInvalidStrategy},
		{"bad format", Options{Format: "pdf"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestExecuteShortTargets(t *testing.T) {
	r, _ := testRunner()
	items := []meal.Meal{{Name: "A", Tolerance: 1}}
	for _, target := range []int{0, -3} {
		for _, strategy := range Strategies {
			_, err := r.Execute(context.Background(), Options{Meals: items, Target: target, Strategy: strategy})
			if !errors.Is(err, errors.ErrCodeDestinationTooShort) {
				t.Errorf("Execute(target %d, %s) error = %v, want %v", target, strategy, err, errors.ErrCodeDestinationTooShort)
			}
		}
	}
}

func TestExecuteDemo(t *testing.T) {
	r, logs := testRunner()

	result, err := r.Execute(context.Background(), Options{Target: DefaultTarget, Sort: true})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(result.Output), "\n"), "\n")
	if len(lines) != DefaultTarget {
		t.Fatalf("got %d lines, want %d", len(lines), DefaultTarget)
	}
	if lines[0] != "(Arroz con Pollo, 4)" {
		t.Errorf("first line = %q, want sorted demo catalog", lines[0])
	}
	if result.Stats.Source != 7 || result.Stats.Target != DefaultTarget {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if !strings.Contains(logs.String(), "built plan") {
		t.Errorf("expected plan summary in logs, got %q", logs.String())
	}
}

func TestExecuteUnsortedKeepsCatalogOrder(t *testing.T) {
	r, _ := testRunner()
	result, err := r.Execute(context.Background(), Options{Target: 7})
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range meal.Demo() {
		if !result.Plan.Meals[i].Equal(m) {
			t.Errorf("position %d = %v, want %v", i, result.Plan.Meals[i], m)
		}
	}
}

func TestExecuteStrategies(t *testing.T) {
	r, _ := testRunner()
	items := []meal.Meal{{Name: "A", Tolerance: 3}, {Name: "B", Tolerance: 1}}

	spread, err := r.Execute(context.Background(), Options{Meals: items, Target: 4})
	if err != nil {
		t.Fatal(err)
	}
	cycle, err := r.Execute(context.Background(), Options{Meals: items, Target: 4, Strategy: "CYCLE"})
	if err != nil {
		t.Fatal(err)
	}

	if got := string(spread.Output); got != "(A, 3)\n(B, 1)\n(B, 1)\n(A, 3)\n" {
		t.Errorf("spread output = %q", got)
	}
	if got := string(cycle.Output); got != "(A, 3)\n(B, 1)\n(A, 3)\n(B, 1)\n" {
		t.Errorf("cycle output = %q", got)
	}
}

func TestExecuteErrors(t *testing.T) {
	r, _ := testRunner()
	ctx := context.Background()

	_, err := r.Execute(ctx, Options{Meals: []meal.Meal{{Name: "A", Tolerance: 3}, {Name: "B", Tolerance: 1}, {Name: "C", Tolerance: 1}}, Target: 2})
	if !errors.Is(err, errors.ErrCodeDestinationTooShort) {
		t.Errorf("short target error = %v", err)
	}

	_, err = r.Execute(ctx, Options{Meals: []meal.Meal{{Name: "A", Tolerance: 0}}, Target: 5})
	if !errors.Is(err, errors.ErrCodeInvalidTolerance) {
		t.Errorf("zero tolerance error = %v", err)
	}

	_, err = r.Execute(ctx, Options{Meals: []meal.Meal{{Name: "A", Tolerance: 3}, {Name: "B", Tolerance: 1}}, Target: 4, Strict: true})
	if !errors.Is(err, errors.ErrCodePlacementIncomplete) {
		t.Errorf("strict error = %v", err)
	}
}

func TestExecuteCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meals.toml")
	content := "[[meal]]\nname = \"Soup\"\ntolerance = 2\n\n[[meal]]\nname = \"Salad\"\ntolerance = 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, _ := testRunner()
	result, err := r.Execute(context.Background(), Options{CatalogPath: path, Target: 6, Format: "json"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(string(result.Output), `"name": "Soup"`) {
		t.Errorf("JSON output missing catalog meal:\n%s", result.Output)
	}
}

type countingHooks struct {
	observability.NoopPlanHooks
	completes int
	lastErr   error
}

func (c *countingHooks) OnExtendComplete(_ context.Context, _ string, _, _ int, _ time.Duration, err error) {
	c.completes++
	c.lastErr = err
}

func TestExecuteEmitsHooks(t *testing.T) {
	defer observability.Reset()
	hooks := &countingHooks{}
	observability.SetPlanHooks(hooks)

	r, _ := testRunner()
	if _, err := r.Execute(context.Background(), Options{Target: DefaultTarget}); err != nil {
		t.Fatal(err)
	}
	_, _ = r.Execute(context.Background(), Options{Meals: []meal.Meal{{Name: "A"}}, Target: 5})

	if hooks.completes != 2 {
		t.Errorf("completes = %d, want 2", hooks.completes)
	}
	if !errors.Is(hooks.lastErr, errors.ErrCodeInvalidTolerance) {
		t.Errorf("lastErr = %v, want %v", hooks.lastErr, errors.ErrCodeInvalidTolerance)
	}
}
