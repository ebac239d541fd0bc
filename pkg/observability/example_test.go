package observability_test

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/mealcycle/pkg/observability"
)

type printHooks struct {
	observability.NoopPlanHooks
}

func (printHooks) OnExtendComplete(_ context.Context, strategy string, shortfalls, placeholders int, _ time.Duration, err error) {
	fmt.Printf("%s: %d shortfalls, %d placeholders, err=%v\n", strategy, shortfalls, placeholders, err)
}

func ExampleSetPlanHooks() {
	defer observability.Reset()
	observability.SetPlanHooks(printHooks{})

	ctx := context.Background()
	observability.Plan().OnExtendStart(ctx, "spread", 7, 16)
	observability.Plan().OnExtendComplete(ctx, "spread", 22, 0, time.Millisecond, nil)
	// Output:
	// spread: 22 shortfalls, 0 placeholders, err=<nil>
}
