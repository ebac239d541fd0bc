package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/matzehuels/mealcycle/pkg/plan"
)

// WriteText writes one "(name, tolerance)" line per plan position.
func WriteText(w io.Writer, p *plan.Plan) error {
	bw := bufio.NewWriter(w)
	for _, m := range p.Meals {
		if _, err := fmt.Fprintln(bw, m); err != nil {
			return err
		}
	}
	return bw.Flush()
}
