package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/mealcycle/pkg/meal"
	"github.com/matzehuels/mealcycle/pkg/plan"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleSource = styleCell.Foreground(lipgloss.Color("245"))
	styleFiller = styleCell.Foreground(lipgloss.Color("240")).Italic(true)
	styleOver   = styleCell.Foreground(lipgloss.Color("167"))
)

const (
	// placeholderLabel is shown for placeholder positions with no name.
	placeholderLabel = "(placeholder)"

	// headerRow is the row index lipgloss tables pass for the header.
	headerRow = -1
)

// WriteTable renders p as a bordered table with one row per position.
// The gap column is the distance since the previous occurrence of the
// same meal; gaps above the meal's tolerance are marked with "!".
func WriteTable(w io.Writer, p *plan.Plan) error {
	gaps := gapColumn(p)
	rows := make([][]string, len(p.Meals))
	for i, m := range p.Meals {
		name := m.Name
		if p.IsPlaceholder(i) && name == "" {
			name = placeholderLabel
		}
		rows[i] = []string{strconv.Itoa(i), name, strconv.Itoa(m.Tolerance), gaps[i]}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Meal", "Tolerance", "Gap").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case row < p.Source:
				return styleSource
			case p.IsPlaceholder(row):
				return styleFiller
			case col == 3 && len(gaps[row]) > 0 && gaps[row][len(gaps[row])-1] == '!':
				return styleOver
			}
			return styleCell
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// gapColumn computes the gap cell for every position.
func gapColumn(p *plan.Plan) []string {
	last := make(map[meal.Meal]int)
	out := make([]string, len(p.Meals))
	for i, m := range p.Meals {
		out[i] = "-"
		if p.IsPlaceholder(i) {
			continue
		}
		if prev, ok := last[m]; ok {
			gap := i - prev
			out[i] = strconv.Itoa(gap)
			if gap > m.Tolerance {
				out[i] += "!"
			}
		}
		last[m] = i
	}
	return out
}
