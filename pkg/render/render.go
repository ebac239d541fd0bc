package render

import (
	"io"

	"github.com/matzehuels/mealcycle/pkg/errors"
	"github.com/matzehuels/mealcycle/pkg/plan"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatSVG   = "svg"
)

// Formats lists every format accepted by [Write].
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatDOT, FormatSVG}

// ParseFormat normalizes and validates a format name.
// An empty name selects [FormatText].
func ParseFormat(s string) (string, error) {
	if s == "" {
		return FormatText, nil
	}
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", s, Formats)
}

// Write renders p to w in the given format.
func Write(w io.Writer, p *plan.Plan, format string) error {
	switch format {
	case FormatText, "":
		return WriteText(w, p)
	case FormatTable:
		return WriteTable(w, p)
	case FormatJSON:
		return WriteJSON(w, NewDocument(p))
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(p))
		return err
	case FormatSVG:
		svg, err := RenderSVG(ToDOT(p))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}
