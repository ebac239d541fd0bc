package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/matzehuels/mealcycle/pkg/plan"
)

// MaxListedShortfalls caps the shortfalls listed in a Document. The total
// is always reported in ShortfallCount.
const MaxListedShortfalls = 100

// Document is the JSON representation of a plan.
type Document struct {
	ID             string           `json:"id"`
	Source         int              `json:"source"`
	Target         int              `json:"target"`
	Meals          []Entry          `json:"meals"`
	ShortfallCount int              `json:"shortfall_count"`
	Shortfalls     []plan.Shortfall `json:"shortfalls,omitempty"` // first MaxListedShortfalls only
	Placeholders   []int            `json:"placeholders,omitempty"`
}

// Entry is one plan position.
type Entry struct {
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Tolerance   int    `json:"tolerance"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// NewDocument converts p into a Document with a fresh random id.
func NewDocument(p *plan.Plan) Document {
	return NewDocumentWithID(p, uuid.New())
}

// NewDocumentWithID converts p into a Document with the given id.
func NewDocumentWithID(p *plan.Plan, id uuid.UUID) Document {
	doc := Document{
		ID:             id.String(),
		Source:         p.Source,
		Target:         p.Len(),
		Meals:          make([]Entry, len(p.Meals)),
		ShortfallCount: len(p.Shortfalls),
		Shortfalls:     p.Shortfalls[:min(len(p.Shortfalls), MaxListedShortfalls)],
		Placeholders:   p.Placeholders,
	}
	for i, m := range p.Meals {
		doc.Meals[i] = Entry{
			Position:    i,
			Name:        m.Name,
			Tolerance:   m.Tolerance,
			Placeholder: p.IsPlaceholder(i),
		}
	}
	return doc
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
