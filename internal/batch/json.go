package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/verdict"
)

type record struct {
	ID      string                     `json:"id,omitempty"`
	CalcID  string                     `json:"calc_id"`
	Request engine.Request             `json:"request"`
	Result  *verdict.CalculationResult `json:"result,omitempty"`
	Error   string                     `json:"error,omitempty"`
}

// WriteJSON writes the outcomes as an indented JSON array in input order.
// A rejected request carries its error message instead of a result.
func WriteJSON(w io.Writer, outcomes []Outcome) error {
	records := make([]record, len(outcomes))
	for i, o := range outcomes {
		records[i] = record{ID: o.ID, CalcID: o.CalcID, Request: o.Request, Result: o.Result}
		if o.Err != nil {
			records[i].Error = o.Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
