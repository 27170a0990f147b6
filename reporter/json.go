package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mysteriumnetwork/zonegrep/zone"
)

type JSONReporter struct {
	w io.Writer
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		w: w,
	}
}

func (r *JSONReporter) Report(_ context.Context, rows []zone.ResultRow) error {
	// An empty result is still a valid report: emit [], not null.
	if rows == nil {
		rows = []zone.ResultRow{}
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}

	return nil
}
