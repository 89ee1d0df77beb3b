// Package format turns a table into row-major sequences of
// JSON-serializable scalars for embedding in a rendering payload.
package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/table"
)

// Outcome records which formatting path a column took. Formatting is
// best-effort and never raises per value; the outcome makes the
// fallback path visible to callers and tests.
type Outcome int

const (
	// OutcomePassthrough means values were emitted unchanged.
	OutcomePassthrough Outcome = iota
	// OutcomeFormatted means the column's display formatting applied cleanly.
	OutcomeFormatted
	// OutcomeFallback means formatting failed and original values were kept.
	OutcomeFallback
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePassthrough:
		return "Passthrough"
	case OutcomeFormatted:
		return "Formatted"
	case OutcomeFallback:
		return "Fallback"
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}

// ColumnOutcome pairs an emitted column with its formatting outcome.
type ColumnOutcome struct {
	Name    string
	Outcome Outcome
}

// Result holds the row-major values plus the per-column outcomes, in
// emitted column order (index levels first when shown).
type Result struct {
	Rows    [][]any
	Columns []ColumnOutcome
}

// Values formats the table into row-major rows. When includeIndex is
// set, index-level values are prepended to each row in level order.
//
// Per-column policy: bool, int and string columns pass through; float
// columns are rendered at the table's display precision and parsed
// back to numbers, falling back to the original values if any entry
// fails the round trip; everything else becomes its string form.
func Values(t *table.Table, includeIndex bool) (Result, error) {
	if t == nil {
		return Result{}, errors.New(errors.CommonInvalidInput, "cannot format a nil table")
	}

	var cols []table.Column
	if includeIndex {
		cols = append(cols, t.Index().Levels()...)
	}
	cols = append(cols, t.Columns()...)

	formatted := make([][]any, len(cols))
	outcomes := make([]ColumnOutcome, len(cols))
	for i, col := range cols {
		vals, outcome := formatColumn(col, t.Precision())
		formatted[i] = vals
		outcomes[i] = ColumnOutcome{Name: col.Name, Outcome: outcome}
	}

	rows := make([][]any, t.NumRows())
	for r := range rows {
		row := make([]any, len(cols))
		for c := range cols {
			row[c] = formatted[c][r]
		}
		rows[r] = row
	}

	return Result{Rows: rows, Columns: outcomes}, nil
}

func formatColumn(col table.Column, precision int) ([]any, Outcome) {
	switch col.Kind {
	case table.KindBool, table.KindInt, table.KindString:
		return col.Values, OutcomePassthrough
	case table.KindFloat:
		return formatFloats(col.Values, precision)
	default:
		return stringify(col.Values), OutcomeFormatted
	}
}

// formatFloats renders each float at the display precision and parses
// it back, so fixed decimal places apply without losing numeric type
// in the payload. Any round-trip failure keeps the whole column's
// original values. Non-finite values stay as their display strings;
// they have no JSON number form.
func formatFloats(vals []any, precision int) ([]any, Outcome) {
	out := make([]any, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return vals, OutcomeFallback
		}
		s := strconv.FormatFloat(f, 'f', precision, 64)
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return vals, OutcomeFallback
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			out[i] = s
			continue
		}
		out[i] = parsed
	}
	return out, OutcomeFormatted
}

func stringify(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
