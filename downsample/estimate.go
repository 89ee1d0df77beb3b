package downsample

import (
	"encoding/json"
	"fmt"

	"github.com/TFMV/gridbox/table"
)

// maxSampleRows caps how many rows are serialized when estimating the
// payload size of a large table.
const maxSampleRows = 200

// applyByteBudget shrinks the row count until the estimated serialized
// size fits maxBytes: a proportional cut based on average row size
// first, then halving until within budget. Never below one row. The
// truncated flag is set whenever the budget was exceeded, even if the
// table could not shrink (single oversized row).
func applyByteBudget(t *table.Table, maxBytes int) (*table.Table, bool) {
	est, ok := estimateBytes(t)
	if !ok || est <= maxBytes {
		return t, false
	}

	rows := t.NumRows()
	avg := est / rows
	if avg < 1 {
		avg = 1
	}
	target := maxBytes / avg
	if target < 1 {
		target = 1
	}
	if target > rows {
		target = rows
	}
	reduced := t.Head(target)

	for reduced.NumRows() > 1 {
		est, ok = estimateBytes(reduced)
		if !ok || est <= maxBytes {
			break
		}
		reduced = reduced.Head(reduced.NumRows() / 2)
	}

	return reduced, true
}

// estimateBytes estimates the serialized size of the table from a
// uniform-stride row sample. Rows are sampled across the whole table
// rather than from the head so that size skew in later rows is seen.
// Returns ok=false when no estimate could be made; callers treat that
// as "unbounded" since the byte budget is an optimization, not a
// correctness requirement.
func estimateBytes(t *table.Table) (int, bool) {
	rows := t.NumRows()
	if rows == 0 {
		return 0, true
	}

	stride := 1
	if rows > maxSampleRows {
		stride = rows / maxSampleRows
	}

	sampled := 0
	total := 0
	for i := 0; i < rows && sampled < maxSampleRows; i += stride {
		total += rowBytes(t, i)
		sampled++
	}
	if sampled == 0 {
		return 0, false
	}

	avg := total / sampled
	return avg * rows, true
}

// rowBytes measures one serialized row: index levels plus data
// columns, with per-value separator overhead.
func rowBytes(t *table.Table, row int) int {
	n := 0
	for _, level := range t.Index().Levels() {
		n += valueBytes(level.Values[row])
	}
	for _, col := range t.Columns() {
		n += valueBytes(col.Values[row])
	}
	return n + 2 // enclosing brackets
}

func valueBytes(v any) int {
	data, err := json.Marshal(v)
	if err != nil {
		// Non-serializable value (e.g. NaN); its string form is what
		// would end up in the payload anyway.
		return len(fmt.Sprint(v)) + 2
	}
	return len(data) + 1 // separator
}
