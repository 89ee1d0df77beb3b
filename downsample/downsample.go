// Package downsample reduces a table to fit row, column and byte
// limits before it is serialized into a rendering payload.
package downsample

import (
	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/table"
)

// ErrInvalidLimits indicates a negative limit. Limits are never
// silently clamped.
var ErrInvalidLimits = errors.MustNewCode("downsample.invalid_limits")

// Limits bounds the downsampled table. Zero means unlimited for that
// dimension.
type Limits struct {
	MaxRows    int
	MaxColumns int
	MaxBytes   int
}

// Validate rejects negative limits.
func (l Limits) Validate() error {
	if l.MaxRows < 0 {
		return errors.Newf(ErrInvalidLimits, "max_rows must be >= 0, got %d", l.MaxRows)
	}
	if l.MaxColumns < 0 {
		return errors.Newf(ErrInvalidLimits, "max_columns must be >= 0, got %d", l.MaxColumns)
	}
	if l.MaxBytes < 0 {
		return errors.Newf(ErrInvalidLimits, "max_bytes must be >= 0, got %d", l.MaxBytes)
	}
	return nil
}

// Result is a possibly-truncated table plus flags recording whether
// rows or columns were dropped. RowsTruncated is also set when the
// byte budget was exceeded but the table could not shrink further (a
// single oversized row is reported, never dropped).
type Result struct {
	Table            *table.Table
	RowsTruncated    bool
	ColumnsTruncated bool
}

// Downsample applies the limits in order: columns, then rows, then the
// byte budget within the already row-limited set. Index levels do not
// count toward MaxColumns and are always preserved. A non-empty table
// never comes back empty.
func Downsample(t *table.Table, limits Limits) (Result, error) {
	if err := limits.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Table: t}
	if t.NumRows() == 0 || t.NumCols() == 0 {
		return res, nil
	}

	if limits.MaxColumns > 0 && t.NumCols() > limits.MaxColumns {
		res.Table = res.Table.SelectColumns(limits.MaxColumns)
		res.ColumnsTruncated = true
	}

	if limits.MaxRows > 0 && res.Table.NumRows() > limits.MaxRows {
		res.Table = res.Table.Head(limits.MaxRows)
		res.RowsTruncated = true
	}

	if limits.MaxBytes > 0 {
		reduced, truncated := applyByteBudget(res.Table, limits.MaxBytes)
		res.Table = reduced
		res.RowsTruncated = res.RowsTruncated || truncated
	}

	return res, nil
}
