// Package table holds the immutable columnar table model that the
// downsampling, formatting and rendering layers operate on.
package table

import (
	"fmt"

	"github.com/TFMV/gridbox/pkg/errors"
)

// ErrInvalidInput indicates a malformed table (ragged columns, index
// length mismatch). It is reported at construction time, before any
// downsampling or formatting runs.
var ErrInvalidInput = errors.MustNewCode("table.invalid_input")

// DefaultPrecision is the float display precision used when none is set.
const DefaultPrecision = 6

// Kind is the closed set of column kinds. It is resolved once per
// column at construction; downstream stages dispatch on it instead of
// inspecting cell types.
type Kind int

const (
	// KindBool holds boolean values.
	KindBool Kind = iota
	// KindInt holds signed integer values.
	KindInt
	// KindFloat holds floating-point values.
	KindFloat
	// KindString holds string values.
	KindString
	// KindObject holds values of any other type.
	KindObject
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindObject:
		return "Object"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Column is a named, typed sequence of values. Values is read-only by
// convention; table operations share the backing slice and never write
// through it.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// Len returns the number of values in the column.
func (c Column) Len() int { return len(c.Values) }

func (c Column) slice(n int) Column {
	return Column{Name: c.Name, Kind: c.Kind, Values: c.Values[:n]}
}

// Bool builds a boolean column.
func Bool(name string, values []bool) Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Kind: KindBool, Values: vals}
}

// Int builds an integer column.
func Int(name string, values []int64) Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Kind: KindInt, Values: vals}
}

// Float builds a floating-point column.
func Float(name string, values []float64) Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Kind: KindFloat, Values: vals}
}

// String builds a string column.
func String(name string, values []string) Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Column{Name: name, Kind: KindString, Values: vals}
}

// Object builds a column of arbitrary values.
func Object(name string, values []any) Column {
	vals := make([]any, len(values))
	copy(vals, values)
	return Column{Name: name, Kind: KindObject, Values: vals}
}

// Index is the ordered row index: one or more named levels used as a
// relational key, never counted as data columns.
type Index struct {
	levels       []Column
	defaultRange bool
}

// RangeIndex returns the default unnamed 0..n-1 index.
func RangeIndex(n int) Index {
	vals := make([]any, n)
	for i := range vals {
		vals[i] = int64(i)
	}
	return Index{
		levels:       []Column{{Kind: KindInt, Values: vals}},
		defaultRange: true,
	}
}

// NewIndex builds an index from one or more named levels.
func NewIndex(levels ...Column) Index {
	ls := make([]Column, len(levels))
	copy(ls, levels)
	return Index{levels: ls}
}

// Levels returns the index levels in order.
func (ix Index) Levels() []Column {
	ls := make([]Column, len(ix.levels))
	copy(ls, ix.levels)
	return ls
}

// Width returns the number of index levels.
func (ix Index) Width() int { return len(ix.levels) }

// Len returns the number of index entries.
func (ix Index) Len() int {
	if len(ix.levels) == 0 {
		return 0
	}
	return ix.levels[0].Len()
}

// Names returns the level names in order.
func (ix Index) Names() []string {
	names := make([]string, len(ix.levels))
	for i, l := range ix.levels {
		names[i] = l.Name
	}
	return names
}

// IsDefaultRange reports whether the index is the plain unnamed
// 0..N-1 range created for tables without an explicit index.
func (ix Index) IsDefaultRange() bool {
	if !ix.defaultRange {
		return false
	}
	for _, l := range ix.levels {
		if l.Name != "" {
			return false
		}
	}
	return true
}

func (ix Index) head(n int) Index {
	ls := make([]Column, len(ix.levels))
	for i, l := range ix.levels {
		ls[i] = l.slice(n)
	}
	return Index{levels: ls, defaultRange: ix.defaultRange}
}

// Table is an ordered sequence of named typed columns plus a row
// index. Tables are logically immutable: every operation returns a new
// Table and shares the underlying value slices read-only.
type Table struct {
	cols      []Column
	index     Index
	rows      int
	precision int
}

// Option configures a table at construction.
type Option func(*Table)

// WithIndex sets an explicit row index.
func WithIndex(ix Index) Option {
	return func(t *Table) { t.index = ix }
}

// WithPrecision sets the float display precision.
func WithPrecision(p int) Option {
	return func(t *Table) { t.precision = p }
}

// New builds a table from columns, validating that all columns and
// index levels have the same length.
func New(cols []Column, opts ...Option) (*Table, error) {
	t := &Table{
		cols:      make([]Column, len(cols)),
		precision: DefaultPrecision,
	}
	copy(t.cols, cols)

	rows := 0
	if len(t.cols) > 0 {
		rows = t.cols[0].Len()
	}
	for _, c := range t.cols {
		if c.Len() != rows {
			return nil, errors.Newf(ErrInvalidInput,
				"column %q has %d values, expected %d", c.Name, c.Len(), rows)
		}
	}
	t.rows = rows

	for _, opt := range opts {
		opt(t)
	}

	if t.index.Width() == 0 {
		t.index = RangeIndex(rows)
	}
	if t.index.Len() != rows {
		return nil, errors.Newf(ErrInvalidInput,
			"index has %d entries, expected %d", t.index.Len(), rows)
	}
	return t, nil
}

// MustNew builds a table or panics. Intended for tests and fixtures.
func MustNew(cols []Column, opts ...Option) *Table {
	t, err := New(cols, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the data column count (index levels excluded).
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the data columns in order.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// Column returns the i-th data column.
func (t *Table) Column(i int) Column { return t.cols[i] }

// ColumnNames returns the data column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Index returns the row index.
func (t *Table) Index() Index { return t.index }

// Precision returns the float display precision.
func (t *Table) Precision() int { return t.precision }

// Head returns a table containing the first n rows. The index is
// sliced along with the data. Returns the receiver when n covers all
// rows.
func (t *Table) Head(n int) *Table {
	if n >= t.rows {
		return t
	}
	if n < 0 {
		n = 0
	}
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.slice(n)
	}
	return &Table{
		cols:      cols,
		index:     t.index.head(n),
		rows:      n,
		precision: t.precision,
	}
}

// SelectColumns returns a table containing the first n data columns.
// The index is always preserved. Returns the receiver when n covers
// all columns.
func (t *Table) SelectColumns(n int) *Table {
	if n >= len(t.cols) {
		return t
	}
	if n < 0 {
		n = 0
	}
	cols := make([]Column, n)
	copy(cols, t.cols[:n])
	return &Table{
		cols:      cols,
		index:     t.index,
		rows:      t.rows,
		precision: t.precision,
	}
}
