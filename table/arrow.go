package table

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// FromRecord converts an Arrow record batch into a Table. Boolean,
// integer, floating-point and string arrays map onto the matching
// column kinds; everything else becomes an object column holding the
// array's per-value string representation. Null entries become nil.
func FromRecord(rec arrow.Record, opts ...Option) (*Table, error) {
	cols := make([]Column, rec.NumCols())
	for i := 0; i < int(rec.NumCols()); i++ {
		cols[i] = fromArray(rec.ColumnName(i), rec.Column(i))
	}
	return New(cols, opts...)
}

func fromArray(name string, arr arrow.Array) Column {
	n := arr.Len()
	vals := make([]any, n)

	switch a := arr.(type) {
	case *array.Boolean:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = a.Value(i)
		}
		return Column{Name: name, Kind: KindBool, Values: vals}
	case *array.Int8:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = int64(a.Value(i))
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Int16:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = int64(a.Value(i))
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Int32:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = int64(a.Value(i))
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Int64:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = a.Value(i)
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Uint8:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = int64(a.Value(i))
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Uint16:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = int64(a.Value(i))
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Uint32:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = int64(a.Value(i))
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Uint64:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = int64(a.Value(i))
		}
		return Column{Name: name, Kind: KindInt, Values: vals}
	case *array.Float32:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = float64(a.Value(i))
		}
		return Column{Name: name, Kind: KindFloat, Values: vals}
	case *array.Float64:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = a.Value(i)
		}
		return Column{Name: name, Kind: KindFloat, Values: vals}
	case *array.String:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = a.Value(i)
		}
		return Column{Name: name, Kind: KindString, Values: vals}
	case *array.LargeString:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				continue
			}
			vals[i] = a.Value(i)
		}
		return Column{Name: name, Kind: KindString, Values: vals}
	default:
		for i := 0; i < n; i++ {
			if arr.IsNull(i) {
				continue
			}
			vals[i] = arr.ValueStr(i)
		}
		return Column{Name: name, Kind: KindObject, Values: vals}
	}
}
