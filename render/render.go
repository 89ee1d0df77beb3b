// Package render generates the HTML payload that embeds a downsampled
// table into a document driven by a JavaScript grid library.
package render

import (
	"github.com/rs/zerolog"

	"github.com/TFMV/gridbox/downsample"
	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/table"
	"github.com/TFMV/gridbox/utils"
)

var (
	// ErrUnsupportedEngine indicates an unknown grid engine name.
	ErrUnsupportedEngine = errors.MustNewCode("render.unsupported_engine")
	// ErrBadTemplate indicates a template marker was not found the
	// expected number of times.
	ErrBadTemplate = errors.MustNewCode("render.bad_template")
)

// Engine identifies the JavaScript grid library driving the table.
type Engine string

const (
	// DataTables renders through datatables.net.
	DataTables Engine = "datatables.net"
	// AgGrid renders through ag-grid.
	AgGrid Engine = "ag-grid"
)

// ParseEngine validates an engine name.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case DataTables, AgGrid:
		return Engine(s), nil
	default:
		return "", errors.Newf(ErrUnsupportedEngine, "unsupported grid engine %q", s)
	}
}

// ShowIndexMode controls whether index levels appear as leading
// columns in the rendered table.
type ShowIndexMode int

const (
	// ShowIndexAuto shows the index when it is named or not a default range.
	ShowIndexAuto ShowIndexMode = iota
	// ShowIndexAlways always shows the index.
	ShowIndexAlways
	// ShowIndexNever never shows the index.
	ShowIndexNever
)

// Options bundles everything the renderer needs besides the table.
type Options struct {
	Engine    Engine
	TableID   string // generated per render when empty
	Classes   []string
	ShowIndex ShowIndexMode

	// Limits feed the downsampler before serialization.
	Limits downsample.Limits

	// LengthMenu is the page-size menu for datatables.net. Paging is
	// disabled automatically when the table has no more rows than the
	// first entry, unless Paging is set explicitly.
	LengthMenu []int
	Paging     *bool

	// EvalFunctions controls whether string grid arguments starting
	// with "function" are spliced into the page unquoted. Nil means
	// off with a warning when such arguments are present.
	EvalFunctions *bool

	// GridArgs are passed through to the grid library untouched.
	GridArgs map[string]any
}

// DefaultOptions returns the options used when the caller supplies
// none: datatables.net, auto index, 20 columns and 1 MiB of payload.
func DefaultOptions() Options {
	return Options{
		Engine:     DataTables,
		Classes:    []string{"display"},
		ShowIndex:  ShowIndexAuto,
		LengthMenu: []int{10, 25, 50, 100},
		Limits: downsample.Limits{
			MaxRows:    0,
			MaxColumns: 20,
			MaxBytes:   1 << 20,
		},
	}
}

// Output is the rendered document fragment plus the truncation flags
// the caller is responsible for surfacing to the end user.
type Output struct {
	HTML             string
	TableID          string
	RowsTruncated    bool
	ColumnsTruncated bool
}

// Renderer turns tables into HTML fragments with a fixed set of
// options. Safe for concurrent use; it holds no mutable state.
type Renderer struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a renderer.
func New(opts Options, logger zerolog.Logger) *Renderer {
	return &Renderer{opts: opts, logger: logger}
}

// HTML renders a table with the given options and no logging.
func HTML(t *table.Table, opts Options) (Output, error) {
	return New(opts, zerolog.Nop()).Render(t)
}

// Render downsamples the table, formats its values and substitutes
// them into the engine's HTML template.
func (r *Renderer) Render(t *table.Table) (Output, error) {
	ds, err := downsample.Downsample(t, r.opts.Limits)
	if err != nil {
		return Output{}, err
	}
	if ds.RowsTruncated || ds.ColumnsTruncated {
		r.logger.Warn().
			Int("rows", ds.Table.NumRows()).
			Int("cols", ds.Table.NumCols()).
			Bool("rows_truncated", ds.RowsTruncated).
			Bool("columns_truncated", ds.ColumnsTruncated).
			Msg("table downsampled to fit display limits")
	}

	tableID := r.opts.TableID
	if tableID == "" {
		tableID = utils.GenerateTableID()
	}

	showIndex := r.showIndex(ds.Table)

	var html string
	switch r.opts.Engine {
	case DataTables, "":
		html, err = r.datatablesHTML(ds.Table, tableID, showIndex)
	case AgGrid:
		html, err = r.agGridHTML(ds.Table, tableID, showIndex)
	default:
		return Output{}, errors.Newf(ErrUnsupportedEngine, "unsupported grid engine %q", r.opts.Engine)
	}
	if err != nil {
		return Output{}, err
	}

	return Output{
		HTML:             html,
		TableID:          tableID,
		RowsTruncated:    ds.RowsTruncated,
		ColumnsTruncated: ds.ColumnsTruncated,
	}, nil
}

func (r *Renderer) showIndex(t *table.Table) bool {
	switch r.opts.ShowIndex {
	case ShowIndexAlways:
		return true
	case ShowIndexNever:
		return false
	default:
		return !t.Index().IsDefaultRange()
	}
}

// columnNames returns the emitted column names, index levels first
// when shown.
func columnNames(t *table.Table, showIndex bool) []string {
	var names []string
	if showIndex {
		names = append(names, t.Index().Names()...)
	}
	return append(names, t.ColumnNames()...)
}
