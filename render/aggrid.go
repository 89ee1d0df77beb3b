package render

import (
	"encoding/json"
	"strconv"

	"github.com/TFMV/gridbox/format"
	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/table"
)

const agGridOptionsMarker = "const gridOptions = {columnDefs: columnDefs, rowData: rowData};"

func (r *Renderer) agGridHTML(t *table.Table, tableID string, showIndex bool) (string, error) {
	if r.opts.EvalFunctions != nil {
		return "", errors.New(errors.CommonUnsupported, "EvalFunctions is not implemented for ag-grid")
	}

	gridOptions := make(map[string]any, len(r.opts.GridArgs)+2)
	for k, v := range r.opts.GridArgs {
		gridOptions[k] = v
	}

	// ag-grid addresses columns by field name; ordinals keep duplicate
	// column names apart.
	names := columnNames(t, showIndex)
	columnDefs := make([]map[string]any, len(names))
	for i, name := range names {
		columnDefs[i] = map[string]any{
			"field":      strconv.Itoa(i),
			"headerName": name,
			"sortable":   true,
			"filter":     true,
		}
	}
	gridOptions["columnDefs"] = columnDefs

	vals, err := format.Values(t, showIndex)
	if err != nil {
		return "", err
	}
	rowData := make([]map[string]any, len(vals.Rows))
	for i, row := range vals.Rows {
		entry := make(map[string]any, len(row))
		for j, v := range row {
			entry[strconv.Itoa(j)] = v
		}
		rowData[i] = entry
	}
	gridOptions["rowData"] = rowData

	optsJSON, err := json.Marshal(gridOptions)
	if err != nil {
		return "", errors.Wrap(errors.CommonInvalidInput, err, "grid options are not serializable")
	}

	out, err := loadTemplate("aggrid.html")
	if err != nil {
		return "", err
	}
	out, err = replaceValue(out, "table_id", tableID, 2)
	if err != nil {
		return "", err
	}
	return replaceValue(out, agGridOptionsMarker, "const gridOptions = "+string(optsJSON)+";", 1)
}
