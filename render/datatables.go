package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/TFMV/gridbox/format"
	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/table"
)

const datatablesTableMarker = `<table id="table_id"><thead><tr><th>A</th></tr></thead></table>`

func (r *Renderer) datatablesHTML(t *table.Table, tableID string, showIndex bool) (string, error) {
	args := make(map[string]any, len(r.opts.GridArgs)+2)
	for k, v := range r.opts.GridArgs {
		args[k] = v
	}
	if _, ok := args["lengthMenu"]; !ok && len(r.opts.LengthMenu) > 0 {
		args["lengthMenu"] = r.opts.LengthMenu
	}
	if r.opts.Paging != nil {
		args["paging"] = *r.opts.Paging
	} else if _, ok := args["paging"]; !ok {
		// No point in a page menu when everything fits on the first page.
		if menu := r.opts.LengthMenu; len(menu) > 0 && t.NumRows() <= menu[0] {
			args["paging"] = false
		}
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return "", errors.Wrap(errors.CommonInvalidInput, err, "grid arguments are not serializable")
	}

	dtArgs := string(raw)
	if r.opts.EvalFunctions != nil && *r.opts.EvalFunctions {
		dtArgs, err = dumpWithFunctions(args)
		if err != nil {
			return "", errors.Wrap(errors.CommonInvalidInput, err, "grid arguments are not serializable")
		}
	} else if r.opts.EvalFunctions == nil && containsFunction(raw) {
		r.logger.Warn().Msg("a grid argument starts with 'function'; enable EvalFunctions to evaluate it, or disable to silence this warning")
	}

	vals, err := format.Values(t, showIndex)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(vals.Rows)
	if err != nil {
		return "", errors.Wrap(errors.CommonInvalidInput, err, "table values are not serializable")
	}

	out, err := loadTemplate("datatables.html")
	if err != nil {
		return "", err
	}
	out, err = replaceValue(out, datatablesTableMarker, tableHeader(t, tableID, showIndex, r.opts.Classes), 1)
	if err != nil {
		return "", err
	}
	out, err = replaceValue(out, "#table_id", "#"+tableID, 2)
	if err != nil {
		return "", err
	}
	out, err = replaceValue(out, "let dt_args = {};", "let dt_args = "+dtArgs+";", 1)
	if err != nil {
		return "", err
	}
	return replaceValue(out, "const data = [];", "const data = "+string(data)+";", 1)
}

// tableHeader builds the table element with header cells only; the
// body is filled by the grid library from the embedded data.
func tableHeader(t *table.Table, tableID string, showIndex bool, classes []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<table id="%s" class="%s"><thead><tr>`,
		tableID, html.EscapeString(strings.Join(classes, " ")))
	for _, name := range columnNames(t, showIndex) {
		fmt.Fprintf(&sb, "<th>%s</th>", html.EscapeString(name))
	}
	sb.WriteString(`</tr></thead><tbody><tr><td>Loading...</td></tr></tbody></table>`)
	return sb.String()
}
