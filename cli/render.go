package cli

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/spf13/cobra"

	"github.com/TFMV/gridbox/config"
	"github.com/TFMV/gridbox/pkg/errors"
	"github.com/TFMV/gridbox/render"
	"github.com/TFMV/gridbox/table"
)

// Package-specific error codes for cli
var (
	ErrInputReadFailed = errors.MustNewCode("cli.input_read_failed")
	ErrOutputFailed    = errors.MustNewCode("cli.output_failed")
	ErrBadGridArgs     = errors.MustNewCode("cli.bad_grid_args")
)

var renderCmd = &cobra.Command{
	Use:   "render <input.csv>",
	Short: "Render a CSV file as an interactive HTML table",
	Long: `Render a CSV file as a standalone HTML document with an interactive
table. Column types are inferred from the CSV contents.

The table is downsampled to fit the configured row, column and byte
limits before it is embedded in the page; a note is printed when rows
or columns were dropped.

Examples:
  gridbox render sales.csv                         # writes sales.html
  gridbox render sales.csv -o report.html
  gridbox render sales.csv --engine ag-grid
  gridbox render sales.csv --max-rows 1000 --max-bytes 524288
  gridbox render sales.csv --grid-args '{"scrollY": "400px"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file (default: input with .html extension)")
	renderCmd.Flags().String("engine", "", "grid engine: datatables.net or ag-grid")
	renderCmd.Flags().Int("max-rows", 0, "maximum rows to embed (0 = unlimited)")
	renderCmd.Flags().Int("max-columns", 0, "maximum columns to embed (0 = unlimited)")
	renderCmd.Flags().Int("max-bytes", 0, "maximum serialized payload size (0 = unlimited)")
	renderCmd.Flags().StringSlice("classes", nil, "CSS classes for the table element")
	renderCmd.Flags().String("show-index", "", "show the row index: auto, always or never")
	renderCmd.Flags().Int("precision", 0, "float display precision")
	renderCmd.Flags().String("table-id", "", "DOM id for the table element (default: generated)")
	renderCmd.Flags().String("grid-args", "", "extra grid arguments as a JSON object")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	input := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	if id, _ := cmd.Flags().GetString("table-id"); id != "" {
		opts.TableID = id
	}
	if raw, _ := cmd.Flags().GetString("grid-args"); raw != "" {
		var gridArgs map[string]any
		if err := json.Unmarshal([]byte(raw), &gridArgs); err != nil {
			return errors.Wrap(ErrBadGridArgs, err, "grid-args must be a JSON object")
		}
		opts.GridArgs = gridArgs
	}

	tbl, err := readCSV(input, cfg.Display.Precision)
	if err != nil {
		return err
	}
	logger.Info().
		Str("input", input).
		Int("rows", tbl.NumRows()).
		Int("cols", tbl.NumCols()).
		Msg("loaded table")

	out, err := render.New(opts, logger).Render(tbl)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.TrimSuffix(input, ".csv") + ".html"
	}
	if err := os.WriteFile(output, []byte(documentFor(input, out.HTML)), 0644); err != nil {
		return errors.Wrap(ErrOutputFailed, err, "failed to write output file")
	}

	fmt.Printf("Wrote %s (table %s)\n", output, out.TableID)
	if out.RowsTruncated {
		fmt.Println("Note: rows were dropped to fit the display limits; the page shows a subset of the input.")
	}
	if out.ColumnsTruncated {
		fmt.Println("Note: columns were dropped to fit the display limits; the page shows a subset of the input.")
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.LoadDefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// applyFlagOverrides lets explicit flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Display.Engine, _ = flags.GetString("engine")
	}
	if flags.Changed("max-rows") {
		cfg.Limits.MaxRows, _ = flags.GetInt("max-rows")
	}
	if flags.Changed("max-columns") {
		cfg.Limits.MaxColumns, _ = flags.GetInt("max-columns")
	}
	if flags.Changed("max-bytes") {
		cfg.Limits.MaxBytes, _ = flags.GetInt("max-bytes")
	}
	if flags.Changed("classes") {
		cfg.Display.Classes, _ = flags.GetStringSlice("classes")
	}
	if flags.Changed("show-index") {
		cfg.Display.ShowIndex, _ = flags.GetString("show-index")
	}
	if flags.Changed("precision") {
		cfg.Display.Precision, _ = flags.GetInt("precision")
	}
}

// readCSV loads a CSV file into a table, inferring column types.
func readCSV(path string, precision int) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(ErrInputReadFailed, err, "failed to open input file")
	}
	defer f.Close()

	rdr := csv.NewInferringReader(f,
		csv.WithChunk(-1),
		csv.WithHeader(true),
		csv.WithNullReader(true, ""),
	)
	defer rdr.Release()

	if !rdr.Next() {
		if err := rdr.Err(); err != nil {
			return nil, errors.Wrap(ErrInputReadFailed, err, "failed to read CSV")
		}
		return table.New(nil, table.WithPrecision(precision))
	}
	rec := rdr.Record()
	tbl, err := table.FromRecord(rec, table.WithPrecision(precision))
	if err != nil {
		return nil, err
	}
	if err := rdr.Err(); err != nil {
		return nil, errors.Wrap(ErrInputReadFailed, err, "failed to read CSV")
	}
	return tbl, nil
}

func documentFor(title, fragment string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(fmt.Sprintf("  <meta charset=\"utf-8\">\n  <title>%s</title>\n", html.EscapeString(title)))
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(fragment)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}
