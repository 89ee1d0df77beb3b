package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/gridbox/table"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSVInfersColumnKinds(t *testing.T) {
	path := writeCSV(t, "id,score,label\n1,1.5,a\n2,2.5,b\n3,3.5,c\n")

	tbl, err := readCSV(path, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, []string{"id", "score", "label"}, tbl.ColumnNames())
	assert.Equal(t, table.KindInt, tbl.Column(0).Kind)
	assert.Equal(t, table.KindFloat, tbl.Column(1).Kind)
	assert.Equal(t, table.KindString, tbl.Column(2).Kind)
	assert.Equal(t, 2, tbl.Precision())
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := readCSV(filepath.Join(t.TempDir(), "missing.csv"), 6)
	assert.Error(t, err)
}

func TestRenderCommandWritesDocument(t *testing.T) {
	input := writeCSV(t, "a,b\n1,x\n2,y\n")
	output := filepath.Join(t.TempDir(), "out.html")

	rootCmd.SetArgs([]string{"render", input, "-o", output, "--table-id", "Tcli"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `<table id="Tcli"`)
	assert.Contains(t, html, "<th>a</th><th>b</th>")
}

func TestDocumentForEscapesTitle(t *testing.T) {
	doc := documentFor("<script>", "<div></div>")
	assert.Contains(t, doc, "<title>&lt;script&gt;</title>")
	assert.Contains(t, doc, "<div></div>")
}
