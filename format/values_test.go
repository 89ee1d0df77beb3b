package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/gridbox/table"
)

func TestPassthroughKinds(t *testing.T) {
	tbl := table.MustNew([]table.Column{
		table.Bool("b", []bool{true, false}),
		table.Int("i", []int64{1, 2}),
		table.String("s", []string{"x", "y"}),
	})

	res, err := Values(tbl, false)
	require.NoError(t, err)

	assert.Equal(t, [][]any{
		{true, int64(1), "x"},
		{false, int64(2), "y"},
	}, res.Rows)
	for _, c := range res.Columns {
		assert.Equal(t, OutcomePassthrough, c.Outcome, "column %q", c.Name)
	}
}

func TestFloatRoundTripAtPrecision(t *testing.T) {
	tbl := table.MustNew(
		[]table.Column{table.Float("f", []float64{1.0, 2.5, 3.14159})},
		table.WithPrecision(2),
	)

	res, err := Values(tbl, false)
	require.NoError(t, err)

	assert.Equal(t, [][]any{{1.0}, {2.5}, {3.14}}, res.Rows)
	assert.Equal(t, OutcomeFormatted, res.Columns[0].Outcome)
}

func TestFloatColumnFallbackKeepsOriginals(t *testing.T) {
	// A float-tagged column with a stray non-float value cannot round
	// trip; the whole column falls back to the original values.
	col := table.Column{Kind: table.KindFloat, Name: "f", Values: []any{1.5, "oops"}}
	tbl := table.MustNew([]table.Column{col})

	res, err := Values(tbl, false)
	require.NoError(t, err)

	assert.Equal(t, OutcomeFallback, res.Columns[0].Outcome)
	assert.Equal(t, [][]any{{1.5}, {"oops"}}, res.Rows)
}

func TestNonFiniteFloatsBecomeStrings(t *testing.T) {
	tbl := table.MustNew([]table.Column{
		table.Float("f", []float64{1.0, math.NaN(), math.Inf(1)}),
	})

	res, err := Values(tbl, false)
	require.NoError(t, err)

	assert.Equal(t, OutcomeFormatted, res.Columns[0].Outcome)
	assert.Equal(t, 1.0, res.Rows[0][0])
	assert.Equal(t, "NaN", res.Rows[1][0])
	assert.Equal(t, "+Inf", res.Rows[2][0])
}

func TestObjectColumnStringified(t *testing.T) {
	tbl := table.MustNew([]table.Column{
		table.Object("o", []any{[]int{1, 2}, map[string]int{"a": 1}}),
	})

	res, err := Values(tbl, false)
	require.NoError(t, err)

	assert.Equal(t, OutcomeFormatted, res.Columns[0].Outcome)
	assert.Equal(t, "[1 2]", res.Rows[0][0])
	assert.Equal(t, "map[a:1]", res.Rows[1][0])
}

func TestIncludeIndexPrependsLevels(t *testing.T) {
	tbl := table.MustNew(
		[]table.Column{table.Int("a", []int64{10, 20})},
		table.WithIndex(table.NewIndex(table.String("id", []string{"x", "y"}))),
	)

	res, err := Values(tbl, true)
	require.NoError(t, err)

	assert.Equal(t, [][]any{{"x", int64(10)}, {"y", int64(20)}}, res.Rows)
	assert.Equal(t, "id", res.Columns[0].Name)
}

func TestNilValuesStayNil(t *testing.T) {
	col := table.Column{Kind: table.KindFloat, Name: "f", Values: []any{1.5, nil}}
	tbl := table.MustNew([]table.Column{col})

	res, err := Values(tbl, false)
	require.NoError(t, err)
	assert.Nil(t, res.Rows[1][0])
}

func TestNilTableRejected(t *testing.T) {
	_, err := Values(nil, false)
	assert.Error(t, err)
}

func TestEmptyTable(t *testing.T) {
	res, err := Values(table.MustNew(nil), false)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}
