package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/pitch-card/domain"
	"github.com/orayew2002/pitch-card/layout"
)

func TestSortReferences(t *testing.T) {
	refs := []string{"2-10", "10-1", "2-2"}
	SortReferences(refs)
	assert.Equal(t, []string{"2-2", "2-10", "10-1"}, refs)

	refs = []string{"45-5", "10-3", "10-1", "21-4"}
	SortReferences(refs)
	assert.Equal(t, []string{"10-1", "10-3", "21-4", "45-5"}, refs)
}

func TestBuild_SinglePitch(t *testing.T) {
	pitches := []domain.Pitch{{Name: "Fastball", Abbreviation: "FB", Percentage: "100"}}
	m := layout.Build(pitches, domain.NewSeededRand(1))

	table := Build(&m, pitches)
	require.Len(t, table.Columns, 1)

	col := table.Columns[0]
	assert.Equal(t, "FB", col.Code)
	assert.Equal(t, "Fastball", col.Name)
	require.Len(t, col.Refs, 120)
	assert.Equal(t, "10-1", col.Refs[0])
	assert.Equal(t, "10-2", col.Refs[1])
	assert.Equal(t, "45-5", col.Refs[119])

	sorted := append([]string(nil), col.Refs...)
	SortReferences(sorted)
	assert.Equal(t, sorted, col.Refs)
}

func TestBuild_RoundTripCount(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		pitches := domain.Presets()[int(seed)%3].Pitches
		m := layout.Build(pitches, domain.NewSeededRand(seed))
		table := Build(&m, pitches)

		assert.Equal(t, len(m.DataCells()), table.TotalRefs())
		assert.Equal(t, 120, table.TotalRefs())

		for i := 1; i < len(table.Columns); i++ {
			assert.Less(t, table.Columns[i-1].Code, table.Columns[i].Code)
		}
	}
}

func TestBuild_DuplicateCodesMerge(t *testing.T) {
	pitches := []domain.Pitch{
		{Name: "First", Abbreviation: "X", Percentage: "50"},
		{Name: "Second", Abbreviation: "X", Percentage: "50"},
	}
	m := layout.Build(pitches, domain.NewSeededRand(2))
	table := Build(&m, pitches)

	require.Len(t, table.Columns, 1)
	assert.Equal(t, "First", table.Columns[0].Name)
	assert.Len(t, table.Columns[0].Refs, 120)
}

func TestBuild_UnnamedCodeFallsBackToCode(t *testing.T) {
	pitches := []domain.Pitch{{Name: "", Abbreviation: "SL", Percentage: "10"}}
	m := layout.Build(pitches, nil)
	table := Build(&m, pitches)
	require.Len(t, table.Columns, 1)
	assert.Equal(t, "SL", table.Columns[0].Name)
}

func TestBuild_Empty(t *testing.T) {
	m := layout.Build(nil, nil)
	table := Build(&m, nil)

	assert.Empty(t, table.Columns)
	grid := table.Grid()
	require.Len(t, grid, 1)
	assert.Empty(t, grid[0])
}

func TestGrid_Padding(t *testing.T) {
	table := Table{Columns: []Column{
		{Code: "A", Name: "Alpha", Refs: []string{"10-1", "11-1"}},
		{Code: "B", Name: "Bravo", Refs: []string{"20-3"}},
	}}
	assert.Equal(t, [][]string{
		{"Alpha", "Bravo"},
		{"10-1", "20-3"},
		{"11-1", ""},
	}, table.Grid())
}
