// Package layout builds the Player grid: two blocks, each holding an "M"
// region and a "P" region of 5×6 randomly drawn pitch codes.
package layout

import (
	"strconv"

	"github.com/orayew2002/pitch-card/domain"
)

const (
	Rows = 13
	Cols = 15

	blockRows   = 5
	regionCols  = 6
	blockHeight = blockRows + 2 // header row, five data rows, spacer row
	picksPerRow = 2 * regionCols
)

// Region identifies which part of the grid a cell belongs to.
type Region int

const (
	RegionNone Region = iota
	RegionHeader
	RegionBlock1M
	RegionBlock1P
	RegionBlock2M
	RegionBlock2P
)

// IsData reports whether cells of this region hold drawn pitches.
func (r Region) IsData() bool {
	return r >= RegionBlock1M && r <= RegionBlock2P
}

// Cell is one position of the Player grid.
// Structural cells only carry Text; data cells also carry the drawn Code and
// the column/row tags of the headers they sit under.
type Cell struct {
	Text      string
	Code      string
	ColumnTag string
	RowTag    string
	Region    Region
}

// Reference returns the "column-row" coordinate of a data cell.
func (c Cell) Reference() string {
	return c.ColumnTag + "-" + c.RowTag
}

// Matrix is the full Player grid. It is a value type: once built it is
// never modified.
type Matrix [Rows][Cols]Cell

// block describes one half of the grid.
type block struct {
	headerRow int
	mTagBase  int // first column tag of the M region, e.g. 10
	pTagBase  int // first column tag of the P region, e.g. 20
	m, p      Region
}

var blocks = []block{
	{headerRow: 0, mTagBase: 10, pTagBase: 20, m: RegionBlock1M, p: RegionBlock1P},
	{headerRow: blockHeight, mTagBase: 30, pTagBase: 40, m: RegionBlock2M, p: RegionBlock2P},
}

// marker columns; M region is to the right of mCol, P region right of pCol.
const (
	mCol = 0
	pCol = mCol + regionCols + 1
)

// Build lays out the grid and fills every data cell with a weighted draw.
// Each block gets its own 60-pick sequence, consumed row by row through the
// M region first and then the P region.
func Build(pitches []domain.Pitch, rng domain.Rand) Matrix {
	var m Matrix

	for r := range Rows {
		for c := range Cols {
			if isHeader(r, c) {
				m[r][c].Region = RegionHeader
			}
		}
	}

	for _, b := range blocks {
		seq := domain.GenerateSequence(pitches, blockRows*picksPerRow, rng)
		writeHeaders(&m, b)
		idx := 0
		idx = fillRegion(&m, b, mCol, b.mTagBase, b.m, seq, idx)
		fillRegion(&m, b, pCol, b.pTagBase, b.p, seq, idx)
	}

	return m
}

func isHeader(r, c int) bool {
	for _, b := range blocks {
		if r == b.headerRow {
			return true
		}
	}
	return c == mCol || c == pCol
}

func writeHeaders(m *Matrix, b block) {
	m[b.headerRow][mCol].Text = "M"
	m[b.headerRow][pCol].Text = "P"

	for i := range regionCols {
		m[b.headerRow][mCol+1+i].Text = strconv.Itoa(b.mTagBase + i)
		m[b.headerRow][pCol+1+i].Text = strconv.Itoa(b.pTagBase + i)
	}

	for i := range blockRows {
		tag := strconv.Itoa(i + 1)
		m[b.headerRow+1+i][mCol].Text = tag
		m[b.headerRow+1+i][pCol].Text = tag
	}
}

func fillRegion(m *Matrix, b block, markerCol, tagBase int, region Region, seq []string, idx int) int {
	for i := range blockRows {
		row := b.headerRow + 1 + i
		for j := range regionCols {
			code := seq[idx]
			idx++
			m[row][markerCol+1+j] = Cell{
				Text:      code,
				Code:      code,
				ColumnTag: strconv.Itoa(tagBase + j),
				RowTag:    strconv.Itoa(i + 1),
				Region:    region,
			}
		}
	}
	return idx
}

// DataCells returns the data cells in scan order (row outer, column inner).
func (m *Matrix) DataCells() []Cell {
	out := make([]Cell, 0, len(blocks)*2*blockRows*regionCols)
	for r := range Rows {
		for c := range Cols {
			if m[r][c].Region.IsData() {
				out = append(out, m[r][c])
			}
		}
	}
	return out
}

// Text returns the grid as plain strings, one slice per row.
func (m *Matrix) Text() [][]string {
	out := make([][]string, Rows)
	for r := range Rows {
		out[r] = make([]string, Cols)
		for c := range Cols {
			out[r][c] = m[r][c].Text
		}
	}
	return out
}
