// Package coach cross-indexes the Player grid: for every pitch code it lists
// the coordinates where that code was drawn.
package coach

import (
	"sort"
	"strconv"
	"strings"

	"github.com/orayew2002/pitch-card/domain"
	"github.com/orayew2002/pitch-card/layout"
)

// Column is one pitch on the Coach sheet.
type Column struct {
	Code string
	Name string
	Refs []string
}

// Table is the Coach sheet content, columns ordered by code.
type Table struct {
	Columns []Column
}

// Build groups every drawn cell of m by its code. Names are resolved from
// pitches; the first pitch with a given abbreviation wins, and codes without a
// matching pitch keep the raw code as name.
func Build(m *layout.Matrix, pitches []domain.Pitch) Table {
	names := make(map[string]string, len(pitches))
	for _, p := range pitches {
		if _, ok := names[p.Abbreviation]; !ok {
			names[p.Abbreviation] = p.Name
		}
	}

	buckets := map[string][]string{}
	for _, cell := range m.DataCells() {
		if cell.Code == "" || cell.ColumnTag == "" || cell.RowTag == "" {
			continue
		}
		buckets[cell.Code] = append(buckets[cell.Code], cell.Reference())
	}

	codes := make([]string, 0, len(buckets))
	for code := range buckets {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	t := Table{Columns: make([]Column, 0, len(codes))}
	for _, code := range codes {
		refs := buckets[code]
		SortReferences(refs)

		name := names[code]
		if name == "" {
			name = code
		}
		t.Columns = append(t.Columns, Column{Code: code, Name: name, Refs: refs})
	}

	return t
}

// SortReferences orders "column-row" references numerically, by column and
// then by row, so "2-2" < "2-10" < "10-1".
func SortReferences(refs []string) {
	sort.SliceStable(refs, func(i, j int) bool {
		ic, ir := splitReference(refs[i])
		jc, jr := splitReference(refs[j])
		if ic != jc {
			return ic < jc
		}
		return ir < jr
	})
}

func splitReference(ref string) (col, row int) {
	c, r, _ := strings.Cut(ref, "-")
	col, _ = strconv.Atoi(c)
	row, _ = strconv.Atoi(r)
	return col, row
}

// MaxRefs returns the length of the longest column.
func (t Table) MaxRefs() int {
	n := 0
	for _, c := range t.Columns {
		if len(c.Refs) > n {
			n = len(c.Refs)
		}
	}
	return n
}

// TotalRefs counts references across all columns.
func (t Table) TotalRefs() int {
	n := 0
	for _, c := range t.Columns {
		n += len(c.Refs)
	}
	return n
}

// Grid renders the table as rows of text: row 0 holds the pitch names, the
// rest hold references top-down. Short columns are padded with "".
// An empty table yields a single empty row.
func (t Table) Grid() [][]string {
	rows := make([][]string, 1+t.MaxRefs())
	for r := range rows {
		rows[r] = make([]string, len(t.Columns))
	}
	for c, col := range t.Columns {
		rows[0][c] = col.Name
		for r, ref := range col.Refs {
			rows[r+1][c] = ref
		}
	}
	return rows
}
