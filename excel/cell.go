package excel

import (
	"fmt"
	"unicode/utf8"
)

// CellName converts 0-based row and column indices to an Excel cell reference (e.g. 0,0 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", IndexToColumn(col), row+1)
}

// IndexToColumn converts a 0-based column index to Excel column letters (0→A, 25→Z, 26→AA).
func IndexToColumn(n int) string {
	result := ""
	for n >= 0 {
		result = string(rune('A'+(n%26))) + result
		n = n/26 - 1
	}
	return result
}

// ColumnWidths measures the longest text of every column in grid (in runes)
// and returns that length plus one. The first row decides the column count.
//
//	{"M", "10"}, {"1", "FB"} → [2, 3]
func ColumnWidths(grid [][]string) []float64 {
	if len(grid) == 0 {
		return nil
	}
	widths := make([]float64, len(grid[0]))
	for _, row := range grid {
		for c := range widths {
			if c >= len(row) {
				break
			}
			if n := float64(utf8.RuneCountInString(row[c])); n > widths[c] {
				widths[c] = n
			}
		}
	}
	for c := range widths {
		widths[c]++
	}
	return widths
}
