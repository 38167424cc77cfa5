package sheet

import (
	"fmt"

	"github.com/orayew2002/pitch-card/excel"
	"github.com/xuri/excelize/v2"
)

// styleFunc picks the style ID of the cell at (row, col).
type styleFunc func(sm *StyleManager, row, col int) (int, error)

// writeGrid writes every cell of grid with its style, then sizes the columns
// to fit their longest text.
func writeGrid(f *excelize.File, sm *StyleManager, sheet string, grid [][]string, style styleFunc) error {
	for r, row := range grid {
		for c, val := range row {
			cell := excel.CellName(r, c)
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}

			styleID, err := style(sm, r, c)
			if err != nil {
				return fmt.Errorf("style %s: %w", cell, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return fmt.Errorf("set style %s: %w", cell, err)
			}
		}
	}

	for c, w := range excel.ColumnWidths(grid) {
		col := excel.IndexToColumn(c)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("col %s width: %w", col, err)
		}
	}

	return nil
}
