package sheet

import (
	"github.com/orayew2002/pitch-card/coach"
	"github.com/xuri/excelize/v2"
)

// CoachSheet is the name of the cross-reference sheet.
const CoachSheet = "Coach"

// Coach returns a RenderFunc writing table t: one column per pitch, a black
// header row of pitch names and the sorted references below it.
func Coach(t coach.Table) RenderFunc {
	return func(f *excelize.File, sheet string, sm *StyleManager) error {
		return writeGrid(f, sm, sheet, t.Grid(), func(sm *StyleManager, row, _ int) (int, error) {
			if row == 0 {
				return sm.Header(ColorBlack)
			}
			return sm.Centered()
		})
	}
}
