package sheet

import (
	"github.com/orayew2002/pitch-card/layout"
	"github.com/xuri/excelize/v2"
)

// PlayerSheet is the name of the grid sheet.
const PlayerSheet = "Player"

var regionColors = map[layout.Region]string{
	layout.RegionBlock1M: ColorWhite,
	layout.RegionBlock1P: ColorBlue,
	layout.RegionBlock2M: ColorGray,
	layout.RegionBlock2P: ColorGreen,
}

// Player returns a RenderFunc writing the grid m: red headers, one
// background color per region, every cell bordered and centered.
func Player(m *layout.Matrix) RenderFunc {
	return func(f *excelize.File, sheet string, sm *StyleManager) error {
		return writeGrid(f, sm, sheet, m.Text(), func(sm *StyleManager, row, col int) (int, error) {
			return regionStyle(sm, m[row][col].Region)
		})
	}
}

func regionStyle(sm *StyleManager, region layout.Region) (int, error) {
	if region == layout.RegionHeader {
		return sm.Header(ColorRed)
	}
	if color, ok := regionColors[region]; ok {
		return sm.Filled(color)
	}
	return sm.Centered()
}
