package sheet

import "github.com/xuri/excelize/v2"

// Card colors.
const (
	ColorRed   = "FF0000"
	ColorWhite = "FFFFFF"
	ColorBlue  = "CCE6FF"
	ColorGray  = "D9D9D9"
	ColorGreen = "C6EFCE"
	ColorBlack = "000000"
)

// StyleManager caches Excel styles so each style is created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Centered returns a center-aligned bordered style with no fill (cached).
func (sm *StyleManager) Centered() (int, error) {
	return sm.getOrCreate("centered", &excelize.Style{
		Font:      defaultFont(),
		Alignment: centered(),
		Border:    defaultBorder(),
	})
}

// Filled returns a centered bordered style with a solid background (cached per color).
func (sm *StyleManager) Filled(color string) (int, error) {
	return sm.getOrCreate("fill:"+color, &excelize.Style{
		Font:      defaultFont(),
		Fill:      solidFill(color),
		Alignment: centered(),
		Border:    defaultBorder(),
	})
}

// Header returns a bold white-on-color header style (cached per color).
// The Player sheet uses red headers, the Coach sheet black ones.
func (sm *StyleManager) Header(color string) (int, error) {
	font := defaultFont()
	font.Bold = true
	font.Color = ColorWhite

	return sm.getOrCreate("header:"+color, &excelize.Style{
		Font:      font,
		Fill:      solidFill(color),
		Alignment: centered(),
		Border:    defaultBorder(),
	})
}

func (sm *StyleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

func defaultFont() *excelize.Font {
	return &excelize.Font{Family: "Calibri", Size: 11}
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func defaultBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
