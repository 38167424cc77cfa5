package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderFunc fills one worksheet. It receives the file, the sheet name and
// the style cache shared by every sheet of the workbook.
type RenderFunc func(f *excelize.File, sheet string, sm *StyleManager) error

// Registry holds the sheets of a workbook in the order they should appear.
type Registry struct {
	sheets []entry
}

type entry struct {
	name   string
	render RenderFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register appends a sheet. Names must be unique within a workbook.
func (r *Registry) Register(name string, render RenderFunc) error {
	if name == "" {
		return fmt.Errorf("register sheet: empty name")
	}
	for _, e := range r.sheets {
		if e.name == name {
			return fmt.Errorf("register sheet %q: already registered", name)
		}
	}
	r.sheets = append(r.sheets, entry{name: name, render: render})
	return nil
}

// Names returns the registered sheet names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sheets))
	for i, e := range r.sheets {
		names[i] = e.name
	}
	return names
}

// Render calls the render function registered for name.
func (r *Registry) Render(f *excelize.File, name string, sm *StyleManager) error {
	for _, e := range r.sheets {
		if e.name == name {
			return e.render(f, name, sm)
		}
	}
	return fmt.Errorf("render sheet %q: not registered", name)
}
