package processor

import (
	"fmt"

	"github.com/orayew2002/pitch-card/sheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// defaultSheet is the sheet excelize creates with every new file.
const defaultSheet = "Sheet1"

// Processor renders the sheets of a registry into a new workbook.
type Processor struct {
	registry *sheet.Registry
	log      *zap.Logger
}

// New creates a Processor with the given sheet registry.
func New(registry *sheet.Registry, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{registry: registry, log: log}
}

// WriteToFile renders every registered sheet and saves the workbook to path.
func (p *Processor) WriteToFile(path string) error {
	f, err := p.render()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	p.log.Debug("workbook saved", zap.String("path", path))
	return nil
}

// WriteToBytes renders every registered sheet and returns the workbook as bytes.
func (p *Processor) WriteToBytes() ([]byte, error) {
	f, err := p.render()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

// render builds the workbook. On error the file is closed before returning.
func (p *Processor) render() (*excelize.File, error) {
	names := p.registry.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("render workbook: no sheets registered")
	}

	f := excelize.NewFile()
	sm := sheet.NewStyleManager(f)

	for i, name := range names {
		if err := p.addSheet(f, i, name); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if err := p.registry.Render(f, name, sm); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		p.log.Debug("sheet rendered", zap.String("sheet", name))
	}

	f.SetActiveSheet(0)
	return f, nil
}

// addSheet reuses the default sheet for the first name so the workbook holds
// only registered sheets.
func (p *Processor) addSheet(f *excelize.File, i int, name string) error {
	if i == 0 {
		return f.SetSheetName(defaultSheet, name)
	}
	_, err := f.NewSheet(name)
	return err
}
