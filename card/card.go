// Package card produces the pitch card workbook: a Player grid of randomly
// drawn pitch codes and a Coach sheet listing where each pitch sits.
package card

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/orayew2002/pitch-card/coach"
	"github.com/orayew2002/pitch-card/domain"
	"github.com/orayew2002/pitch-card/layout"
	"github.com/orayew2002/pitch-card/processor"
	"github.com/orayew2002/pitch-card/sheet"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export is one generated workbook.
type Export struct {
	Filename string
	Data     []byte
	Player   layout.Matrix
	Coach    coach.Table
}

// Generator builds pitch card workbooks.
type Generator struct {
	rng domain.Rand
	log *zap.Logger
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used for pitch draws.
func WithRand(rng domain.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a Generator using the process random source unless
// WithRand is given.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: domain.DefaultRand(),
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the Player grid, derives the Coach table from it and
// serializes both into a workbook.
//
// sheetCount is accepted for compatibility with the entry form and does not
// change the output: every workbook holds one Player/Coach pair.
func (g *Generator) Generate(pitches []domain.Pitch, sheetCount int) (Export, error) {
	if sheetCount != 1 {
		g.log.Debug("sheet count ignored", zap.Int("sheets", sheetCount))
	}

	player := layout.Build(pitches, g.rng)
	table := coach.Build(&player, pitches)

	reg, err := registry(&player, table)
	if err != nil {
		return Export{}, err
	}

	data, err := processor.New(reg, g.log).WriteToBytes()
	if err != nil {
		return Export{}, fmt.Errorf("write workbook: %w", err)
	}

	exp := Export{
		Filename: Filename(g.now()),
		Data:     data,
		Player:   player,
		Coach:    table,
	}

	g.log.Info("pitch card generated",
		zap.String("file", exp.Filename),
		zap.Int("pitches", len(pitches)),
		zap.Int("coach_columns", len(table.Columns)),
		zap.Int("bytes", len(data)))

	return exp, nil
}

// WriteToFile generates a workbook and saves it to path. When path is a
// directory the timestamped filename is used inside it. It returns the path
// written.
func (g *Generator) WriteToFile(pitches []domain.Pitch, sheetCount int, path string) (string, error) {
	exp, err := g.Generate(pitches, sheetCount)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, exp.Filename)
	}

	if err := os.WriteFile(path, exp.Data, 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	return path, nil
}

func registry(player *layout.Matrix, table coach.Table) (*sheet.Registry, error) {
	reg := sheet.New()
	if err := reg.Register(sheet.PlayerSheet, sheet.Player(player)); err != nil {
		return nil, err
	}
	if err := reg.Register(sheet.CoachSheet, sheet.Coach(table)); err != nil {
		return nil, err
	}
	return reg, nil
}

// Filename returns the download name for a workbook generated at t, e.g.
// "pitch-card-2026-10-17T09-30-00.000Z.xlsx".
func Filename(t time.Time) string {
	ts := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return "pitch-card-" + strings.ReplaceAll(ts, ":", "-") + ".xlsx"
}
