package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orayew2002/pitch-card/card"
	"github.com/orayew2002/pitch-card/config"
	"github.com/orayew2002/pitch-card/domain"
)

// pitchSource collects the mutually exclusive ways of choosing pitches.
type pitchSource struct {
	file   string
	preset string
}

func (s *pitchSource) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "pitches", "", "YAML or JSON pitch list file")
	cmd.Flags().StringVar(&s.preset, "preset", "", "built-in preset name, see \"pitchcard presets\"")
	cmd.MarkFlagsMutuallyExclusive("pitches", "preset")
}

// resolve returns the selected pitches. With no source given it falls back
// to the saved draft.
func (s *pitchSource) resolve(ctx context.Context, a *app) ([]domain.Pitch, error) {
	switch {
	case s.file != "":
		return config.LoadPitches(s.file)
	case s.preset != "":
		p, err := domain.FindPreset(s.preset)
		if err != nil {
			return nil, err
		}
		return p.Pitches, nil
	}

	drafts, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer drafts.Close()

	pitches, ok, err := drafts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("no pitches given: use --pitches, --preset, or save a draft first")
	}
	return pitches, nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		src       pitchSource
		output    string
		seed      uint64
		seedSet   bool
		sheets    int
		skipCheck bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Player/Coach pitch card workbook",
		Long: `Generate draws a random pitch for every cell of the Player grid, weighted by
each pitch's percentage, and lists on the Coach sheet where every pitch landed.
Call out the column number followed by the row number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pitches, err := src.resolve(cmd.Context(), a)
			if err != nil {
				return err
			}
			if !skipCheck {
				if err := domain.Validate(pitches); err != nil {
					return err
				}
			}

			opts := []card.Option{card.WithLogger(a.log)}
			if seedSet = cmd.Flags().Changed("seed"); seedSet {
				opts = append(opts, card.WithRand(domain.NewSeededRand(seed)))
			}

			if output == "" {
				output = a.cfg.Output.Dir
			}

			start := time.Now()
			path, err := card.NewGenerator(opts...).WriteToFile(pitches, sheets, output)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			a.log.Debug("generate finished", zap.Duration("elapsed", time.Since(start)), zap.Bool("seeded", seedSet))
			printf(cmd.OutOrStdout(), "done: %s\n", path)
			return nil
		},
	}

	src.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or directory (default: output.dir from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible draws")
	cmd.Flags().IntVar(&sheets, "sheets", 1, "number of sheets (accepted for compatibility, has no effect)")
	cmd.Flags().BoolVar(&skipCheck, "no-validate", false, "skip the total-percentage and abbreviation checks")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in pitch presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range domain.Presets() {
				printf(out, "%s\n", p.Name)
				for _, pitch := range p.Pitches {
					printf(out, "  %-4s %-18s %s%%\n", pitch.Abbreviation, pitch.Name, pitch.Percentage)
				}
			}
			return nil
		},
	}
}
