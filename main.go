package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orayew2002/pitch-card/config"
	"github.com/orayew2002/pitch-card/logging"
	"github.com/orayew2002/pitch-card/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	debug      bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "pitchcard",
		Short:        "Generate randomized pitch call cards as Excel workbooks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newGenerateCmd(a),
		newPresetsCmd(),
		newDraftCmd(a),
		newServeCmd(a),
	)
	return cmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(a.debug || cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = log
	return nil
}

// openStore opens the configured draft database. The caller closes it.
func (a *app) openStore() (*store.SQLite, error) {
	s, err := store.OpenSQLite(a.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("draft store opened", zap.String("path", a.cfg.Store.Path))
	return s, nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
