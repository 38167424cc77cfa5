package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newDraftCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage the saved draft pitch list",
	}
	cmd.AddCommand(newDraftSaveCmd(a), newDraftShowCmd(a), newDraftClearCmd(a))
	return cmd
}

func newDraftSaveCmd(a *app) *cobra.Command {
	var src pitchSource

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a pitch list as the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if src.file == "" && src.preset == "" {
				return errors.New("draft save: --pitches or --preset is required")
			}
			pitches, err := src.resolve(cmd.Context(), a)
			if err != nil {
				return err
			}

			drafts, err := a.openStore()
			if err != nil {
				return err
			}
			defer drafts.Close()

			if err := drafts.Save(cmd.Context(), pitches); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "saved %d pitches\n", len(pitches))
			return nil
		},
	}
	src.bind(cmd)
	return cmd
}

func newDraftShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			drafts, err := a.openStore()
			if err != nil {
				return err
			}
			defer drafts.Close()

			pitches, ok, err := drafts.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				printf(out, "no draft saved\n")
				return nil
			}
			for _, p := range pitches {
				printf(out, "%-4s %-18s %s%%\n", p.Abbreviation, p.Name, p.Percentage)
			}
			return nil
		},
	}
}

func newDraftClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			drafts, err := a.openStore()
			if err != nil {
				return err
			}
			defer drafts.Close()

			if err := drafts.Clear(cmd.Context()); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "draft cleared\n")
			return nil
		},
	}
}
