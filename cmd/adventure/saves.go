package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress for the saved hunter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.provider.SaveGameService
			state, err := svc.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load game: %w", err)
			}

			player := state.Player
			stats := svc.PlayerStatistics(player)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s the %s\n", player.Name, catalog.DisplayName(string(player.Class)))
			fmt.Fprintf(out, "  Level:              %d\n", stats.Level)
			fmt.Fprintf(out, "  Experience:         %d / %d\n", stats.TotalExperience, player.ExperienceToNext)
			fmt.Fprintf(out, "  Gold:               %d\n", stats.Gold)
			fmt.Fprintf(out, "  Quests completed:   %d\n", stats.QuestsCompleted)
			fmt.Fprintf(out, "  Monsters defeated:  %d\n", stats.MonstersDefeated)
			fmt.Fprintf(out, "  Avg exp per quest:  %.1f\n", stats.AvgExperiencePerQuest)
			return nil
		},
	}
}

func newSavesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "saves",
		Short: "List saved games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := a.provider.SaveGameService.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list saves: %w", err)
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved games.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLOT\tPLAYER\tLEVEL\tSAVED")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Slot, s.Player, s.Level, s.SavedAt.Local().Format(time.DateTime))
			}
			return w.Flush()
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the saved game to a portable JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.provider.SaveGameService
			state, err := svc.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load game: %w", err)
			}

			data, err := svc.Export(state)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", state.Player.Name, args[0])
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved game with an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			svc := a.provider.SaveGameService
			state, err := svc.Import(data)
			if err != nil {
				return err
			}
			if err := svc.Save(cmd.Context(), state); err != nil {
				return fmt.Errorf("failed to save imported game: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (level %d)\n", state.Player.Name, state.Player.Level)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.provider.SaveGameService.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear save: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Save cleared.")
			return nil
		},
	}
}
