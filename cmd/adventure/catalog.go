package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

func newClassesCmd(a *app) *cobra.Command {
	var showLore bool

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the playable hunter classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, tmpl := range a.provider.CharacterService.Classes() {
				stats := tmpl.BaseStats
				fmt.Fprintf(out, "%s  %s (%s)\n", tmpl.Icon, tmpl.DisplayName, tmpl.Class)
				fmt.Fprintf(out, "   %s\n", tmpl.Description)
				fmt.Fprintf(out, "   HP %d  STR %d  AGI %d  INT %d  DEF %d  MAG %d\n",
					stats.MaxHP, stats.Strength, stats.Agility, stats.Intelligence, stats.Defense, stats.MagicPower)
				fmt.Fprintf(out, "   Abilities: %s\n", strings.Join(tmpl.Abilities, ", "))
				if showLore {
					fmt.Fprintf(out, "   %s\n", tmpl.Lore)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showLore, "lore", false, "Include class lore")

	return cmd
}

func newBestiaryCmd(a *app) *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "bestiary",
		Short: "List the creatures the guild hunts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creatures := a.provider.Catalog.Creatures()
			if difficulty != "" {
				creatures = a.provider.Catalog.CreaturesFor([]entities.Difficulty{entities.Difficulty(strings.ToLower(difficulty))})
				if len(creatures) == 0 {
					return fmt.Errorf("no creatures with difficulty %q", difficulty)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIFFICULTY\tHP\tATK\tDEF\tABILITIES")
			for _, c := range creatures {
				names := make([]string, 0, len(c.Abilities))
				for _, ability := range c.Abilities {
					names = append(names, ability.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
					c.Name, catalog.DisplayName(string(c.Difficulty)), c.MaxHP, c.Attack, c.Defense, strings.Join(names, ", "))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only show easy, medium, hard or legendary creatures")

	return cmd
}
