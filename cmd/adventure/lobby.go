package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/multiplayer"
)

var defaultParty = []string{"Aria:swordsman", "Borin:warrior", "Cass:magician"}

func newLobbyCmd(a *app) *cobra.Command {
	var (
		party      []string
		maxPlayers int
	)

	cmd := &cobra.Command{
		Use:   "lobby",
		Short: "Run a multiplayer lobby from creation to a team fight",
		Long: `Creates a lobby for the first hunter in --party, has the rest join, starts the
session, draws a team contract and opens the team fight. Hunters are given as name:class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			chars := a.provider.CharacterService
			mp := a.provider.MultiplayerService

			if len(party) < multiplayer.MinPlayers {
				return fmt.Errorf("a party needs at least %d hunters", multiplayer.MinPlayers)
			}

			hunters := make([]*entities.Character, 0, len(party))
			for _, entry := range party {
				name, class, ok := strings.Cut(entry, ":")
				if !ok {
					return fmt.Errorf("hunter %q must be name:class", entry)
				}
				parsed, ok := entities.ParseClass(class)
				if !ok {
					return fmt.Errorf("unknown class %q for %s", class, name)
				}
				hunter, err := chars.Create(name, parsed)
				if err != nil {
					return err
				}
				hunters = append(hunters, hunter)
			}

			session, err := mp.CreateSession(ctx, hunters[0], maxPlayers)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s opened lobby %s (%d seats)\n", session.Host, session.ID, session.MaxPlayers)

			for _, hunter := range hunters[1:] {
				if _, err := mp.JoinSession(ctx, session.ID, hunter); err != nil {
					fmt.Fprintf(out, "%s could not join: %v\n", hunter.Name, err)
					continue
				}
				fmt.Fprintf(out, "%s the %s joined\n", hunter.Name, catalog.DisplayName(string(hunter.Class)))
			}

			listings, err := mp.ListWaitingSessions(ctx)
			if err != nil {
				return err
			}
			for _, l := range listings {
				fmt.Fprintf(out, "Open lobby %s hosted by %s: %d/%d\n", l.SessionID, l.Host, l.Players, l.MaxPlayers)
			}

			if _, err := mp.StartSession(ctx, session.ID); err != nil {
				return err
			}

			quest, err := mp.GenerateQuest(ctx, session.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n%s\n", quest.Title, quest.Description)
			fmt.Fprintf(out, "Team reward: %d gold, %d exp each\n", quest.Rewards.Gold, quest.Rewards.Experience)

			fight, err := mp.CreateTeamCombat(ctx, session.ID, quest.Creature)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s (HP %d, ATK %d)\n", fight.Enemy.Name, fight.Enemy.CurrentHP, fight.Enemy.Attack)
			fmt.Fprintf(out, "Turn order: %s\n", strings.Join(fight.TurnOrder, " > "))

			stats, err := mp.GetSessionStats(ctx, session.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d hunters, average level %.1f, %d gold between them\n",
				stats.NumPlayers, stats.AverageLevel, stats.TotalGold)

			for _, hunter := range hunters {
				if _, err := mp.LeaveSession(ctx, hunter.Name); err != nil {
					fmt.Fprintf(out, "%s could not leave: %v\n", hunter.Name, err)
				}
			}

			swept, err := mp.CleanupExpiredSessions(ctx, a.cfg.Session.MaxAge)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Lobby closed. %d stale lobbies swept.\n", swept)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&party, "party", defaultParty, "Hunters as name:class, host first")
	cmd.Flags().IntVar(&maxPlayers, "max-players", multiplayer.DefaultMaxPlayers, "Lobby size")

	return cmd
}
