package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/adventure"
)

func newPlayCmd(a *app) *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a solo hunt",
		Long:  `Create or load a hunter, take guild contracts and fight them turn by turn. Progress is saved after every fight.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &player{
				app: a,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return p.run(cmd.Context(), fresh)
		},
	}
	cmd.Flags().BoolVar(&fresh, "new", false, "Start a new hunter even if a save exists")

	return cmd
}

// player runs the interactive loop over a line-oriented reader
type player struct {
	app   *app
	in    *bufio.Scanner
	out   io.Writer
	state *entities.GameState
}

func (p *player) prompt(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *player) run(ctx context.Context, fresh bool) error {
	adv := p.app.provider.AdventureService

	if !fresh {
		state, err := adv.LoadGame(ctx)
		switch {
		case err == nil:
			p.state = state
			fmt.Fprintf(p.out, "Welcome back, %s.\n", state.Player.Name)
		case !rpgerr.IsNotFound(err):
			return fmt.Errorf("failed to load game: %w", err)
		}
	}

	if p.state == nil {
		if err := p.createHunter(ctx); err != nil {
			return err
		}
	}

	for {
		if p.state.Combat != nil && !p.state.Combat.IsOver() {
			done, err := p.fightTurn(ctx)
			if err != nil || done {
				return err
			}
			continue
		}

		p.showStatus()
		choice, ok := p.prompt("[q]uest  [h]unt  [a]bandon  [s]ave  e[x]it > ")
		if !ok {
			return p.save(ctx)
		}

		var err error
		switch strings.ToLower(choice) {
		case "q", "quest":
			err = p.takeQuest(ctx)
		case "h", "hunt":
			err = p.hunt(ctx)
		case "a", "abandon":
			err = adv.AbandonQuest(ctx, p.state)
			if err == nil {
				fmt.Fprintln(p.out, "Contract abandoned.")
			}
		case "s", "save":
			err = p.save(ctx)
		case "x", "exit":
			return p.save(ctx)
		default:
			fmt.Fprintln(p.out, "Unknown choice.")
		}

		if err != nil {
			if rpgerr.IsFailedPrecondition(err) || rpgerr.IsInvalidArgument(err) {
				fmt.Fprintln(p.out, err)
				continue
			}
			return err
		}
	}
}

func (p *player) createHunter(ctx context.Context) error {
	name, ok := p.prompt("Name your hunter: ")
	if !ok {
		return io.ErrUnexpectedEOF
	}

	classes := p.app.provider.CharacterService.Classes()
	for i, tmpl := range classes {
		fmt.Fprintf(p.out, "%d. %s %s - %s\n", i+1, tmpl.Icon, tmpl.DisplayName, tmpl.Description)
	}

	for {
		answer, ok := p.prompt("Choose a class: ")
		if !ok {
			return io.ErrUnexpectedEOF
		}
		class, found := pickClass(classes, answer)
		if !found {
			fmt.Fprintln(p.out, "Pick a number or class name from the list.")
			continue
		}

		state, err := p.app.provider.AdventureService.NewGame(ctx, name, class)
		if err != nil {
			return err
		}
		p.state = state
		fmt.Fprintf(p.out, "%s joins the guild as a %s.\n", state.Player.Name, catalog.DisplayName(string(class)))
		return nil
	}
}

func pickClass(classes []catalog.ClassTemplate, answer string) (entities.CharacterClass, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(classes) {
			return classes[n-1].Class, true
		}
		return "", false
	}
	for _, tmpl := range classes {
		if strings.EqualFold(answer, string(tmpl.Class)) || strings.EqualFold(answer, tmpl.DisplayName) {
			return tmpl.Class, true
		}
	}
	return "", false
}

func (p *player) showStatus() {
	c := p.state.Player
	fmt.Fprintf(p.out, "\n%s  Lv %d  HP %d/%d  EXP %d/%d  Gold %d\n",
		c.Name, c.Level, c.CurrentHP, c.Stats.MaxHP, c.Experience, c.ExperienceToNext, c.Gold)
	if q := p.state.CurrentQuest; q != nil {
		fmt.Fprintf(p.out, "Contract: %s (%s)\n", q.Title, catalog.DisplayName(string(q.Difficulty)))
	}
}

func (p *player) takeQuest(ctx context.Context) error {
	q, err := p.app.provider.AdventureService.NewQuest(ctx, p.state)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "\n%s\n%s\n", q.Title, q.Description)
	if q.Narrative != nil && q.Narrative.EnhancedDescription != "" {
		fmt.Fprintf(p.out, "%s\n", q.Narrative.EnhancedDescription)
	}
	fmt.Fprintf(p.out, "Offered by %s. Reward: %d gold, %d exp.\n", q.Giver, q.Rewards.Gold, q.Rewards.Experience)
	return nil
}

func (p *player) hunt(ctx context.Context) error {
	encounter, err := p.app.provider.AdventureService.BeginHunt(ctx, p.state)
	if err != nil {
		return err
	}

	enemy := encounter.Combat.Enemy
	fmt.Fprintf(p.out, "\n%s\n%s appears! (HP %d, ATK %d, DEF %d)\n", encounter.Story, enemy.Name, enemy.MaxHP, enemy.Attack, enemy.Defense)
	return nil
}

// fightTurn plays one round. It reports done when input ran out.
func (p *player) fightTurn(ctx context.Context) (bool, error) {
	session := p.state.Combat
	fmt.Fprintf(p.out, "\nRound %d  You %d/%d HP  %s %d/%d HP\n",
		session.Round, session.Player.CurrentHP, session.Player.Stats.MaxHP,
		session.Enemy.Name, session.Enemy.CurrentHP, session.Enemy.MaxHP)

	choice, ok := p.prompt("[a]ttack  [d]efend > ")
	if !ok {
		return true, p.save(ctx)
	}

	adv := p.app.provider.AdventureService
	before := len(session.Log)
	var (
		result *adventure.TurnResult
		err    error
	)
	switch strings.ToLower(choice) {
	case "a", "attack":
		result, err = adv.Attack(ctx, p.state)
	case "d", "defend":
		result, err = adv.Defend(ctx, p.state)
	default:
		fmt.Fprintln(p.out, "Attack or defend.")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	for _, line := range session.Log[before:] {
		fmt.Fprintln(p.out, " ", line)
	}

	if result.Outcome != nil {
		p.showOutcome(result.Outcome)
		return false, p.save(ctx)
	}
	return false, nil
}

func (p *player) showOutcome(outcome *adventure.Outcome) {
	if outcome.Result == adventure.OutcomeDefeat {
		fmt.Fprintf(p.out, "\nYou were driven off. The contract %q is still open.\n", outcome.Quest.Title)
		return
	}

	fmt.Fprintf(p.out, "\nVictory! +%d gold, +%d exp\n", outcome.Rewards.Gold, outcome.Rewards.Experience)
	if len(outcome.Rewards.Items) > 0 {
		fmt.Fprintf(p.out, "Loot: %s\n", strings.Join(outcome.Rewards.Items, ", "))
	}
	for _, levelUp := range outcome.LevelUps {
		fmt.Fprintf(p.out, "Level up! Now level %d (+%d HP)\n", levelUp.NewLevel, levelUp.HPGain)
	}
	if outcome.Story != "" {
		fmt.Fprintf(p.out, "\n%s\n", outcome.Story)
	}
	if outcome.PlotTwist != "" {
		fmt.Fprintf(p.out, "\n%s\n", outcome.PlotTwist)
	}
}

func (p *player) save(ctx context.Context) error {
	if p.state == nil {
		return nil
	}
	if err := p.app.provider.AdventureService.SaveGame(ctx, p.state); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	fmt.Fprintln(p.out, "Game saved.")
	return nil
}
