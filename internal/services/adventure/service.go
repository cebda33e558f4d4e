package adventure

//go:generate mockgen -destination=mock/mock_service.go -package=mockadventure -source=service.go

import (
	"context"
	"log"

	internal "github.com/Darkkkking/ai-rpg-adventure/internal"
	"github.com/Darkkkking/ai-rpg-adventure/internal/clock"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/character"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/combat"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/narrative"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/quest"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/savegame"
)

const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
)

// Service drives a solo game: one hunter, one contract, one fight at a time.
// Every method mutates the GameState it is given.
type Service interface {
	// NewGame creates a level 1 hunter with an empty story
	NewGame(ctx context.Context, name string, class entities.CharacterClass) (*entities.GameState, error)

	// NewQuest offers a contract to the player
	NewQuest(ctx context.Context, state *entities.GameState) (*entities.Quest, error)

	// AbandonQuest drops the current contract
	AbandonQuest(ctx context.Context, state *entities.GameState) error

	// BeginHunt starts the fight for the current contract
	BeginHunt(ctx context.Context, state *entities.GameState) (*Encounter, error)

	// Attack resolves the player's attack and the enemy's reply
	Attack(ctx context.Context, state *entities.GameState) (*TurnResult, error)

	// Defend braces, heals and takes the enemy's reply
	Defend(ctx context.Context, state *entities.GameState) (*TurnResult, error)

	// SaveGame persists state
	SaveGame(ctx context.Context, state *entities.GameState) error

	// LoadGame restores the last saved state
	LoadGame(ctx context.Context) (*entities.GameState, error)
}

// Encounter is the opening of a fight
type Encounter struct {
	Combat *entities.CombatSession
	Story  string
}

// TurnResult is one player action and, if the fight goes on, the enemy's answer
type TurnResult struct {
	Player  *combat.ActionResult
	Enemy   *combat.ActionResult
	Status  entities.CombatStatus
	Outcome *Outcome
}

// Outcome is what a finished fight changed
type Outcome struct {
	Result    string
	Quest     *entities.Quest
	Rewards   entities.Rewards
	LevelUps  []*character.LevelUpResult
	Story     string
	PlotTwist string
}

type service struct {
	characters character.Service
	quests     quest.Service
	combat     combat.Service
	narrative  narrative.Service
	saves      savegame.Service
	clock      clock.TimeProvider
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Characters character.Service  // Required
	Quests     quest.Service      // Required
	Combat     combat.Service     // Required
	Narrative  narrative.Service  // Optional, fallback-only narrative when nil
	Saves      savegame.Service   // Optional, save and load fail when nil
	Clock      clock.TimeProvider // Optional
}

// NewService creates a new adventure service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Characters == nil {
		return nil, internal.NewMissingParamError("Characters")
	}
	if cfg.Quests == nil {
		return nil, internal.NewMissingParamError("Quests")
	}
	if cfg.Combat == nil {
		return nil, internal.NewMissingParamError("Combat")
	}

	svc := &service{
		characters: cfg.Characters,
		quests:     cfg.Quests,
		combat:     cfg.Combat,
		narrative:  cfg.Narrative,
		saves:      cfg.Saves,
		clock:      cfg.Clock,
	}
	if svc.narrative == nil {
		svc.narrative = narrative.NewService(nil)
	}
	if svc.clock == nil {
		svc.clock = &clock.RealTimeProvider{}
	}

	return svc, nil
}

func (s *service) NewGame(ctx context.Context, name string, class entities.CharacterClass) (*entities.GameState, error) {
	player, err := s.characters.Create(name, class)
	if err != nil {
		return nil, err
	}

	log.Printf("AdventureService: %s the %s begins their hunt", player.Name, player.Class)
	return &entities.GameState{
		Player:       player,
		StoryContext: []entities.StoryEvent{},
	}, nil
}

func (s *service) NewQuest(ctx context.Context, state *entities.GameState) (*entities.Quest, error) {
	if err := requirePlayer(state); err != nil {
		return nil, err
	}
	if inFight(state) {
		return nil, rpgerr.FailedPrecondition("finish the current fight first")
	}
	if state.CurrentQuest != nil {
		return nil, rpgerr.FailedPreconditionf("already on contract %q", state.CurrentQuest.Title)
	}

	q, err := s.quests.Generate(ctx, state.Player, state.StoryContext)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to generate quest")
	}

	state.CurrentQuest = q
	return q, nil
}

func (s *service) AbandonQuest(ctx context.Context, state *entities.GameState) error {
	if err := requirePlayer(state); err != nil {
		return err
	}
	if state.CurrentQuest == nil {
		return rpgerr.FailedPrecondition("no contract to abandon")
	}
	if inFight(state) {
		return rpgerr.FailedPrecondition("cannot abandon a contract mid-fight")
	}

	log.Printf("AdventureService: %s abandoned %q", state.Player.Name, state.CurrentQuest.Title)
	state.CurrentQuest = nil
	return nil
}

func (s *service) BeginHunt(ctx context.Context, state *entities.GameState) (*Encounter, error) {
	if err := requirePlayer(state); err != nil {
		return nil, err
	}
	if state.CurrentQuest == nil || state.CurrentQuest.Creature == nil {
		return nil, rpgerr.FailedPrecondition("no contract to hunt")
	}
	if inFight(state) {
		return nil, rpgerr.FailedPrecondition("already in a fight")
	}

	session, err := s.combat.Start(state.Player, state.CurrentQuest.Creature)
	if err != nil {
		return nil, err
	}
	state.Combat = session

	return &Encounter{
		Combat: session,
		Story:  s.narrative.EncounterStory(ctx, state.Player, state.CurrentQuest.Location),
	}, nil
}

func (s *service) Attack(ctx context.Context, state *entities.GameState) (*TurnResult, error) {
	return s.playerTurn(ctx, state, s.combat.PlayerAttack)
}

func (s *service) Defend(ctx context.Context, state *entities.GameState) (*TurnResult, error) {
	return s.playerTurn(ctx, state, s.combat.PlayerDefend)
}

func (s *service) playerTurn(ctx context.Context, state *entities.GameState, act func(*entities.CombatSession) (*combat.ActionResult, error)) (*TurnResult, error) {
	if err := requirePlayer(state); err != nil {
		return nil, err
	}
	if !inFight(state) {
		return nil, rpgerr.FailedPrecondition("not in a fight")
	}

	session := state.Combat
	result := &TurnResult{}

	action, err := act(session)
	if err != nil {
		return nil, err
	}
	result.Player = action

	if !session.IsOver() {
		reply, err := s.combat.EnemyTurn(session)
		if err != nil {
			return nil, err
		}
		result.Enemy = reply
	}

	result.Status = session.Status
	if session.IsOver() {
		outcome, err := s.finish(ctx, state)
		if err != nil {
			return nil, err
		}
		result.Outcome = outcome
	}

	return result, nil
}

// finish applies the result of a concluded fight to the game state
func (s *service) finish(ctx context.Context, state *entities.GameState) (*Outcome, error) {
	session := state.Combat
	q := state.CurrentQuest
	player := state.Player
	now := s.clock.Now().UTC()

	state.Combat = nil

	if session.Status == entities.CombatStatusDefeat {
		state.StoryContext = append(state.StoryContext,
			entities.NewQuestEvent(entities.StoryEventQuestFailed, player.Name, q, OutcomeDefeat, now))
		log.Printf("AdventureService: %s was defeated by %s", player.Name, session.Enemy.Name)
		return &Outcome{Result: OutcomeDefeat, Quest: q}, nil
	}

	if err := s.quests.Complete(q, player); err != nil {
		return nil, rpgerr.Wrap(err, "failed to complete quest")
	}

	outcome := &Outcome{Result: OutcomeVictory, Quest: q, Rewards: q.Rewards}
	for player.CanLevelUp() {
		levelUp, err := s.characters.LevelUp(player)
		if err != nil {
			return nil, rpgerr.Wrap(err, "failed to level up")
		}
		outcome.LevelUps = append(outcome.LevelUps, levelUp)
	}

	state.StoryContext = append(state.StoryContext,
		entities.NewQuestEvent(entities.StoryEventQuestCompleted, player.Name, q, OutcomeVictory, now))
	state.CurrentQuest = nil

	outcome.Story = s.narrative.CompletionStory(ctx, player, q, state.StoryContext)
	outcome.PlotTwist = s.narrative.PlotDevelopment(ctx, state.StoryContext)

	return outcome, nil
}

func (s *service) SaveGame(ctx context.Context, state *entities.GameState) error {
	if s.saves == nil {
		return rpgerr.FailedPrecondition("saving is not configured")
	}
	if err := requirePlayer(state); err != nil {
		return err
	}
	return s.saves.Save(ctx, state)
}

func (s *service) LoadGame(ctx context.Context) (*entities.GameState, error) {
	if s.saves == nil {
		return nil, rpgerr.FailedPrecondition("saving is not configured")
	}
	state, err := s.saves.Load(ctx)
	if err != nil {
		return nil, err
	}
	if state.Combat != nil && state.Combat.IsOver() {
		state.Combat = nil
	}
	return state, nil
}

func requirePlayer(state *entities.GameState) error {
	if state == nil || state.Player == nil {
		return rpgerr.InvalidArgument("a game with a player is required")
	}
	return nil
}

func inFight(state *entities.GameState) bool {
	return state.Combat != nil && !state.Combat.IsOver()
}
