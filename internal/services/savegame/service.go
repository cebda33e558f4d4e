package savegame

//go:generate mockgen -destination=mock/mock_service.go -package=mocksavegame -source=service.go

import (
	"context"
	"encoding/json"
	"log"
	"time"

	internal "github.com/Darkkkking/ai-rpg-adventure/internal"
	"github.com/Darkkkking/ai-rpg-adventure/internal/clock"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/repositories/saves"
)

// Service persists the solo game behind a single configured slot
type Service interface {
	// Save stamps SavedAt and writes the state
	Save(ctx context.Context, state *entities.GameState) error

	// Load returns the saved state or a not found error
	Load(ctx context.Context) (*entities.GameState, error)

	// Clear removes the saved state
	Clear(ctx context.Context) error

	// List summarizes every slot in the backing store
	List(ctx context.Context) ([]*saves.Summary, error)

	// Export renders the player and story as a portable JSON document
	Export(state *entities.GameState) ([]byte, error)

	// Import parses a document produced by Export
	Import(data []byte) (*entities.GameState, error)

	// PlayerStatistics summarizes a character's progress
	PlayerStatistics(player *entities.Character) *PlayerStatistics
}

// ExportDocument is the portable backup format
type ExportDocument struct {
	Player       *entities.Character   `json:"player"`
	CurrentQuest *entities.Quest       `json:"current_quest,omitempty"`
	StoryContext []entities.StoryEvent `json:"story_context"`
	ExportedAt   time.Time             `json:"export_timestamp"`
}

// PlayerStatistics is the progress report shown by the stats command
type PlayerStatistics struct {
	Level                 int     `json:"current_level"`
	TotalExperience       int     `json:"total_experience"`
	Gold                  int     `json:"gold_earned"`
	QuestsCompleted       int     `json:"quests_completed"`
	MonstersDefeated      int     `json:"monsters_defeated"`
	AvgExperiencePerQuest float64 `json:"avg_experience_per_quest"`
}

type service struct {
	repo  saves.Repository
	slot  string
	clock clock.TimeProvider
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository saves.Repository   // Required
	Slot       string             // Optional, defaults to saves.DefaultSlot
	Clock      clock.TimeProvider // Optional
}

// NewService creates a new save game service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Repository == nil {
		return nil, internal.NewMissingParamError("Repository")
	}

	svc := &service{
		repo:  cfg.Repository,
		slot:  cfg.Slot,
		clock: cfg.Clock,
	}
	if svc.slot == "" {
		svc.slot = saves.DefaultSlot
	}
	if err := saves.ValidateSlot(svc.slot); err != nil {
		return nil, err
	}
	if svc.clock == nil {
		svc.clock = &clock.RealTimeProvider{}
	}

	return svc, nil
}

func (s *service) Save(ctx context.Context, state *entities.GameState) error {
	if state == nil {
		return rpgerr.InvalidArgument("game state is required")
	}

	stamped := state.Clone()
	stamped.SavedAt = s.clock.Now().UTC()

	if err := s.repo.Save(ctx, s.slot, stamped); err != nil {
		log.Printf("SaveGameService: Failed to save slot %s: %v", s.slot, err)
		return rpgerr.Wrapf(err, "failed to save game to slot %s", s.slot)
	}

	state.SavedAt = stamped.SavedAt
	return nil
}

func (s *service) Load(ctx context.Context) (*entities.GameState, error) {
	state, err := s.repo.Load(ctx, s.slot)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to load game from slot %s", s.slot)
	}
	if state.Player != nil {
		state.Player.ClampHP()
	}
	return state, nil
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx, s.slot); err != nil {
		return rpgerr.Wrapf(err, "failed to clear slot %s", s.slot)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]*saves.Summary, error) {
	return s.repo.List(ctx)
}

func (s *service) Export(state *entities.GameState) ([]byte, error) {
	if state == nil || state.Player == nil {
		return nil, rpgerr.InvalidArgument("a game with a player is required to export")
	}

	doc := ExportDocument{
		Player:       state.Player,
		CurrentQuest: state.CurrentQuest,
		StoryContext: state.StoryContext,
		ExportedAt:   s.clock.Now().UTC(),
	}
	if doc.StoryContext == nil {
		doc.StoryContext = []entities.StoryEvent{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to encode export")
	}
	return data, nil
}

func (s *service) Import(data []byte) (*entities.GameState, error) {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeValidation, "import is not a valid export document")
	}
	if doc.Player == nil || doc.Player.Name == "" {
		return nil, rpgerr.Validation("import has no player")
	}
	if doc.Player.Level < 1 {
		return nil, rpgerr.Validationf("import has invalid level %d", doc.Player.Level)
	}
	if doc.Player.Inventory == nil {
		doc.Player.Inventory = entities.NewInventory()
	}
	doc.Player.ClampHP()

	return &entities.GameState{
		Player:       doc.Player,
		CurrentQuest: doc.CurrentQuest,
		StoryContext: doc.StoryContext,
		SavedAt:      doc.ExportedAt,
	}, nil
}

func (s *service) PlayerStatistics(player *entities.Character) *PlayerStatistics {
	if player == nil {
		return &PlayerStatistics{}
	}

	stats := &PlayerStatistics{
		Level:            player.Level,
		TotalExperience:  player.Experience,
		Gold:             player.Gold,
		QuestsCompleted:  player.QuestsCompleted,
		MonstersDefeated: player.MonstersDefeated,
	}
	if stats.QuestsCompleted > 0 {
		stats.AvgExperiencePerQuest = float64(stats.TotalExperience) / float64(stats.QuestsCompleted)
	}
	return stats
}
