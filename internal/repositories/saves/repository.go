package saves

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksaves -source=repository.go

import (
	"context"
	"regexp"
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
)

// DefaultSlot is the slot used when the caller does not pick one
const DefaultSlot = "default"

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Repository stores one solo game state per named slot
type Repository interface {
	// Save writes state to slot, replacing whatever was there
	Save(ctx context.Context, slot string, state *entities.GameState) error

	// Load returns the state in slot or a not found error
	Load(ctx context.Context, slot string) (*entities.GameState, error)

	// Clear removes slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context, slot string) error

	// List summarizes every saved slot ordered by slot name
	List(ctx context.Context) ([]*Summary, error)
}

// Summary describes a saved slot without its full state
type Summary struct {
	Slot    string    `json:"slot"`
	Player  string    `json:"player"`
	Level   int       `json:"level"`
	SavedAt time.Time `json:"saved_at"`
}

func summarize(slot string, state *entities.GameState) *Summary {
	summary := &Summary{Slot: slot, SavedAt: state.SavedAt}
	if state.Player != nil {
		summary.Player = state.Player.Name
		summary.Level = state.Player.Level
	}
	return summary
}

// ValidateSlot rejects names that are unsafe as file names or keys
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return rpgerr.InvalidArgumentf("invalid save slot %q", slot).
			WithMeta("slot", slot)
	}
	return nil
}

func validateSave(slot string, state *entities.GameState) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	if state == nil || state.Player == nil {
		return rpgerr.InvalidArgument("game state with a player is required")
	}
	return nil
}

func notFound(slot string) error {
	return rpgerr.NotFoundf("no saved game in slot %q", slot).
		WithMeta("slot", slot)
}
