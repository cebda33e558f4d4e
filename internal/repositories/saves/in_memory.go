package saves

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

// InMemoryRepository keeps saves for the life of the process.
// Useful for testing and for the lobby demo.
type InMemoryRepository struct {
	mu    sync.RWMutex
	slots map[string]*entities.GameState
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		slots: make(map[string]*entities.GameState),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, slot string, state *entities.GameState) error {
	if err := validateSave(slot, state); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[slot] = state.Clone()
	return nil
}

func (r *InMemoryRepository) Load(ctx context.Context, slot string) (*entities.GameState, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.slots[slot]
	if !ok {
		return nil, notFound(slot)
	}
	return state.Clone(), nil
}

func (r *InMemoryRepository) Clear(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.slots, slot)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]*Summary, 0, len(r.slots))
	for slot, state := range r.slots {
		summaries = append(summaries, summarize(slot, state))
	}
	slices.SortFunc(summaries, func(a, b *Summary) int { return cmp.Compare(a.Slot, b.Slot) })

	return summaries, nil
}
