package narrative

//go:generate mockgen -destination=mock/mock_service.go -package=mocknarrative -source=service.go

import (
	"context"
	"log"
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

// DefaultTimeout bounds a single provider call
const DefaultTimeout = 10 * time.Second

// MinCompletedForPlot is how many completed quests unlock plot developments
const MinCompletedForPlot = 3

// Provider produces narrative text and may fail at any time
type Provider interface {
	EnhanceQuest(ctx context.Context, quest *entities.Quest, player *entities.Character, storyContext []entities.StoryEvent) (*entities.QuestNarrative, error)
	CompletionStory(ctx context.Context, player *entities.Character, quest *entities.Quest, storyContext []entities.StoryEvent) (string, error)
	EncounterStory(ctx context.Context, player *entities.Character, location string) (string, error)
	PlotDevelopment(ctx context.Context, storyContext []entities.StoryEvent) (string, error)
}

// Service is the narrative contract the game core consumes. It never
// returns errors: provider failures are logged and replaced by fallback text.
type Service interface {
	// EnhanceQuest returns extra quest text, or nil when none is available
	EnhanceQuest(ctx context.Context, quest *entities.Quest, player *entities.Character, storyContext []entities.StoryEvent) *entities.QuestNarrative

	// CompletionStory tells how the player finished the quest
	CompletionStory(ctx context.Context, player *entities.Character, quest *entities.Quest, storyContext []entities.StoryEvent) string

	// EncounterStory sets the scene when a fight begins at location
	EncounterStory(ctx context.Context, player *entities.Character, location string) string

	// PlotDevelopment reveals campaign plot once enough quests are done, else ""
	PlotDevelopment(ctx context.Context, storyContext []entities.StoryEvent) string
}

type service struct {
	provider Provider
	roller   dice.Roller
	timeout  time.Duration
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Provider Provider      // Optional, fallback text only when nil
	Roller   dice.Roller   // Optional, picks fallback templates
	Timeout  time.Duration // Optional, defaults to DefaultTimeout
}

// NewService creates a new narrative service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		provider: cfg.Provider,
		roller:   cfg.Roller,
		timeout:  cfg.Timeout,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.timeout <= 0 {
		svc.timeout = DefaultTimeout
	}

	return svc
}

func (s *service) EnhanceQuest(ctx context.Context, quest *entities.Quest, player *entities.Character, storyContext []entities.StoryEvent) *entities.QuestNarrative {
	if s.provider == nil || quest == nil || player == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	enhancement, err := s.provider.EnhanceQuest(ctx, quest, player, storyContext)
	if err != nil {
		log.Printf("NarrativeService: quest enhancement failed for %s: %v", quest.Title, err)
		return nil
	}
	if enhancement.IsEmpty() {
		return nil
	}

	return enhancement
}

func (s *service) CompletionStory(ctx context.Context, player *entities.Character, quest *entities.Quest, storyContext []entities.StoryEvent) string {
	if s.provider != nil && player != nil && quest != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		story, err := s.provider.CompletionStory(ctx, player, quest, storyContext)
		if err == nil && story != "" {
			return story
		}
		log.Printf("NarrativeService: completion story failed, using fallback: %v", err)
	}

	return s.fallbackCompletion(player, quest)
}

func (s *service) EncounterStory(ctx context.Context, player *entities.Character, location string) string {
	if s.provider != nil && player != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		story, err := s.provider.EncounterStory(ctx, player, location)
		if err == nil && story != "" {
			return story
		}
		log.Printf("NarrativeService: encounter story failed, using fallback: %v", err)
	}

	return s.fallbackEncounter(location)
}

func (s *service) PlotDevelopment(ctx context.Context, storyContext []entities.StoryEvent) string {
	if entities.CountEvents(storyContext, entities.StoryEventQuestCompleted) < MinCompletedForPlot {
		return ""
	}
	if s.provider == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	plot, err := s.provider.PlotDevelopment(ctx, storyContext)
	if err != nil {
		log.Printf("NarrativeService: plot development failed: %v", err)
		return ""
	}

	return plot
}
