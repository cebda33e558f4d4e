package services

import (
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/clock"
	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
	"github.com/Darkkkking/ai-rpg-adventure/internal/repositories/saves"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/adventure"
	characterService "github.com/Darkkkking/ai-rpg-adventure/internal/services/character"
	combatService "github.com/Darkkkking/ai-rpg-adventure/internal/services/combat"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/multiplayer"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/narrative"
	questService "github.com/Darkkkking/ai-rpg-adventure/internal/services/quest"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/savegame"
	"github.com/Darkkkking/ai-rpg-adventure/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Catalog            *catalog.Catalog
	EventBus           *events.Bus
	CharacterService   characterService.Service
	NarrativeService   narrative.Service
	QuestService       questService.Service
	CombatService      combatService.Service
	MultiplayerService multiplayer.Service
	SaveGameService    savegame.Service
	AdventureService   adventure.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog           *catalog.Catalog
	Roller            dice.Roller
	Clock             clock.TimeProvider
	SessionIDs        *uuid.SessionIDGenerator
	EventBus          *events.Bus
	NarrativeProvider narrative.Provider
	NarrativeTimeout  time.Duration
	SaveRepository    saves.Repository
	SaveSlot          string
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	gameCatalog := cfg.Catalog
	if gameCatalog == nil {
		gameCatalog = catalog.Default()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	// Use in-memory repository if none provided
	saveRepo := cfg.SaveRepository
	if saveRepo == nil {
		saveRepo = saves.NewInMemoryRepository()
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Catalog:   gameCatalog,
		Roller:    roller,
		Publisher: bus,
	})

	narrService := narrative.NewService(&narrative.ServiceConfig{
		Provider: cfg.NarrativeProvider,
		Roller:   roller,
		Timeout:  cfg.NarrativeTimeout,
	})

	qService := questService.NewService(&questService.ServiceConfig{
		Catalog:   gameCatalog,
		Roller:    roller,
		Narrative: narrService,
		Publisher: bus,
	})

	cService := combatService.NewService(&combatService.ServiceConfig{
		Roller:    roller,
		Publisher: bus,
	})

	mpService, err := multiplayer.NewService(&multiplayer.ServiceConfig{
		Quests:    qService,
		Combat:    cService,
		Clock:     cfg.Clock,
		IDs:       cfg.SessionIDs,
		Publisher: bus,
	})
	if err != nil {
		return nil, err
	}

	saveService, err := savegame.NewService(&savegame.ServiceConfig{
		Repository: saveRepo,
		Slot:       cfg.SaveSlot,
		Clock:      cfg.Clock,
	})
	if err != nil {
		return nil, err
	}

	advService, err := adventure.NewService(&adventure.ServiceConfig{
		Characters: charService,
		Quests:     qService,
		Combat:     cService,
		Narrative:  narrService,
		Saves:      saveService,
		Clock:      cfg.Clock,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		Catalog:            gameCatalog,
		EventBus:           bus,
		CharacterService:   charService,
		NarrativeService:   narrService,
		QuestService:       qService,
		CombatService:      cService,
		MultiplayerService: mpService,
		SaveGameService:    saveService,
		AdventureService:   advService,
	}, nil
}
