package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"math"
	"strings"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
)

const (
	StartingGold       = 100
	ExperiencePerLevel = 100
)

// Service defines the character service interface
type Service interface {
	// Create builds a level 1 hunter from the class template
	Create(name string, class entities.CharacterClass) (*entities.Character, error)

	// LevelUp advances the character one level, growing stats and fully healing
	LevelUp(char *entities.Character) (*LevelUpResult, error)

	// AddItem adds an item to the character's inventory
	AddItem(char *entities.Character, item entities.Item) bool

	// RemoveItem removes a named item from a category
	RemoveItem(char *entities.Character, name string, category entities.ItemCategory) bool

	// CalculateDamage rolls the character's damage, optionally boosted by a class ability
	CalculateDamage(char *entities.Character, ability string) (int, error)

	// ApplyVictoryRewards credits a reward bundle and levels up while experience allows
	ApplyVictoryRewards(char *entities.Character, rewards entities.Rewards) ([]*LevelUpResult, error)

	// Classes lists the playable classes
	Classes() []catalog.ClassTemplate
}

// LevelUpResult describes what a level up granted
type LevelUpResult struct {
	NewLevel int
	Gains    map[entities.Stat]int
	HPGain   int
}

type service struct {
	catalog   *catalog.Catalog
	roller    dice.Roller
	publisher events.Publisher
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog   *catalog.Catalog // Optional, defaults to catalog.Default()
	Roller    dice.Roller      // Optional, defaults to a random roller
	Publisher events.Publisher // Optional
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		catalog:   cfg.Catalog,
		roller:    cfg.Roller,
		publisher: cfg.Publisher,
	}

	if svc.catalog == nil {
		svc.catalog = catalog.Default()
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

func (s *service) Create(name string, class entities.CharacterClass) (*entities.Character, error) {
	if strings.TrimSpace(name) == "" {
		return nil, rpgerr.InvalidArgument("character name is required")
	}

	tmpl, ok := s.catalog.Class(class)
	if !ok {
		return nil, rpgerr.InvalidClassf("invalid character class '%s'", class).
			WithMeta("class", string(class))
	}

	return &entities.Character{
		Name:             strings.TrimSpace(name),
		Class:            class,
		Level:            1,
		Experience:       0,
		ExperienceToNext: ExperiencePerLevel,
		Gold:             StartingGold,
		Stats:            tmpl.BaseStats,
		CurrentHP:        tmpl.BaseStats.MaxHP,
		Abilities:        tmpl.Abilities,
		Inventory:        entities.NewInventory(),
	}, nil
}

// growthRange is keyed on the class base value, not the current stat
func growthRange(base int) (low, high int) {
	switch {
	case base >= 16:
		return 2, 4
	case base >= 12:
		return 1, 3
	default:
		return 1, 2
	}
}

func (s *service) LevelUp(char *entities.Character) (*LevelUpResult, error) {
	if char == nil {
		return nil, rpgerr.InvalidArgument("character is required")
	}

	tmpl, ok := s.catalog.Class(char.Class)
	if !ok {
		return nil, rpgerr.InvalidClassf("invalid character class '%s'", char.Class).
			WithMeta("character", char.Name)
	}

	// Roll everything before touching the character so a roller failure leaves it unchanged
	gains := make(map[entities.Stat]int, len(entities.GrowthStats))
	for _, stat := range entities.GrowthStats {
		low, high := growthRange(tmpl.BaseStats.Get(stat))
		gain, err := dice.Between(s.roller, low, high)
		if err != nil {
			return nil, rpgerr.Wrapf(err, "failed to roll %s growth", stat)
		}
		gains[stat] = gain
	}

	hpGain, err := dice.Between(s.roller, 8, 15)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll max hp growth")
	}

	char.Level++
	char.Experience = 0
	char.ExperienceToNext = char.Level * ExperiencePerLevel
	for stat, gain := range gains {
		char.Stats.Add(stat, gain)
	}
	char.Stats.MaxHP += hpGain
	char.FullHeal()

	events.Notify(s.publisher, &events.LevelUpEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeLevelUp},
		Player:    char.Name,
		NewLevel:  char.Level,
		Gains:     gains,
	})

	return &LevelUpResult{
		NewLevel: char.Level,
		Gains:    gains,
		HPGain:   hpGain,
	}, nil
}

func (s *service) AddItem(char *entities.Character, item entities.Item) bool {
	if char == nil || strings.TrimSpace(item.Name) == "" {
		return false
	}
	return char.AddItem(item)
}

func (s *service) RemoveItem(char *entities.Character, name string, category entities.ItemCategory) bool {
	if char == nil {
		return false
	}
	return char.RemoveItem(name, category)
}

func (s *service) CalculateDamage(char *entities.Character, ability string) (int, error) {
	if char == nil {
		return 0, rpgerr.InvalidArgument("character is required")
	}

	base := char.Stats.Strength
	if ability != "" {
		base = int(math.Trunc(float64(base) * s.catalog.AbilityModifier(char.Class, ability)))
	}

	variance, err := dice.Between(s.roller, -5, 5)
	if err != nil {
		return 0, rpgerr.Wrap(err, "failed to roll damage variance")
	}

	return max(1, base+variance), nil
}

func (s *service) ApplyVictoryRewards(char *entities.Character, rewards entities.Rewards) ([]*LevelUpResult, error) {
	if char == nil {
		return nil, rpgerr.InvalidArgument("character is required")
	}

	char.Gold += rewards.Gold
	char.Experience += rewards.Experience
	for _, name := range rewards.Items {
		char.AddItem(entities.Item{Name: name, Type: entities.CategoryItems})
	}

	var results []*LevelUpResult
	for char.CanLevelUp() {
		result, err := s.LevelUp(char)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *service) Classes() []catalog.ClassTemplate {
	return s.catalog.Classes()
}
