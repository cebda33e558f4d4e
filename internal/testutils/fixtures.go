package testutils

import (
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

// CreateTestCharacter creates a hunter with flat mid-range stats
func CreateTestCharacter(name string, class entities.CharacterClass, level int) *entities.Character {
	return &entities.Character{
		Name:             name,
		Class:            class,
		Level:            level,
		ExperienceToNext: 100 * level,
		Gold:             100,
		Stats: entities.Stats{
			Strength:     12,
			Agility:      12,
			Intelligence: 12,
			Defense:      12,
			MagicPower:   10,
			MaxHP:        100,
		},
		CurrentHP: 100,
		Abilities: []string{},
		Inventory: entities.NewInventory(),
	}
}

// CreateTestCreature creates a creature with no special abilities
func CreateTestCreature(name string, difficulty entities.Difficulty, hp int) *entities.Creature {
	return &entities.Creature{
		Name:       name,
		Difficulty: difficulty,
		MaxHP:      hp,
		CurrentHP:  hp,
		Attack:     15,
		Defense:    5,
		Abilities:  []entities.SpecialAbility{},
	}
}

// CreateTestQuest creates a solo hunt contract for creature
func CreateTestQuest(creature *entities.Creature) *entities.Quest {
	return &entities.Quest{
		Title:       "Hunt the " + creature.Name,
		Description: "The guild wants the " + creature.Name + " dealt with.",
		Type:        entities.QuestTypeHunt,
		Giver:       "Guild Master Aldric",
		Creature:    creature,
		Location:    "at the Crossroads",
		Difficulty:  creature.Difficulty,
		Rewards: entities.Rewards{
			Gold:       100,
			Experience: 50,
			Items:      []string{},
		},
	}
}
