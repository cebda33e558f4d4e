package catalog

import "github.com/Darkkkking/ai-rpg-adventure/internal/entities"

// CreatureTemplate is a bestiary entry before effect resolution
type CreatureTemplate struct {
	Name        string
	Difficulty  entities.Difficulty
	HP          int
	Attack      int
	Defense     int
	Abilities   []string
	Description string
	Lore        string
}

var difficultyMultipliers = map[entities.Difficulty]float64{
	entities.DifficultyEasy:      0.8,
	entities.DifficultyMedium:    1.0,
	entities.DifficultyHard:      1.3,
	entities.DifficultyLegendary: 1.6,
}

func creatureTemplates() []CreatureTemplate {
	return []CreatureTemplate{
		{
			Name:        "Tyrannosaurus Rex",
			Difficulty:  entities.DifficultyLegendary,
			HP:          200,
			Attack:      25,
			Defense:     15,
			Abilities:   []string{"Crushing Bite", "Intimidating Roar"},
			Description: "The apex predator of the ancient world",
			Lore:        "The king of all predators has returned from extinction",
		},
		{
			Name:        "Woolly Mammoth",
			Difficulty:  entities.DifficultyHard,
			HP:          180,
			Attack:      20,
			Defense:     18,
			Abilities:   []string{"Tusk Charge", "Trumpet Call"},
			Description: "Massive ancient elephant with deadly tusks",
			Lore:        "These giants once roamed frozen lands",
		},
		{
			Name:        "Saber-tooth Tiger",
			Difficulty:  entities.DifficultyMedium,
			HP:          120,
			Attack:      22,
			Defense:     12,
			Abilities:   []string{"Pounce", "Saber Strike"},
			Description: "Fierce predator with razor-sharp fangs",
			Lore:        "Swift and deadly hunter of the ice age",
		},
		{
			Name:        "Cave Bear",
			Difficulty:  entities.DifficultyMedium,
			HP:          140,
			Attack:      18,
			Defense:     16,
			Abilities:   []string{"Claw Swipe", "Bear Hug"},
			Description: "Enormous bear from prehistoric times",
			Lore:        "Massive bears that once ruled mountain caves",
		},
		{
			Name:        "Giant Ground Sloth",
			Difficulty:  entities.DifficultyEasy,
			HP:          100,
			Attack:      15,
			Defense:     14,
			Abilities:   []string{"Heavy Slam", "Thick Hide"},
			Description: "Deceptively dangerous prehistoric giant",
			Lore:        "Slow but incredibly strong ancient herbivore",
		},
		{
			Name:        "Terror Bird",
			Difficulty:  entities.DifficultyMedium,
			HP:          110,
			Attack:      20,
			Defense:     10,
			Abilities:   []string{"Piercing Beak", "Swift Strike"},
			Description: "Flightless predatory bird of enormous size",
			Lore:        "These giant birds were apex predators in their time",
		},
		{
			Name:        "Dire Wolf",
			Difficulty:  entities.DifficultyEasy,
			HP:          80,
			Attack:      16,
			Defense:     12,
			Abilities:   []string{"Pack Howl", "Bite and Hold"},
			Description: "Pack hunter larger than modern wolves",
			Lore:        "Ancestors of modern wolves, but much larger and fiercer",
		},
		{
			Name:        "Megalania",
			Difficulty:  entities.DifficultyHard,
			HP:          160,
			Attack:      19,
			Defense:     16,
			Abilities:   []string{"Venomous Bite", "Tail Whip"},
			Description: "Giant monitor lizard with venomous bite",
			Lore:        "Massive lizard that dominated ancient Australia",
		},
	}
}

// AllowedDifficulties returns the tiers a hunter of level may be sent against
func AllowedDifficulties(level int) []entities.Difficulty {
	switch {
	case level <= 2:
		return []entities.Difficulty{entities.DifficultyEasy}
	case level <= 5:
		return []entities.Difficulty{entities.DifficultyEasy, entities.DifficultyMedium}
	case level <= 8:
		return []entities.Difficulty{entities.DifficultyMedium, entities.DifficultyHard}
	default:
		return []entities.Difficulty{
			entities.DifficultyEasy,
			entities.DifficultyMedium,
			entities.DifficultyHard,
			entities.DifficultyLegendary,
		}
	}
}
