package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

// ClassTemplate is the static definition of a playable class
type ClassTemplate struct {
	Class       entities.CharacterClass
	DisplayName string
	Icon        string
	Description string
	Lore        string
	BaseStats   entities.Stats
	Abilities   []string
	// AbilityModifiers scale strength when the named ability is used; unlisted abilities use 1.0
	AbilityModifiers map[string]float64
}

var titleCaser = cases.Title(language.English)

// DisplayName renders an identifier such as "magic_power" or "hitman" for players
func DisplayName(raw string) string {
	out := []rune(raw)
	for i, r := range out {
		if r == '_' {
			out[i] = ' '
		}
	}
	return titleCaser.String(string(out))
}

func classTemplates() []ClassTemplate {
	templates := []ClassTemplate{
		{
			Class:       entities.ClassSwordsman,
			Icon:        "⚔️",
			Description: "Master of blade combat with high attack and defense",
			Lore:        "Years at the practice post turned this blade into a wall no beast has yet broken.",
			BaseStats:   entities.Stats{Strength: 18, Agility: 12, Intelligence: 10, Defense: 16, MagicPower: 8, MaxHP: 120},
			Abilities:   []string{"Sword Mastery", "Heavy Strike", "Parry"},
			AbilityModifiers: map[string]float64{
				"Heavy Strike":  1.5,
				"Sword Mastery": 1.2,
			},
		},
		{
			Class:       entities.ClassSniper,
			Icon:        "🎯",
			Description: "Long-range specialist with deadly accuracy",
			Lore:        "Patience and a steady hand bring down giants from distances they never notice.",
			BaseStats:   entities.Stats{Strength: 12, Agility: 20, Intelligence: 14, Defense: 10, MagicPower: 8, MaxHP: 90},
			Abilities:   []string{"Eagle Eye", "Piercing Shot", "Stealth"},
			AbilityModifiers: map[string]float64{
				"Piercing Shot": 1.8,
				"Eagle Eye":     1.3,
			},
		},
		{
			Class:       entities.ClassMagician,
			Icon:        "🔮",
			Description: "Wielder of arcane magic with devastating spells",
			Lore:        "Raw arcane power, shaped into fire and force, answers every ancient threat.",
			BaseStats:   entities.Stats{Strength: 8, Agility: 10, Intelligence: 20, Defense: 8, MagicPower: 18, MaxHP: 80},
			Abilities:   []string{"Fireball", "Magic Shield", "Arcane Blast"},
			AbilityModifiers: map[string]float64{
				"Fireball":     2.0,
				"Arcane Blast": 1.7,
			},
		},
		{
			Class:       entities.ClassGunman,
			Icon:        "🔫",
			Description: "Firearms expert with rapid-fire capabilities",
			Lore:        "Powder and steel even the odds against creatures older than the kingdom.",
			BaseStats:   entities.Stats{Strength: 14, Agility: 16, Intelligence: 12, Defense: 12, MagicPower: 6, MaxHP: 100},
			Abilities:   []string{"Rapid Fire", "Reload", "Precise Aim"},
			AbilityModifiers: map[string]float64{
				"Rapid Fire":  1.4,
				"Precise Aim": 1.6,
			},
		},
		{
			Class:       entities.ClassArcher,
			Icon:        "🏹",
			Description: "Swift bow user with nature-based abilities",
			Lore:        "Bow and old forest magic track prey that no other hunter can find.",
			BaseStats:   entities.Stats{Strength: 12, Agility: 18, Intelligence: 12, Defense: 10, MagicPower: 10, MaxHP: 95},
			Abilities:   []string{"Multi-Shot", "Nature's Blessing", "Track"},
			AbilityModifiers: map[string]float64{
				"Multi-Shot": 1.3,
				"Track":      1.1,
			},
		},
		{
			Class:       entities.ClassWarrior,
			Icon:        "🛡️",
			Description: "Balanced fighter with strong defensive capabilities",
			Lore:        "Shield first, blade second: allies stand behind the warrior and live.",
			BaseStats:   entities.Stats{Strength: 16, Agility: 12, Intelligence: 10, Defense: 18, MagicPower: 8, MaxHP: 130},
			Abilities:   []string{"Shield Bash", "Taunt", "Endurance"},
			AbilityModifiers: map[string]float64{
				"Shield Bash": 1.2,
				"Endurance":   1.0,
			},
		},
		{
			Class:       entities.ClassHunter,
			Icon:        "🐺",
			Description: "Beast tracker with survival skills and traps",
			Lore:        "Every beast has habits, and the hunter has learned all of them.",
			BaseStats:   entities.Stats{Strength: 14, Agility: 16, Intelligence: 14, Defense: 12, MagicPower: 8, MaxHP: 110},
			Abilities:   []string{"Beast Lore", "Trap Setting", "Camouflage"},
			AbilityModifiers: map[string]float64{
				"Beast Lore":   1.4,
				"Trap Setting": 1.3,
			},
		},
		{
			Class:       entities.ClassAssassin,
			Icon:        "🗡️",
			Description: "Stealthy killer with critical strike abilities",
			Lore:        "A shadow that ends the hunt before the quarry knows it began.",
			BaseStats:   entities.Stats{Strength: 12, Agility: 20, Intelligence: 12, Defense: 8, MagicPower: 10, MaxHP: 85},
			Abilities:   []string{"Stealth Strike", "Poison Blade", "Shadow Step"},
			AbilityModifiers: map[string]float64{
				"Stealth Strike": 2.2,
				"Poison Blade":   1.6,
			},
		},
		{
			Class:       entities.ClassHitman,
			Icon:        "💀",
			Description: "Professional eliminator with tactical expertise",
			Lore:        "Each hunt is a contract, planned to the last cartridge.",
			BaseStats:   entities.Stats{Strength: 14, Agility: 16, Intelligence: 16, Defense: 10, MagicPower: 6, MaxHP: 95},
			Abilities:   []string{"Tactical Strike", "Equipment Mastery", "Cold Blood"},
			AbilityModifiers: map[string]float64{
				"Tactical Strike":   1.8,
				"Equipment Mastery": 1.3,
			},
		},
	}

	for i := range templates {
		templates[i].DisplayName = DisplayName(string(templates[i].Class))
	}
	return templates
}
