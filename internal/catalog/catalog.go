// Package catalog holds the static game data: classes, bestiary, quest
// templates, quest givers, locations and ability effect profiles.
// A Catalog is built once and never mutated; accessors hand out copies.
package catalog

import (
	"sync"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

// Catalog is the immutable game data consumed by the services
type Catalog struct {
	classes       map[entities.CharacterClass]ClassTemplate
	creatures     []*entities.Creature
	soloTemplates []QuestTemplate
	teamTemplates []QuestTemplate
	givers        []QuestGiver
	locations     []string
	effects       map[string]entities.AbilityEffect
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, building it on first use
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New()
	})
	return defaultCatalog
}

// New builds a catalog and resolves every creature ability to its effect
func New() *Catalog {
	c := &Catalog{
		classes:       make(map[entities.CharacterClass]ClassTemplate),
		soloTemplates: soloTemplates(),
		teamTemplates: teamTemplates(),
		givers:        questGivers(),
		locations:     locations(),
		effects:       effectTable(),
	}

	for _, tmpl := range classTemplates() {
		c.classes[tmpl.Class] = tmpl
	}

	for _, tmpl := range creatureTemplates() {
		creature := &entities.Creature{
			Name:        tmpl.Name,
			Difficulty:  tmpl.Difficulty,
			MaxHP:       tmpl.HP,
			CurrentHP:   tmpl.HP,
			Attack:      tmpl.Attack,
			Defense:     tmpl.Defense,
			Description: tmpl.Description,
			Lore:        tmpl.Lore,
		}
		for _, name := range tmpl.Abilities {
			creature.Abilities = append(creature.Abilities, c.SpecialAbility(name))
		}
		c.creatures = append(c.creatures, creature)
	}

	return c
}

// Class looks up a class template
func (c *Catalog) Class(class entities.CharacterClass) (ClassTemplate, bool) {
	tmpl, ok := c.classes[class]
	if !ok {
		return ClassTemplate{}, false
	}
	tmpl.Abilities = append([]string(nil), tmpl.Abilities...)
	modifiers := make(map[string]float64, len(tmpl.AbilityModifiers))
	for name, mod := range tmpl.AbilityModifiers {
		modifiers[name] = mod
	}
	tmpl.AbilityModifiers = modifiers
	return tmpl, true
}

// Classes returns every class template in catalog order
func (c *Catalog) Classes() []ClassTemplate {
	out := make([]ClassTemplate, 0, len(entities.Classes))
	for _, class := range entities.Classes {
		if tmpl, ok := c.Class(class); ok {
			out = append(out, tmpl)
		}
	}
	return out
}

// AbilityModifier is the damage multiplier for class using ability, 1.0 when unlisted
func (c *Catalog) AbilityModifier(class entities.CharacterClass, ability string) float64 {
	tmpl, ok := c.classes[class]
	if !ok {
		return 1.0
	}
	if mod, ok := tmpl.AbilityModifiers[ability]; ok {
		return mod
	}
	return 1.0
}

// Creatures returns copies of every bestiary creature
func (c *Catalog) Creatures() []*entities.Creature {
	out := make([]*entities.Creature, len(c.creatures))
	for i, creature := range c.creatures {
		out[i] = creature.Clone()
	}
	return out
}

// CreaturesFor returns copies of the creatures whose tier is in difficulties, in bestiary order
func (c *Catalog) CreaturesFor(difficulties []entities.Difficulty) []*entities.Creature {
	allowed := make(map[entities.Difficulty]bool, len(difficulties))
	for _, d := range difficulties {
		allowed[d] = true
	}

	var out []*entities.Creature
	for _, creature := range c.creatures {
		if allowed[creature.Difficulty] {
			out = append(out, creature.Clone())
		}
	}
	return out
}

// Creature returns a copy of the named creature
func (c *Catalog) Creature(name string) (*entities.Creature, bool) {
	for _, creature := range c.creatures {
		if creature.Name == name {
			return creature.Clone(), true
		}
	}
	return nil, false
}

// SoloTemplates returns the single-player quest templates
func (c *Catalog) SoloTemplates() []QuestTemplate {
	return append([]QuestTemplate(nil), c.soloTemplates...)
}

// TeamTemplates returns the multiplayer quest templates
func (c *Catalog) TeamTemplates() []QuestTemplate {
	return append([]QuestTemplate(nil), c.teamTemplates...)
}

// Givers returns the quest giver roster
func (c *Catalog) Givers() []QuestGiver {
	return append([]QuestGiver(nil), c.givers...)
}

// Locations returns the quest location strings
func (c *Catalog) Locations() []string {
	return append([]string(nil), c.locations...)
}

// DifficultyMultiplier scales rewards by creature tier
func (c *Catalog) DifficultyMultiplier(d entities.Difficulty) float64 {
	if mult, ok := difficultyMultipliers[d]; ok {
		return mult
	}
	return 1.0
}

// RewardItemPool is the bonus loot pool for defeating creature
func (c *Catalog) RewardItemPool(creature string) []string {
	pool := []string{creature + " Fang", creature + " Hide", creature + " Claw"}
	return append(pool, genericRelicItems...)
}

// TeamRewardItems is the bonus loot pool for cooperative quests
func (c *Catalog) TeamRewardItems() []string {
	return append([]string(nil), teamRewardItems...)
}

// SpecialAbility resolves an ability name to its effect, falling back to GenericEffect
func (c *Catalog) SpecialAbility(name string) entities.SpecialAbility {
	effect, ok := c.effects[name]
	if !ok {
		effect = GenericEffect
	}
	return entities.SpecialAbility{Name: name, Effect: effect}
}
