package entities

// Difficulty is a creature's danger tier
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

// EffectKind tags the variant held by an AbilityEffect
type EffectKind string

const (
	EffectDamageMultiplier EffectKind = "damage_multiplier"
	EffectStun             EffectKind = "stun"
	EffectBuff             EffectKind = "buff"
	EffectPoison           EffectKind = "poison"
	EffectGrapple          EffectKind = "grapple"
	EffectGeneric          EffectKind = "generic"
)

// AbilityEffect is a tagged variant describing what a special ability does.
// Only the fields relevant to Kind are set:
//   - damage_multiplier: Multiplier, Hits
//   - buff: AttackMultiplier
//   - poison: FlatDamage and optionally Multiplier
//   - generic: Multiplier (the fallback for unrecognised abilities)
//   - stun, grapple: no payload
type AbilityEffect struct {
	Kind             EffectKind `json:"kind"`
	Multiplier       float64    `json:"multiplier,omitempty"`
	Hits             int        `json:"hits,omitempty"`
	AttackMultiplier float64    `json:"attack_multiplier,omitempty"`
	FlatDamage       int        `json:"flat_damage,omitempty"`
}

// DealsDamage reports whether the effect hits the player with a multiplied attack
func (e AbilityEffect) DealsDamage() bool {
	return e.Multiplier > 0
}

// HitCount is the number of hits, at least one
func (e AbilityEffect) HitCount() int {
	if e.Hits < 1 {
		return 1
	}
	return e.Hits
}

// SpecialAbility is a named creature ability with its resolved effect
type SpecialAbility struct {
	Name   string        `json:"name"`
	Effect AbilityEffect `json:"effect"`
}

// Creature is an enemy instance. Bestiary templates are copied, never mutated.
type Creature struct {
	Name        string           `json:"name"`
	Difficulty  Difficulty       `json:"difficulty"`
	MaxHP       int              `json:"max_hp"`
	CurrentHP   int              `json:"current_hp"`
	Attack      int              `json:"attack"`
	Defense     int              `json:"defense"`
	Abilities   []SpecialAbility `json:"special_abilities"`
	Description string           `json:"description"`
	Lore        string           `json:"lore"`
}

// HasSpecialAbilities reports whether the creature can use specials
func (c *Creature) HasSpecialAbilities() bool {
	return len(c.Abilities) > 0
}

// HasAbility reports whether the creature knows the named ability
func (c *Creature) HasAbility(name string) bool {
	for _, ability := range c.Abilities {
		if ability.Name == name {
			return true
		}
	}
	return false
}

// HPRatio is current over max HP
func (c *Creature) HPRatio() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.CurrentHP) / float64(c.MaxHP)
}

// ApplyDamage reduces current HP, never below zero, and returns the HP actually lost
func (c *Creature) ApplyDamage(damage int) int {
	if damage < 0 {
		damage = 0
	}
	before := c.CurrentHP
	c.CurrentHP -= damage
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	return before - c.CurrentHP
}

// IsDefeated reports whether the creature is at zero HP
func (c *Creature) IsDefeated() bool {
	return c.CurrentHP <= 0
}

// Clone returns a deep copy
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Abilities = append([]SpecialAbility(nil), c.Abilities...)
	return &clone
}
