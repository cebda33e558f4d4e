package catalog

import "github.com/Darkkkking/ai-rpg-adventure/internal/entities"

// Ability names appended to creatures scaled for larger parties
const (
	AbilityAreaAttack   = "Area Attack"
	AbilityRegeneration = "Regeneration"
)

// GenericEffect is applied to any ability without a known profile
var GenericEffect = entities.AbilityEffect{Kind: entities.EffectGeneric, Multiplier: 1.2}

func damage(multiplier float64, hits int) entities.AbilityEffect {
	return entities.AbilityEffect{Kind: entities.EffectDamageMultiplier, Multiplier: multiplier, Hits: hits}
}

func effectTable() map[string]entities.AbilityEffect {
	return map[string]entities.AbilityEffect{
		"Crushing Bite":     damage(1.5, 1),
		"Intimidating Roar": {Kind: entities.EffectStun},
		"Tusk Charge":       damage(1.3, 1),
		"Pounce":            damage(1.4, 1),
		"Saber Strike":      damage(1.6, 1),
		"Claw Swipe":        damage(1.2, 1),
		"Bear Hug":          {Kind: entities.EffectGrapple},
		"Heavy Slam":        damage(1.3, 1),
		"Piercing Beak":     damage(1.5, 1),
		"Swift Strike":      damage(1.1, 2),
		"Pack Howl":         {Kind: entities.EffectBuff, AttackMultiplier: 1.1},
		"Venomous Bite":     {Kind: entities.EffectPoison, Multiplier: 1.2, FlatDamage: 5},
		"Tail Whip":         damage(1.1, 1),
	}
}
