package quest

import (
	"math"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

// Reward formula constants
const (
	soloBaseGold       = 50
	soloGoldPerLevel   = 25
	soloBaseExp        = 40
	soloExpPerLevel    = 20
	teamBaseGold       = 40
	teamGoldPerLevel   = 20
	teamBaseExp        = 30
	teamExpPerLevel    = 15
	levelScalingStep   = 0.1
	playerScalingStep  = 0.4
	teamAttackScaling  = 0.8
	teamDefenseScaling = 0.6
)

func scale(value int, factor float64) int {
	return int(math.Trunc(float64(value) * factor))
}

// ScaleCreature returns a copy of creature grown by 10% per level above 1, at full health
func ScaleCreature(creature *entities.Creature, level int) *entities.Creature {
	scaled := creature.Clone()
	factor := 1 + float64(level-1)*levelScalingStep

	scaled.MaxHP = scale(creature.MaxHP, factor)
	scaled.Attack = scale(creature.Attack, factor)
	scaled.Defense = scale(creature.Defense, factor)
	scaled.CurrentHP = scaled.MaxHP

	return scaled
}

// ScaleForTeam returns a copy of creature toughened for a party of players.
// Parties of three gain Area Attack and parties of four Regeneration.
func ScaleForTeam(c *catalog.Catalog, creature *entities.Creature, players int, difficultyModifier float64) *entities.Creature {
	scaled := creature.Clone()
	total := (1 + float64(players-1)*playerScalingStep) * difficultyModifier

	scaled.MaxHP = scale(creature.MaxHP, total)
	scaled.Attack = scale(creature.Attack, total*teamAttackScaling)
	scaled.Defense = scale(creature.Defense, total*teamDefenseScaling)
	scaled.CurrentHP = scaled.MaxHP

	if players >= 3 {
		scaled.Abilities = append(scaled.Abilities, c.SpecialAbility(catalog.AbilityAreaAttack))
	}
	if players >= 4 {
		scaled.Abilities = append(scaled.Abilities, c.SpecialAbility(catalog.AbilityRegeneration))
	}

	return scaled
}

// SoloRewards computes the gold and experience of a single player contract
func SoloRewards(c *catalog.Catalog, level int, difficulty entities.Difficulty, templateModifier float64) entities.Rewards {
	mult := c.DifficultyMultiplier(difficulty) * templateModifier
	return entities.Rewards{
		Gold:       scale(soloBaseGold+level*soloGoldPerLevel, mult),
		Experience: scale(soloBaseExp+level*soloExpPerLevel, mult),
		Items:      []string{},
	}
}

// TeamRewards computes what each party member earns for a cooperative contract
func TeamRewards(c *catalog.Catalog, averageLevel float64, difficulty entities.Difficulty, rewardsMultiplier float64) entities.Rewards {
	mult := c.DifficultyMultiplier(difficulty) * rewardsMultiplier
	gold := float64(teamBaseGold) + averageLevel*teamGoldPerLevel
	exp := float64(teamBaseExp) + averageLevel*teamExpPerLevel
	return entities.Rewards{
		Gold:       int(math.Trunc(gold * mult)),
		Experience: int(math.Trunc(exp * mult)),
		Items:      []string{},
	}
}
