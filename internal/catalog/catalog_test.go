package catalog_test

import (
	"testing"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasses_AllNineWithDisplayNames(t *testing.T) {
	c := catalog.Default()

	classes := c.Classes()
	require.Len(t, classes, 9)
	assert.Equal(t, entities.ClassSwordsman, classes[0].Class)
	assert.Equal(t, "Swordsman", classes[0].DisplayName)

	magician, ok := c.Class(entities.ClassMagician)
	require.True(t, ok)
	assert.Equal(t, 18, magician.BaseStats.MagicPower)
	assert.Equal(t, 80, magician.BaseStats.MaxHP)
	assert.Equal(t, []string{"Fireball", "Magic Shield", "Arcane Blast"}, magician.Abilities)

	_, ok = c.Class("bard")
	assert.False(t, ok)
}

func TestClass_ReturnsCopies(t *testing.T) {
	c := catalog.New()

	tmpl, _ := c.Class(entities.ClassWarrior)
	tmpl.Abilities[0] = "Cartwheel"
	tmpl.AbilityModifiers["Shield Bash"] = 9

	again, _ := c.Class(entities.ClassWarrior)
	assert.Equal(t, "Shield Bash", again.Abilities[0])
	assert.Equal(t, 1.2, c.AbilityModifier(entities.ClassWarrior, "Shield Bash"))
}

func TestAbilityModifier(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, 2.2, c.AbilityModifier(entities.ClassAssassin, "Stealth Strike"))
	assert.Equal(t, 1.0, c.AbilityModifier(entities.ClassAssassin, "Shadow Step"))
	assert.Equal(t, 1.0, c.AbilityModifier("bard", "Lute Solo"))
}

func TestAllowedDifficulties(t *testing.T) {
	tests := []struct {
		level int
		want  []entities.Difficulty
	}{
		{level: 1, want: []entities.Difficulty{entities.DifficultyEasy}},
		{level: 2, want: []entities.Difficulty{entities.DifficultyEasy}},
		{level: 3, want: []entities.Difficulty{entities.DifficultyEasy, entities.DifficultyMedium}},
		{level: 5, want: []entities.Difficulty{entities.DifficultyEasy, entities.DifficultyMedium}},
		{level: 6, want: []entities.Difficulty{entities.DifficultyMedium, entities.DifficultyHard}},
		{level: 8, want: []entities.Difficulty{entities.DifficultyMedium, entities.DifficultyHard}},
		{level: 9, want: []entities.Difficulty{entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard, entities.DifficultyLegendary}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.AllowedDifficulties(tt.level), "level %d", tt.level)
	}
}

func TestCreaturesFor_EasyPool(t *testing.T) {
	c := catalog.Default()

	easy := c.CreaturesFor([]entities.Difficulty{entities.DifficultyEasy})
	names := []string{}
	for _, creature := range easy {
		names = append(names, creature.Name)
		assert.Equal(t, entities.DifficultyEasy, creature.Difficulty)
		assert.Equal(t, creature.MaxHP, creature.CurrentHP)
	}
	assert.Equal(t, []string{"Giant Ground Sloth", "Dire Wolf"}, names)
	assert.Len(t, c.Creatures(), 8)
}

func TestCreatures_EffectsResolvedAtLoad(t *testing.T) {
	c := catalog.Default()

	bird, ok := c.Creature("Terror Bird")
	require.True(t, ok)
	require.Len(t, bird.Abilities, 2)
	swift := bird.Abilities[1]
	assert.Equal(t, "Swift Strike", swift.Name)
	assert.Equal(t, entities.EffectDamageMultiplier, swift.Effect.Kind)
	assert.Equal(t, 2, swift.Effect.HitCount())
	assert.InDelta(t, 1.1, swift.Effect.Multiplier, 1e-9)

	wolf, _ := c.Creature("Dire Wolf")
	assert.Equal(t, entities.EffectBuff, wolf.Abilities[0].Effect.Kind)
	assert.Equal(t, catalog.GenericEffect, wolf.Abilities[1].Effect)

	lizard, _ := c.Creature("Megalania")
	assert.Equal(t, entities.EffectPoison, lizard.Abilities[0].Effect.Kind)
	assert.Equal(t, 5, lizard.Abilities[0].Effect.FlatDamage)

	rex, _ := c.Creature("Tyrannosaurus Rex")
	assert.Equal(t, entities.EffectStun, rex.Abilities[1].Effect.Kind)
	assert.False(t, rex.Abilities[1].Effect.DealsDamage())

	assert.Equal(t, catalog.GenericEffect, c.SpecialAbility(catalog.AbilityRegeneration).Effect)
}

func TestCreatures_CopiesAreIndependent(t *testing.T) {
	c := catalog.New()

	first, _ := c.Creature("Cave Bear")
	first.CurrentHP = 0
	first.Abilities[0].Name = "Nap"

	second, _ := c.Creature("Cave Bear")
	assert.Equal(t, 140, second.CurrentHP)
	assert.Equal(t, "Claw Swipe", second.Abilities[0].Name)
}

func TestQuestTemplates(t *testing.T) {
	c := catalog.Default()

	solo := c.SoloTemplates()
	require.Len(t, solo, 4)
	title, desc := solo[1].Render("Cave Bear", "at the Crossroads")
	assert.Equal(t, "Protect at the Crossroads from Cave Bear", title)
	assert.Equal(t, "The Cave Bear is threatening at the Crossroads. Defend our people and drive back this ancient menace.", desc)

	team := c.TeamTemplates()
	require.Len(t, team, 4)
	assert.True(t, team[0].Fits(2))
	assert.False(t, team[1].Fits(2))
	assert.True(t, team[3].Fits(6))
}

func TestGiversLocationsAndPools(t *testing.T) {
	c := catalog.Default()

	givers := c.Givers()
	require.Len(t, givers, 8)
	assert.Equal(t, "Captain Marcus, Royal Guard Captain", givers[0].String())
	assert.Len(t, c.Locations(), 15)

	pool := c.RewardItemPool("Dire Wolf")
	assert.Equal(t, []string{"Dire Wolf Fang", "Dire Wolf Hide", "Dire Wolf Claw"}, pool[:3])
	assert.Len(t, pool, 8)
	assert.Len(t, c.TeamRewardItems(), 4)

	assert.Equal(t, 1.6, c.DifficultyMultiplier(entities.DifficultyLegendary))
	assert.Equal(t, 0.8, c.DifficultyMultiplier(entities.DifficultyEasy))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Magic Power", catalog.DisplayName("magic_power"))
	assert.Equal(t, "Hitman", catalog.DisplayName("hitman"))
}
