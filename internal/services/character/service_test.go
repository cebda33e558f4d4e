package character_test

import (
	"testing"

	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"
)

type CharacterServiceTestSuite struct {
	suite.Suite
	roller  *dice.MockRoller
	bus     *events.Bus
	service character.Service
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.roller = dice.NewMockRoller()
	s.bus = events.NewBus()
	s.service = character.NewService(&character.ServiceConfig{
		Roller:    s.roller,
		Publisher: s.bus,
	})
}

func TestCharacterServiceSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}

func (s *CharacterServiceTestSuite) TestCreate_Magician() {
	rin, err := s.service.Create("Rin", entities.ClassMagician)
	s.Require().NoError(err)

	s.Equal(18, rin.Stats.MagicPower)
	s.Equal(80, rin.Stats.MaxHP)
	s.Equal(80, rin.CurrentHP)
	s.Equal(100, rin.Gold)
	s.Equal(1, rin.Level)
	s.Equal(0, rin.Experience)
	s.Equal(100, rin.ExperienceToNext)
	s.Zero(rin.QuestsCompleted)
	s.Zero(rin.MonstersDefeated)
	s.Equal([]string{"Fireball", "Magic Shield", "Arcane Blast"}, rin.Abilities)

	s.Len(rin.Inventory, 4)
	for _, category := range []entities.ItemCategory{"weapons", "armor", "items", "spells"} {
		items, ok := rin.Inventory[category]
		s.True(ok, "category %s missing", category)
		s.Empty(items)
	}
}

func (s *CharacterServiceTestSuite) TestCreate_InvalidInput() {
	_, err := s.service.Create("Rin", "bard")
	s.True(rpgerr.IsInvalidClass(err))

	_, err = s.service.Create("   ", entities.ClassSniper)
	s.True(rpgerr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestLevelUp_GrowthBucketsFromBaseStats() {
	rin, err := s.service.Create("Rin", entities.ClassMagician)
	s.Require().NoError(err)
	rin.Experience = 130
	rin.CurrentHP = 12
	// Grow the live strength past 16 to prove buckets use the class base value
	rin.Stats.Strength = 30

	var seen *events.LevelUpEvent
	s.bus.Subscribe(events.EventTypeLevelUp, events.NewListenerFunc("test", 1, func(e events.Event) error {
		seen = e.(*events.LevelUpEvent)
		return nil
	}))

	s.roller.SetRolls([]int{
		2, // strength base 8: d2 -> 2
		1, // agility base 10: d2 -> 1
		3, // intelligence base 20: d3+1 -> 4
		2, // defense base 8: d2 -> 2
		1, // magic power base 18: d3+1 -> 2
		8, // max hp: d8+7 -> 15
	})

	result, err := s.service.LevelUp(rin)
	s.Require().NoError(err)

	s.Equal(2, rin.Level)
	s.Equal(0, rin.Experience)
	s.Equal(200, rin.ExperienceToNext)
	s.Equal(32, rin.Stats.Strength)
	s.Equal(11, rin.Stats.Agility)
	s.Equal(24, rin.Stats.Intelligence)
	s.Equal(10, rin.Stats.Defense)
	s.Equal(20, rin.Stats.MagicPower)
	s.Equal(95, rin.Stats.MaxHP)
	s.Equal(95, rin.CurrentHP)
	s.Equal(15, result.HPGain)
	s.Equal(4, result.Gains[entities.StatIntelligence])

	s.Require().NotNil(seen)
	s.Equal(2, seen.NewLevel)
	s.Zero(s.roller.Remaining())
}

func (s *CharacterServiceTestSuite) TestLevelUp_RollerFailureLeavesCharacterUntouched() {
	rin, err := s.service.Create("Rin", entities.ClassMagician)
	s.Require().NoError(err)
	s.roller.SetRolls([]int{1, 1})

	_, err = s.service.LevelUp(rin)
	s.Error(err)
	s.Equal(1, rin.Level)
	s.Equal(8, rin.Stats.Strength)
}

func (s *CharacterServiceTestSuite) TestCalculateDamage() {
	gunner, err := s.service.Create("Vex", entities.ClassGunman)
	s.Require().NoError(err)

	tests := []struct {
		name    string
		ability string
		roll    int
		want    int
	}{
		{name: "plain strength, top variance", roll: 11, want: 19},
		{name: "precise aim truncates 14*1.6", ability: "Precise Aim", roll: 6, want: 22},
		{name: "unlisted ability uses 1.0", ability: "Reload", roll: 1, want: 9},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.roller.SetRolls([]int{tt.roll})
			damage, err := s.service.CalculateDamage(gunner, tt.ability)
			s.Require().NoError(err)
			s.Equal(tt.want, damage)
		})
	}
}

func (s *CharacterServiceTestSuite) TestCalculateDamage_FloorsAtOne() {
	weakling, err := s.service.Create("Pip", entities.ClassMagician)
	s.Require().NoError(err)
	weakling.Stats.Strength = 2
	s.roller.SetRolls([]int{1})

	damage, err := s.service.CalculateDamage(weakling, "")
	s.Require().NoError(err)
	s.Equal(1, damage)
}

func (s *CharacterServiceTestSuite) TestInventoryOperations() {
	rin, err := s.service.Create("Rin", entities.ClassMagician)
	s.Require().NoError(err)

	s.True(s.service.AddItem(rin, entities.Item{Name: "Health Potion"}))
	s.True(s.service.AddItem(rin, entities.Item{Name: "Ember Tome", Type: entities.CategorySpells}))
	s.False(s.service.AddItem(rin, entities.Item{Name: "Pony", Type: "mounts"}))
	s.False(s.service.AddItem(nil, entities.Item{Name: "Health Potion"}))

	s.True(s.service.RemoveItem(rin, "Ember Tome", entities.CategorySpells))
	s.False(s.service.RemoveItem(rin, "Ember Tome", entities.CategorySpells))
	s.Len(rin.Inventory[entities.CategoryItems], 1)
}

func (s *CharacterServiceTestSuite) TestApplyVictoryRewards() {
	rin, err := s.service.Create("Rin", entities.ClassMagician)
	s.Require().NoError(err)
	rin.Experience = 60

	s.Run("below threshold only credits", func() {
		results, err := s.service.ApplyVictoryRewards(rin, entities.Rewards{Gold: 25, Experience: 20, Items: []string{"Dire Wolf Fang"}})
		s.Require().NoError(err)
		s.Empty(results)
		s.Equal(125, rin.Gold)
		s.Equal(80, rin.Experience)
		s.Equal("Dire Wolf Fang", rin.Inventory[entities.CategoryItems][0].Name)
	})

	s.Run("crossing threshold levels up once", func() {
		s.roller.SetRolls([]int{1, 1, 1, 1, 1, 1})
		results, err := s.service.ApplyVictoryRewards(rin, entities.Rewards{Gold: 0, Experience: 300})
		s.Require().NoError(err)
		s.Require().Len(results, 1)
		s.Equal(2, rin.Level)
		s.Equal(0, rin.Experience)
		s.Equal(88, rin.Stats.MaxHP)
	})

	_, err = s.service.ApplyVictoryRewards(nil, entities.Rewards{})
	s.True(rpgerr.IsInvalidArgument(err))
}

func TestLevelUp_AlwaysFullHealsAndGrowsMaxHP(t *testing.T) {
	svc := character.NewService(nil)

	rapid.Check(t, func(t *rapid.T) {
		class := rapid.SampledFrom(entities.Classes).Draw(t, "class")
		levels := rapid.IntRange(1, 6).Draw(t, "levels")

		hero, err := svc.Create("Hero", class)
		require.NoError(t, err)

		for i := 0; i < levels; i++ {
			hero.CurrentHP = rapid.IntRange(0, hero.Stats.MaxHP).Draw(t, "hp")
			before := hero.Stats.MaxHP

			_, err := svc.LevelUp(hero)
			require.NoError(t, err)

			assert.Greater(t, hero.Stats.MaxHP, before)
			assert.Equal(t, hero.Stats.MaxHP, hero.CurrentHP)
			assert.Equal(t, hero.Level*100, hero.ExperienceToNext)
		}
	})
}
