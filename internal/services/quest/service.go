package quest

//go:generate mockgen -destination=mock/mock_service.go -package=mockquest -source=service.go

import (
	"context"
	"log"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/narrative"
)

// Item drop chances, in percent
const (
	SoloItemChance = 30
	TeamItemChance = 50
)

// Service defines the quest service interface
type Service interface {
	// Generate builds a contract sized for player's level
	Generate(ctx context.Context, player *entities.Character, storyContext []entities.StoryEvent) (*entities.Quest, error)

	// GenerateTeam builds a cooperative contract for a party
	GenerateTeam(ctx context.Context, players []*entities.Character) (*entities.Quest, error)

	// Complete credits the quest rewards and counters to player
	Complete(quest *entities.Quest, player *entities.Character) error
}

type service struct {
	catalog   *catalog.Catalog
	roller    dice.Roller
	narrative narrative.Service
	publisher events.Publisher
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog   *catalog.Catalog  // Optional, defaults to catalog.Default()
	Roller    dice.Roller       // Optional, defaults to a random roller
	Narrative narrative.Service // Optional, quests stay unenhanced when nil
	Publisher events.Publisher  // Optional
}

// NewService creates a new quest service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &service{
		catalog:   cfg.Catalog,
		roller:    cfg.Roller,
		narrative: cfg.Narrative,
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

func (s *service) Generate(ctx context.Context, player *entities.Character, storyContext []entities.StoryEvent) (*entities.Quest, error) {
	if player == nil {
		return nil, rpgerr.InvalidArgument("player is required")
	}

	templates := s.catalog.SoloTemplates()
	tmplIdx, err := dice.Index(s.roller, len(templates))
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to pick quest template")
	}
	template := templates[tmplIdx]

	creature, err := s.pickCreature(player.Level)
	if err != nil {
		return nil, err
	}

	quest, err := s.draft(template, creature)
	if err != nil {
		return nil, err
	}

	quest.Rewards = SoloRewards(s.catalog, player.Level, creature.Difficulty, template.DifficultyModifier)
	items, err := s.bonusItems(SoloItemChance, s.catalog.RewardItemPool(creature.Name))
	if err != nil {
		return nil, err
	}
	quest.Rewards.Items = items

	if s.narrative != nil {
		quest.MergeNarrative(s.narrative.EnhanceQuest(ctx, quest, player, storyContext))
	}

	log.Printf("QuestService: Generated '%s' (%s) for %s", quest.Title, quest.Difficulty, player.Name)
	events.Notify(s.publisher, events.NewQuestEvent(events.EventTypeQuestGenerated, player.Name, "", quest))

	return quest, nil
}

func (s *service) GenerateTeam(ctx context.Context, players []*entities.Character) (*entities.Quest, error) {
	if len(players) == 0 {
		return nil, rpgerr.InvalidArgument("at least one player is required")
	}

	total := 0
	for _, p := range players {
		if p == nil {
			return nil, rpgerr.InvalidArgument("player is required")
		}
		total += p.Level
	}
	averageLevel := float64(total) / float64(len(players))

	var suitable []catalog.QuestTemplate
	for _, tmpl := range s.catalog.TeamTemplates() {
		if tmpl.Fits(len(players)) {
			suitable = append(suitable, tmpl)
		}
	}
	if len(suitable) == 0 {
		log.Printf("QuestService: No team template fits %d players, using a solo template", len(players))
		suitable = s.catalog.SoloTemplates()
	}

	tmplIdx, err := dice.Index(s.roller, len(suitable))
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to pick quest template")
	}
	template := suitable[tmplIdx]

	creature, err := s.pickCreature(int(averageLevel))
	if err != nil {
		return nil, err
	}
	creature = ScaleForTeam(s.catalog, creature, len(players), template.DifficultyModifier)

	quest, err := s.draft(template, creature)
	if err != nil {
		return nil, err
	}
	quest.Multiplayer = true
	quest.RequiredPlayers = template.MinPlayers
	if quest.RequiredPlayers == 0 {
		quest.RequiredPlayers = 2
	}

	rewardsMultiplier := template.RewardsMultiplier
	if rewardsMultiplier == 0 {
		rewardsMultiplier = 1.0
	}
	quest.Rewards = TeamRewards(s.catalog, averageLevel, creature.Difficulty, rewardsMultiplier)
	items, err := s.bonusItems(TeamItemChance, s.catalog.TeamRewardItems())
	if err != nil {
		return nil, err
	}
	quest.Rewards.Items = items

	log.Printf("QuestService: Generated team quest '%s' for %d hunters", quest.Title, len(players))

	return quest, nil
}

func (s *service) Complete(quest *entities.Quest, player *entities.Character) error {
	if quest == nil {
		return rpgerr.InvalidArgument("quest is required")
	}
	if player == nil {
		return rpgerr.InvalidArgument("player is required")
	}

	player.Gold += quest.Rewards.Gold
	player.Experience += quest.Rewards.Experience
	player.QuestsCompleted++
	player.MonstersDefeated++
	for _, name := range quest.Rewards.Items {
		player.AddItem(entities.Item{Name: name, Type: entities.CategoryItems})
	}

	events.Notify(s.publisher, events.NewQuestEvent(events.EventTypeQuestCompleted, player.Name, "", quest))

	return nil
}

// pickCreature draws a bestiary creature allowed at level and scales it
func (s *service) pickCreature(level int) (*entities.Creature, error) {
	pool := s.catalog.CreaturesFor(catalog.AllowedDifficulties(level))
	if len(pool) == 0 {
		return nil, rpgerr.Internalf("no creatures available for level %d", level)
	}

	idx, err := dice.Index(s.roller, len(pool))
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to pick creature")
	}

	return ScaleCreature(pool[idx], level), nil
}

// draft picks the giver and location and renders the template text
func (s *service) draft(template catalog.QuestTemplate, creature *entities.Creature) (*entities.Quest, error) {
	givers := s.catalog.Givers()
	giverIdx, err := dice.Index(s.roller, len(givers))
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to pick quest giver")
	}

	locations := s.catalog.Locations()
	locIdx, err := dice.Index(s.roller, len(locations))
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to pick location")
	}
	location := locations[locIdx]

	title, description := template.Render(creature.Name, location)
	return &entities.Quest{
		Title:       title,
		Description: description,
		Type:        template.Type,
		Giver:       givers[giverIdx].String(),
		Creature:    creature,
		Location:    location,
		Difficulty:  creature.Difficulty,
	}, nil
}

// bonusItems rolls the drop chance and then draws one or two distinct items from pool
func (s *service) bonusItems(chance int, pool []string) ([]string, error) {
	drop, err := dice.Percent(s.roller, chance)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll item drop")
	}
	if !drop {
		return []string{}, nil
	}

	count, err := dice.Between(s.roller, 1, 2)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to roll item count")
	}

	picks, err := dice.Sample(s.roller, len(pool), count)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to draw reward items")
	}

	items := make([]string, len(picks))
	for i, idx := range picks {
		items[i] = pool[idx]
	}
	return items, nil
}
