package narrative

import (
	"fmt"
	"log"
	"strings"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

const (
	firstAdventureSummary = "This is the player's first adventure."
	noVictoriesSummary    = "The player is just beginning their journey as a Monster Hunter."
	summaryWindow         = 3
)

// ContextSummary condenses the last few completed quests for a prompt
func ContextSummary(storyContext []entities.StoryEvent) string {
	if len(storyContext) == 0 {
		return firstAdventureSummary
	}

	completed := entities.LastEvents(storyContext, entities.StoryEventQuestCompleted, summaryWindow)
	if len(completed) == 0 {
		return noVictoriesSummary
	}

	parts := make([]string, 0, len(completed))
	for _, event := range completed {
		creature := event.Creature
		if creature == "" {
			creature = "unknown creature"
		}
		location := event.Location
		if location == "" {
			location = "unknown location"
		}
		parts = append(parts, fmt.Sprintf("Defeated %s %s", creature, location))
	}

	return "Previous adventures: " + strings.Join(parts, "; ")
}

func completionTemplates(name, class, creature, location string) []string {
	return []string{
		fmt.Sprintf("The battle was long and brutal, but %s stood victorious over the %s. "+
			"Peace returned %s, and the villagers greeted their hero with cheers, "+
			"though no one could say why the ancient beasts keep returning.", name, creature, location),
		fmt.Sprintf("%s followed the trail of the %s %s and brought it to ground. "+
			"The fight was fierce, yet years of %s training carried the day. "+
			"One more threat to the kingdom is gone, and the mystery only deepens.", name, creature, location, class),
		fmt.Sprintf("The %s proved a dangerous foe, but %s won through with nerve and cunning. "+
			"When the dust settled %s the realm was a little safer, "+
			"yet rumours spread of older things stirring in the dark.", creature, name, location),
	}
}

func encounterTemplates(location string) []string {
	return []string{
		fmt.Sprintf("An ancient presence hangs heavy in the air as you draw near %s. "+
			"Strange tracks scar the ground and an unnatural quiet settles over everything.", location),
		fmt.Sprintf("Every instinct warns that something powerful passed through %s not long ago. "+
			"The air itself hums with primordial energy.", location),
		fmt.Sprintf("Looking over %s you find broken trees and deep gouges torn into the earth. "+
			"Whatever made these marks does not belong to the modern world.", location),
	}
}

func (s *service) pick(options []string) string {
	idx, err := dice.Index(s.roller, len(options))
	if err != nil {
		log.Printf("NarrativeService: failed to pick fallback text: %v", err)
		idx = 0
	}
	return options[idx]
}

func (s *service) fallbackCompletion(player *entities.Character, quest *entities.Quest) string {
	name, class := "The hunter", "hunter"
	if player != nil {
		name = player.Name
		class = catalog.DisplayName(string(player.Class))
	}

	creature, location := "beast", "in the wilds"
	if quest != nil {
		location = quest.Location
		if quest.Creature != nil {
			creature = quest.Creature.Name
		}
	}

	return s.pick(completionTemplates(name, class, creature, location))
}

func (s *service) fallbackEncounter(location string) string {
	if strings.TrimSpace(location) == "" {
		location = "the wilds"
	}
	return s.pick(encounterTemplates(location))
}
