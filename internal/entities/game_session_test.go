package entities_test

import (
	"testing"
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	"github.com/stretchr/testify/assert"
)

func rosterSession(names ...string) *entities.GameSession {
	session := &entities.GameSession{
		ID:         "ABCD1234",
		Host:       names[0],
		MaxPlayers: 4,
		Status:     entities.SessionStatusWaiting,
		CreatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	for i, name := range names {
		session.Players = append(session.Players, &entities.Character{Name: name, Level: i + 1})
	}
	return session
}

func TestGameSession_RemovePlayerReassignsHost(t *testing.T) {
	session := rosterSession("Ayla", "Bram", "Cato")

	assert.True(t, session.RemovePlayer("Ayla"))
	assert.Equal(t, "Bram", session.Host)
	assert.Equal(t, []string{"Bram", "Cato"}, session.PlayerNames())

	assert.True(t, session.RemovePlayer("Cato"))
	assert.Equal(t, "Bram", session.Host)

	assert.False(t, session.RemovePlayer("Cato"))
}

func TestGameSession_CanJoin(t *testing.T) {
	session := rosterSession("Ayla", "Bram")
	session.MaxPlayers = 2

	assert.True(t, session.IsFull())
	assert.False(t, session.CanJoin())

	session.MaxPlayers = 3
	assert.True(t, session.CanJoin())

	session.Status = entities.SessionStatusInProgress
	assert.False(t, session.CanJoin())
}

func TestGameSession_AverageLevelAndAge(t *testing.T) {
	session := rosterSession("Ayla", "Bram")

	assert.InDelta(t, 1.5, session.AverageLevel(), 0.0001)
	assert.Equal(t, 2*time.Hour, session.Age(session.CreatedAt.Add(2*time.Hour)))
	assert.Zero(t, (&entities.GameSession{}).AverageLevel())
}

func TestGameSession_CloneDoesNotAlias(t *testing.T) {
	session := rosterSession("Ayla", "Bram")
	session.CurrentQuest = &entities.Quest{Title: "Raid the Dire Wolf Den", Creature: &entities.Creature{Name: "Dire Wolf", CurrentHP: 80}}

	clone := session.Clone()
	clone.Players[0].Gold = 999
	clone.CurrentQuest.Creature.CurrentHP = 0
	clone.StoryContext = append(clone.StoryContext, entities.StoryEvent{Type: entities.StoryEventNote})

	assert.Zero(t, session.Players[0].Gold)
	assert.Equal(t, 80, session.CurrentQuest.Creature.CurrentHP)
	assert.Empty(t, session.StoryContext)
}

func TestQuest_MergeNarrativeOnlyAdds(t *testing.T) {
	quest := &entities.Quest{
		Title:   "Hunt the Dire Wolf",
		Rewards: entities.Rewards{Gold: 60, Experience: 48},
		Narrative: &entities.QuestNarrative{
			Backstory: "The wolves came down from the pass.",
		},
	}

	quest.MergeNarrative(&entities.QuestNarrative{
		EnhancedDescription: "Howls echo at dusk.",
		Backstory:           "Something else entirely.",
		Stakes:              "The harvest.",
	})
	quest.MergeNarrative(nil)

	assert.Equal(t, "Howls echo at dusk.", quest.Narrative.EnhancedDescription)
	assert.Equal(t, "The wolves came down from the pass.", quest.Narrative.Backstory)
	assert.Equal(t, "The harvest.", quest.Narrative.Stakes)
	assert.Equal(t, 60, quest.Rewards.Gold)
	assert.Equal(t, 48, quest.Rewards.Experience)
}

func TestStoryEvents(t *testing.T) {
	at := time.Now()
	quest := &entities.Quest{Title: "Hunt", Location: "at the Crossroads", Creature: &entities.Creature{Name: "Dire Wolf"}}
	context := []entities.StoryEvent{
		entities.NewQuestEvent(entities.StoryEventQuestCompleted, "Rin", quest, "victory", at),
		{Type: entities.StoryEventNote, Text: "rested"},
		entities.NewQuestEvent(entities.StoryEventQuestCompleted, "Rin", quest, "victory", at),
		entities.NewQuestEvent(entities.StoryEventQuestFailed, "Rin", quest, "defeat", at),
	}

	assert.Equal(t, 2, entities.CountEvents(context, entities.StoryEventQuestCompleted))
	last := entities.LastEvents(context, entities.StoryEventQuestCompleted, 1)
	assert.Len(t, last, 1)
	assert.Equal(t, "Dire Wolf", last[0].Creature)
	assert.Equal(t, "at the Crossroads", last[0].Location)
}
