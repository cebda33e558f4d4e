package entities

import "time"

// StoryEventType tags an entry in a story context
type StoryEventType string

const (
	StoryEventQuestCompleted StoryEventType = "quest_completed"
	StoryEventQuestFailed    StoryEventType = "quest_failed"
	StoryEventNote           StoryEventType = "note"
)

// StoryEvent is one append-only entry of a solo or shared story context
type StoryEvent struct {
	Type       StoryEventType `json:"type"`
	Player     string         `json:"player,omitempty"`
	QuestTitle string         `json:"quest_title,omitempty"`
	Creature   string         `json:"creature,omitempty"`
	Location   string         `json:"location,omitempty"`
	Outcome    string         `json:"outcome,omitempty"`
	Text       string         `json:"text,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// NewQuestEvent records the outcome of a quest
func NewQuestEvent(eventType StoryEventType, player string, quest *Quest, outcome string, at time.Time) StoryEvent {
	event := StoryEvent{
		Type:      eventType,
		Player:    player,
		Outcome:   outcome,
		Timestamp: at,
	}
	if quest != nil {
		event.QuestTitle = quest.Title
		event.Location = quest.Location
		if quest.Creature != nil {
			event.Creature = quest.Creature.Name
		}
	}
	return event
}

// CountEvents returns how many events of the given type are in context
func CountEvents(context []StoryEvent, eventType StoryEventType) int {
	count := 0
	for _, event := range context {
		if event.Type == eventType {
			count++
		}
	}
	return count
}

// LastEvents returns up to n of the most recent events of the given type, oldest first
func LastEvents(context []StoryEvent, eventType StoryEventType, n int) []StoryEvent {
	var matched []StoryEvent
	for _, event := range context {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	if len(matched) > n {
		matched = matched[len(matched)-n:]
	}
	return matched
}
