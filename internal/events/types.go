package events

import "github.com/Darkkkking/ai-rpg-adventure/internal/entities"

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// QuestEvent is emitted when a quest is generated or completed
type QuestEvent struct {
	BaseEvent
	Player    string
	SessionID string
	Quest     *entities.Quest
}

// CombatEvent is emitted when a fight starts or ends
type CombatEvent struct {
	BaseEvent
	Player string
	Enemy  string
	Status entities.CombatStatus
	Rounds int
}

// LevelUpEvent is emitted after a character gains a level
type LevelUpEvent struct {
	BaseEvent
	Player   string
	NewLevel int
	Gains    map[entities.Stat]int
}

// SessionEvent is emitted on multiplayer lobby changes
type SessionEvent struct {
	BaseEvent
	SessionID string
	Player    string
	Host      string
	Players   int
}

// NewQuestEvent builds a QuestEvent of the given type
func NewQuestEvent(eventType EventType, player, sessionID string, quest *entities.Quest) *QuestEvent {
	return &QuestEvent{BaseEvent: BaseEvent{Type: eventType}, Player: player, SessionID: sessionID, Quest: quest}
}

// NewSessionEvent builds a SessionEvent from a session snapshot
func NewSessionEvent(eventType EventType, session *entities.GameSession, player string) *SessionEvent {
	event := &SessionEvent{BaseEvent: BaseEvent{Type: eventType}, Player: player}
	if session != nil {
		event.SessionID = session.ID
		event.Host = session.Host
		event.Players = len(session.Players)
	}
	return event
}
