package events

// Event type constants
const (
	// Quest events
	EventTypeQuestGenerated EventType = "quest_generated"
	EventTypeQuestCompleted EventType = "quest_completed"

	// Combat events
	EventTypeCombatStarted EventType = "combat_started"
	EventTypeCombatEnded   EventType = "combat_ended"

	// Character events
	EventTypeLevelUp EventType = "level_up"

	// Session events
	EventTypeSessionCreated  EventType = "session_created"
	EventTypePlayerJoined    EventType = "player_joined"
	EventTypePlayerLeft      EventType = "player_left"
	EventTypeSessionStarted  EventType = "session_started"
	EventTypeSessionClosed   EventType = "session_closed"
	EventTypeSessionsExpired EventType = "sessions_expired"
)
