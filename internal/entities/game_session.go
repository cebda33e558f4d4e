package entities

import "time"

// SessionStatus represents the lifecycle state of a multiplayer session
type SessionStatus string

const (
	SessionStatusWaiting    SessionStatus = "waiting"     // Lobby is open for joins
	SessionStatusInProgress SessionStatus = "in_progress" // Started, no more joins
	SessionStatusCompleted  SessionStatus = "completed"
)

// GameSession is a multiplayer lobby and its shared story
type GameSession struct {
	ID           string        `json:"session_id"`
	Host         string        `json:"host_player"`
	Players      []*Character  `json:"players"`
	MaxPlayers   int           `json:"max_players"`
	Status       SessionStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	CurrentQuest *Quest        `json:"current_quest,omitempty"`
	StoryContext []StoryEvent  `json:"shared_story_context"`
}

// IsFull reports whether the roster has reached MaxPlayers
func (s *GameSession) IsFull() bool {
	return len(s.Players) >= s.MaxPlayers
}

// CanJoin reports whether a new player may join right now
func (s *GameSession) CanJoin() bool {
	return s.Status == SessionStatusWaiting && !s.IsFull()
}

// HasPlayer reports whether name is on the roster
func (s *GameSession) HasPlayer(name string) bool {
	return s.playerIndex(name) >= 0
}

// Player returns the roster snapshot for name
func (s *GameSession) Player(name string) *Character {
	if idx := s.playerIndex(name); idx >= 0 {
		return s.Players[idx]
	}
	return nil
}

// PlayerNames returns roster names in join order
func (s *GameSession) PlayerNames() []string {
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	return names
}

// RemovePlayer drops name from the roster, reassigning host to the first
// remaining player when the host leaves. Returns false if name was absent.
func (s *GameSession) RemovePlayer(name string) bool {
	idx := s.playerIndex(name)
	if idx < 0 {
		return false
	}

	s.Players = append(s.Players[:idx:idx], s.Players[idx+1:]...)
	if s.Host == name && len(s.Players) > 0 {
		s.Host = s.Players[0].Name
	}
	return true
}

// AverageLevel is the mean roster level, zero for an empty roster
func (s *GameSession) AverageLevel() float64 {
	if len(s.Players) == 0 {
		return 0
	}
	total := 0
	for _, p := range s.Players {
		total += p.Level
	}
	return float64(total) / float64(len(s.Players))
}

// Age is how long the session has existed at now
func (s *GameSession) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

func (s *GameSession) playerIndex(name string) int {
	for i, p := range s.Players {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy
func (s *GameSession) Clone() *GameSession {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Players = make([]*Character, len(s.Players))
	for i, p := range s.Players {
		clone.Players[i] = p.Clone()
	}
	clone.CurrentQuest = s.CurrentQuest.Clone()
	clone.StoryContext = append([]StoryEvent(nil), s.StoryContext...)
	return &clone
}
