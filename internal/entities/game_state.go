package entities

import "time"

// GameState is the persisted blob for a solo adventure
type GameState struct {
	Player       *Character     `json:"player"`
	CurrentQuest *Quest         `json:"current_quest,omitempty"`
	Combat       *CombatSession `json:"combat,omitempty"`
	StoryContext []StoryEvent   `json:"story_context"`
	SavedAt      time.Time      `json:"saved_at"`
}

// Clone returns a deep copy
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	clone := *g
	clone.Player = g.Player.Clone()
	clone.CurrentQuest = g.CurrentQuest.Clone()
	clone.Combat = g.Combat.Clone()
	clone.StoryContext = append([]StoryEvent(nil), g.StoryContext...)
	return &clone
}
