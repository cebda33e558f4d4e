package entities

import "fmt"

// CombatStatus is the state of a solo or team fight
type CombatStatus string

const (
	CombatStatusOngoing CombatStatus = "ongoing"
	CombatStatusVictory CombatStatus = "victory"
	CombatStatusDefeat  CombatStatus = "defeat"
)

// IsTerminal reports whether no further turns may be processed
func (s CombatStatus) IsTerminal() bool {
	return s == CombatStatusVictory || s == CombatStatusDefeat
}

// Turn says whose move it is in a solo fight
type Turn string

const (
	TurnPlayer Turn = "player"
	TurnEnemy  Turn = "enemy"
)

// EnemyActor is the turn order slot taken by the shared enemy in team combat
const EnemyActor = "enemy"

// CombatSession is a solo fight between one hunter and one creature
type CombatSession struct {
	Player          *Character   `json:"player"`
	Enemy           *Creature    `json:"enemy"`
	Turn            Turn         `json:"turn"`
	Round           int          `json:"round"`
	Status          CombatStatus `json:"status"`
	Log             []string     `json:"combat_log"`
	PlayerDefending bool         `json:"player_defending"`
}

// NewCombatSession snapshots player and enemy and opens the log
func NewCombatSession(player *Character, enemy *Creature) *CombatSession {
	session := &CombatSession{
		Player: player.Clone(),
		Enemy:  enemy.Clone(),
		Turn:   TurnPlayer,
		Round:  1,
		Status: CombatStatusOngoing,
		Log:    []string{},
	}
	session.AddLog("Combat begins! %s vs %s", session.Player.Name, session.Enemy.Name)
	return session
}

// IsOver reports whether the fight has ended
func (c *CombatSession) IsOver() bool {
	return c.Status.IsTerminal()
}

// AddLog appends a formatted entry. The log is append-only.
func (c *CombatSession) AddLog(format string, args ...any) {
	c.Log = append(c.Log, fmt.Sprintf(format, args...))
}

// RecentLog returns the last n entries for display
func (c *CombatSession) RecentLog(n int) []string {
	return tail(c.Log, n)
}

// Clone returns a deep copy
func (c *CombatSession) Clone() *CombatSession {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Player = c.Player.Clone()
	clone.Enemy = c.Enemy.Clone()
	clone.Log = append([]string(nil), c.Log...)
	return &clone
}

// TeamCombatSession is a fight between a roster and one shared creature
type TeamCombatSession struct {
	Players     []*Character        `json:"players"`
	Enemy       *Creature           `json:"enemy"`
	TurnOrder   []string            `json:"turn_order"`
	CurrentTurn int                 `json:"current_turn"`
	Round       int                 `json:"round"`
	Status      CombatStatus        `json:"status"`
	Log         []string            `json:"combat_log"`
	TeamEffects map[string][]string `json:"team_effects"`
}

// CurrentActor is the player name or EnemyActor whose turn it is
func (t *TeamCombatSession) CurrentActor() string {
	if len(t.TurnOrder) == 0 {
		return ""
	}
	return t.TurnOrder[t.CurrentTurn%len(t.TurnOrder)]
}

// Player finds a roster snapshot by name
func (t *TeamCombatSession) Player(name string) *Character {
	for _, p := range t.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AddLog appends a formatted entry
func (t *TeamCombatSession) AddLog(format string, args ...any) {
	t.Log = append(t.Log, fmt.Sprintf(format, args...))
}

// RecentLog returns the last n entries for display
func (t *TeamCombatSession) RecentLog(n int) []string {
	return tail(t.Log, n)
}

func tail(entries []string, n int) []string {
	if n <= 0 || len(entries) <= n {
		return append([]string(nil), entries...)
	}
	return append([]string(nil), entries[len(entries)-n:]...)
}
