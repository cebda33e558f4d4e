package multiplayer

//go:generate mockgen -destination=mock/mock_service.go -package=mockmultiplayer -source=service.go

import (
	"cmp"
	"context"
	"log"
	"slices"
	"sync"
	"time"

	internal "github.com/Darkkkking/ai-rpg-adventure/internal"
	"github.com/Darkkkking/ai-rpg-adventure/internal/clock"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/combat"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/quest"
	"github.com/Darkkkking/ai-rpg-adventure/internal/uuid"
)

const (
	// MinPlayers is the smallest roster a session can be created for or started with
	MinPlayers = 2

	// DefaultMaxPlayers is used by callers that do not choose a roster size
	DefaultMaxPlayers = 4

	// DefaultMaxAge is the sweep threshold used by CleanupExpiredSessions callers
	DefaultMaxAge = 24 * time.Hour

	maxIDAttempts = 5
)

// Service manages multiplayer lobbies and their shared story
type Service interface {
	// CreateSession opens a waiting lobby hosted by host
	CreateSession(ctx context.Context, host *entities.Character, maxPlayers int) (*entities.GameSession, error)

	// JoinSession adds player to a waiting lobby
	JoinSession(ctx context.Context, sessionID string, player *entities.Character) (*entities.GameSession, error)

	// LeaveSession removes the player from whatever session they are in.
	// The returned session is nil when the lobby closed because it emptied.
	LeaveSession(ctx context.Context, playerName string) (*entities.GameSession, error)

	// StartSession moves a waiting lobby with enough players to in progress
	StartSession(ctx context.Context, sessionID string) (*entities.GameSession, error)

	// GenerateQuest builds a team quest for the roster and stores it as the current quest
	GenerateQuest(ctx context.Context, sessionID string) (*entities.Quest, error)

	// GetSession returns a snapshot of the session
	GetSession(ctx context.Context, sessionID string) (*entities.GameSession, error)

	// GetPlayerSession returns the session the player is in
	GetPlayerSession(ctx context.Context, playerName string) (*entities.GameSession, error)

	// ListWaitingSessions lists joinable lobbies, oldest first
	ListWaitingSessions(ctx context.Context) ([]*SessionListing, error)

	// AppendStoryEvent records an event in the shared story
	AppendStoryEvent(ctx context.Context, sessionID string, event entities.StoryEvent) error

	// UpdatePlayer replaces the roster snapshot for player.Name
	UpdatePlayer(ctx context.Context, sessionID string, player *entities.Character) error

	// CreateTeamCombat starts a team fight between the roster and enemy
	CreateTeamCombat(ctx context.Context, sessionID string, enemy *entities.Creature) (*entities.TeamCombatSession, error)

	// GetSessionStats summarizes a session
	GetSessionStats(ctx context.Context, sessionID string) (*SessionStats, error)

	// CleanupExpiredSessions drops sessions older than maxAge and returns how many
	CleanupExpiredSessions(ctx context.Context, maxAge time.Duration) (int, error)
}

// SessionListing is the browse view of a waiting lobby
type SessionListing struct {
	SessionID  string    `json:"session_id"`
	Host       string    `json:"host"`
	Players    int       `json:"players"`
	MaxPlayers int       `json:"max_players"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlayerSummary is one roster line in SessionStats
type PlayerSummary struct {
	Name  string                  `json:"name"`
	Class entities.CharacterClass `json:"class"`
	Level int                     `json:"level"`
}

// SessionStats aggregates a session roster and shared story
type SessionStats struct {
	SessionID       string          `json:"session_id"`
	NumPlayers      int             `json:"num_players"`
	TotalLevel      int             `json:"total_level"`
	AverageLevel    float64         `json:"average_level"`
	TotalGold       int             `json:"total_gold"`
	QuestsCompleted int             `json:"quests_completed"`
	Duration        time.Duration   `json:"session_duration"`
	Players         []PlayerSummary `json:"players"`
}

type service struct {
	mu             sync.Mutex
	sessions       map[string]*entities.GameSession
	playerSessions map[string]string

	quests    quest.Service
	combat    combat.Service
	clock     clock.TimeProvider
	ids       *uuid.SessionIDGenerator
	publisher events.Publisher
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Quests    quest.Service            // Required
	Combat    combat.Service           // Required
	Clock     clock.TimeProvider       // Optional, defaults to wall clock
	IDs       *uuid.SessionIDGenerator // Optional, defaults to Google UUIDs
	Publisher events.Publisher         // Optional
}

// NewService creates a new multiplayer service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Quests == nil {
		return nil, internal.NewMissingParamError("Quests")
	}
	if cfg.Combat == nil {
		return nil, internal.NewMissingParamError("Combat")
	}

	svc := &service{
		sessions:       make(map[string]*entities.GameSession),
		playerSessions: make(map[string]string),
		quests:         cfg.Quests,
		combat:         cfg.Combat,
		clock:          cfg.Clock,
		ids:            cfg.IDs,
		publisher:      cfg.Publisher,
	}
	if svc.clock == nil {
		svc.clock = &clock.RealTimeProvider{}
	}
	if svc.ids == nil {
		svc.ids = uuid.NewSessionIDGenerator(nil)
	}

	return svc, nil
}

func (s *service) CreateSession(ctx context.Context, host *entities.Character, maxPlayers int) (*entities.GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if host == nil || host.Name == "" {
		return nil, rpgerr.InvalidArgument("host player is required")
	}
	if maxPlayers < MinPlayers {
		return nil, rpgerr.InvalidArgumentf("max players must be at least %d", MinPlayers).
			WithMeta("max_players", maxPlayers)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.playerSessions[host.Name]; ok {
		return nil, rpgerr.AlreadyExistsf("%s is already in session %s", host.Name, existing)
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	session := &entities.GameSession{
		ID:         id,
		Host:       host.Name,
		Players:    []*entities.Character{host.Clone()},
		MaxPlayers: maxPlayers,
		Status:     entities.SessionStatusWaiting,
		CreatedAt:  s.clock.Now(),
	}
	s.sessions[id] = session
	s.playerSessions[host.Name] = id

	log.Printf("MultiplayerService: %s opened session %s for %d players", host.Name, id, maxPlayers)
	events.Notify(s.publisher, events.NewSessionEvent(events.EventTypeSessionCreated, session, host.Name))

	return session.Clone(), nil
}

func (s *service) newID() (string, error) {
	for range maxIDAttempts {
		id := s.ids.New()
		if _, taken := s.sessions[id]; !taken {
			return id, nil
		}
	}
	return "", rpgerr.Internal("could not allocate a unique session id")
}

func (s *service) JoinSession(ctx context.Context, sessionID string, player *entities.Character) (*entities.GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if player == nil || player.Name == "" {
		return nil, rpgerr.InvalidArgument("player is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsFull() {
		return nil, rpgerr.ResourceExhausted("session is full").
			WithMeta("session_id", sessionID).
			WithMeta("max_players", session.MaxPlayers)
	}
	if session.Status != entities.SessionStatusWaiting {
		return nil, rpgerr.FailedPreconditionf("session %s is %s", sessionID, session.Status)
	}
	if existing, ok := s.playerSessions[player.Name]; ok {
		return nil, rpgerr.AlreadyExistsf("%s is already in session %s", player.Name, existing)
	}

	session.Players = append(session.Players, player.Clone())
	s.playerSessions[player.Name] = sessionID

	log.Printf("MultiplayerService: %s joined session %s (%d/%d)", player.Name, sessionID, len(session.Players), session.MaxPlayers)
	events.Notify(s.publisher, events.NewSessionEvent(events.EventTypePlayerJoined, session, player.Name))

	return session.Clone(), nil
}

func (s *service) LeaveSession(ctx context.Context, playerName string) (*entities.GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID, ok := s.playerSessions[playerName]
	if !ok {
		return nil, rpgerr.NotFoundf("%s is not in a session", playerName)
	}
	delete(s.playerSessions, playerName)

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, rpgerr.Internalf("player index points at missing session %s", sessionID)
	}
	session.RemovePlayer(playerName)
	events.Notify(s.publisher, events.NewSessionEvent(events.EventTypePlayerLeft, session, playerName))

	if len(session.Players) == 0 {
		delete(s.sessions, sessionID)
		log.Printf("MultiplayerService: session %s closed after %s left", sessionID, playerName)
		events.Notify(s.publisher, events.NewSessionEvent(events.EventTypeSessionClosed, session, playerName))
		return nil, nil
	}

	log.Printf("MultiplayerService: %s left session %s, host is %s", playerName, sessionID, session.Host)
	return session.Clone(), nil
}

func (s *service) StartSession(ctx context.Context, sessionID string) (*entities.GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != entities.SessionStatusWaiting {
		return nil, rpgerr.FailedPreconditionf("session %s is %s", sessionID, session.Status)
	}
	if len(session.Players) < MinPlayers {
		return nil, rpgerr.FailedPreconditionf("session needs at least %d players to start", MinPlayers).
			WithMeta("players", len(session.Players))
	}

	session.Status = entities.SessionStatusInProgress

	log.Printf("MultiplayerService: session %s started with %v", sessionID, session.PlayerNames())
	events.Notify(s.publisher, events.NewSessionEvent(events.EventTypeSessionStarted, session, session.Host))

	return session.Clone(), nil
}

func (s *service) GenerateQuest(ctx context.Context, sessionID string) (*entities.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	q, err := s.quests.GenerateTeam(ctx, session.Players)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to generate quest for session %s", sessionID)
	}
	session.CurrentQuest = q

	return q.Clone(), nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*entities.GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Clone(), nil
}

func (s *service) GetPlayerSession(ctx context.Context, playerName string) (*entities.GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID, ok := s.playerSessions[playerName]
	if !ok {
		return nil, rpgerr.NotFoundf("%s is not in a session", playerName)
	}
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Clone(), nil
}

func (s *service) ListWaitingSessions(ctx context.Context) ([]*SessionListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listings := make([]*SessionListing, 0, len(s.sessions))
	for _, session := range s.sessions {
		if session.Status != entities.SessionStatusWaiting {
			continue
		}
		listings = append(listings, &SessionListing{
			SessionID:  session.ID,
			Host:       session.Host,
			Players:    len(session.Players),
			MaxPlayers: session.MaxPlayers,
			CreatedAt:  session.CreatedAt,
		})
	}

	slices.SortFunc(listings, func(a, b *SessionListing) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.SessionID, b.SessionID)
	})

	return listings, nil
}

func (s *service) AppendStoryEvent(ctx context.Context, sessionID string, event entities.StoryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	session.StoryContext = append(session.StoryContext, event)
	return nil
}

func (s *service) UpdatePlayer(ctx context.Context, sessionID string, player *entities.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if player == nil {
		return rpgerr.InvalidArgument("player is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	for i, p := range session.Players {
		if p.Name == player.Name {
			session.Players[i] = player.Clone()
			return nil
		}
	}
	return rpgerr.NotFoundf("%s is not in session %s", player.Name, sessionID)
}

func (s *service) CreateTeamCombat(ctx context.Context, sessionID string, enemy *entities.Creature) (*entities.TeamCombatSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != entities.SessionStatusInProgress {
		return nil, rpgerr.FailedPreconditionf("session %s has not started", sessionID)
	}

	fight, err := s.combat.StartTeam(session.Players, enemy)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to start team combat for session %s", sessionID)
	}
	return fight, nil
}

func (s *service) GetSessionStats(ctx context.Context, sessionID string) (*SessionStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	stats := &SessionStats{
		SessionID:    session.ID,
		NumPlayers:   len(session.Players),
		AverageLevel: session.AverageLevel(),
		Duration:     session.Age(s.clock.Now()),
		Players:      make([]PlayerSummary, 0, len(session.Players)),
	}
	for _, p := range session.Players {
		stats.TotalLevel += p.Level
		stats.TotalGold += p.Gold
		stats.Players = append(stats.Players, PlayerSummary{Name: p.Name, Class: p.Class, Level: p.Level})
	}
	for _, e := range session.StoryContext {
		if e.Type == entities.StoryEventQuestCompleted {
			stats.QuestsCompleted++
		}
	}

	return stats, nil
}

func (s *service) CleanupExpiredSessions(ctx context.Context, maxAge time.Duration) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	expired := 0
	for id, session := range s.sessions {
		if session.Age(now) <= maxAge {
			continue
		}
		for _, p := range session.Players {
			delete(s.playerSessions, p.Name)
		}
		delete(s.sessions, id)
		expired++
	}

	if expired > 0 {
		log.Printf("MultiplayerService: removed %d expired sessions", expired)
		event := events.NewSessionEvent(events.EventTypeSessionsExpired, nil, "")
		event.Players = expired
		events.Notify(s.publisher, event)
	}

	return expired, nil
}

func (s *service) lookup(sessionID string) (*entities.GameSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, rpgerr.NotFoundf("session %s not found", sessionID)
	}
	return session, nil
}
