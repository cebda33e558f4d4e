package multiplayer_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/clock/mocks"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/events"
	mockcombat "github.com/Darkkkking/ai-rpg-adventure/internal/services/combat/mock"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/multiplayer"
	mockquest "github.com/Darkkkking/ai-rpg-adventure/internal/services/quest/mock"
	"github.com/Darkkkking/ai-rpg-adventure/internal/uuid"
	mockuuid "github.com/Darkkkking/ai-rpg-adventure/internal/uuid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

type MultiplayerServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	quests  *mockquest.MockService
	combat  *mockcombat.MockService
	clock   *mocks.MockTimeProvider
	bus     *events.Bus
	service multiplayer.Service

	ctx   context.Context
	now   time.Time
	seen  []events.EventType
	idSeq int
}

func (s *MultiplayerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.quests = mockquest.NewMockService(s.ctrl)
	s.combat = mockcombat.NewMockService(s.ctrl)
	s.clock = mocks.NewMockTimeProvider(s.ctrl)
	s.bus = events.NewBus()
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.seen = nil
	s.idSeq = 0

	s.clock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	source := mockuuid.NewMockGenerator(s.ctrl)
	source.EXPECT().New().DoAndReturn(func() string {
		s.idSeq++
		return fmt.Sprintf("%08x-aaaa-bbbb-cccc-dddddddddddd", s.idSeq)
	}).AnyTimes()

	for _, t := range []events.EventType{
		events.EventTypeSessionCreated,
		events.EventTypePlayerJoined,
		events.EventTypePlayerLeft,
		events.EventTypeSessionStarted,
		events.EventTypeSessionClosed,
		events.EventTypeSessionsExpired,
	} {
		s.bus.Subscribe(t, events.NewListenerFunc("recorder", 1, func(e events.Event) error {
			s.seen = append(s.seen, e.GetType())
			return nil
		}))
	}

	var err error
	s.service, err = multiplayer.NewService(&multiplayer.ServiceConfig{
		Quests:    s.quests,
		Combat:    s.combat,
		Clock:     s.clock,
		IDs:       uuid.NewSessionIDGenerator(source),
		Publisher: s.bus,
	})
	s.Require().NoError(err)
}

func (s *MultiplayerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMultiplayerServiceSuite(t *testing.T) {
	suite.Run(t, new(MultiplayerServiceTestSuite))
}

func player(name string, level, agility int) *entities.Character {
	return &entities.Character{
		Name:      name,
		Class:     entities.ClassHunter,
		Level:     level,
		Stats:     entities.Stats{Agility: agility},
		Gold:      100,
		Inventory: entities.NewInventory(),
	}
}

func (s *MultiplayerServiceTestSuite) open(host string, maxPlayers int) *entities.GameSession {
	session, err := s.service.CreateSession(s.ctx, player(host, 1, 10), maxPlayers)
	s.Require().NoError(err)
	return session
}

func (s *MultiplayerServiceTestSuite) TestCreateSession() {
	session := s.open("Ayla", 3)

	s.Equal("00000001", session.ID)
	s.Equal("Ayla", session.Host)
	s.Equal([]string{"Ayla"}, session.PlayerNames())
	s.Equal(entities.SessionStatusWaiting, session.Status)
	s.Equal(s.now, session.CreatedAt)
	s.Equal([]events.EventType{events.EventTypeSessionCreated}, s.seen)

	_, err := s.service.CreateSession(s.ctx, player("Ayla", 1, 10), 4)
	s.True(rpgerr.IsAlreadyExists(err))

	_, err = s.service.CreateSession(s.ctx, player("Bram", 1, 10), 1)
	s.True(rpgerr.IsInvalidArgument(err))

	_, err = s.service.CreateSession(s.ctx, nil, 4)
	s.True(rpgerr.IsInvalidArgument(err))
}

func (s *MultiplayerServiceTestSuite) TestCreateSession_KeepsOwnCopyOfHost() {
	host := player("Ayla", 1, 10)
	session, err := s.service.CreateSession(s.ctx, host, 2)
	s.Require().NoError(err)

	host.Level = 9
	session.Players[0].Gold = 0

	stored, err := s.service.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(1, stored.Players[0].Level)
	s.Equal(100, stored.Players[0].Gold)
}

func (s *MultiplayerServiceTestSuite) TestJoinSession_FullRosterRejected() {
	session := s.open("Ayla", 2)

	joined, err := s.service.JoinSession(s.ctx, session.ID, player("Bram", 1, 10))
	s.Require().NoError(err)
	s.Equal([]string{"Ayla", "Bram"}, joined.PlayerNames())

	_, err = s.service.JoinSession(s.ctx, session.ID, player("Cato", 1, 10))
	s.True(rpgerr.IsResourceExhausted(err))

	stored, err := s.service.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Ayla", "Bram"}, stored.PlayerNames())

	_, err = s.service.GetPlayerSession(s.ctx, "Cato")
	s.True(rpgerr.IsNotFound(err))
}

func (s *MultiplayerServiceTestSuite) TestJoinSession_Rejections() {
	session := s.open("Ayla", 4)
	other := s.open("Dara", 4)

	_, err := s.service.JoinSession(s.ctx, "NOPE", player("Bram", 1, 10))
	s.True(rpgerr.IsNotFound(err))

	_, err = s.service.JoinSession(s.ctx, session.ID, player("Dara", 1, 10))
	s.True(rpgerr.IsAlreadyExists(err))

	_, err = s.service.JoinSession(s.ctx, other.ID, player("Bram", 1, 10))
	s.Require().NoError(err)
	_, err = s.service.StartSession(s.ctx, other.ID)
	s.Require().NoError(err)

	_, err = s.service.JoinSession(s.ctx, other.ID, player("Cato", 1, 10))
	s.True(rpgerr.IsFailedPrecondition(err))
}

func (s *MultiplayerServiceTestSuite) TestLeaveSession_SoleLeaverDeletesSession() {
	session := s.open("Ayla", 2)

	left, err := s.service.LeaveSession(s.ctx, "Ayla")
	s.Require().NoError(err)
	s.Nil(left)

	_, err = s.service.GetSession(s.ctx, session.ID)
	s.True(rpgerr.IsNotFound(err))

	_, err = s.service.LeaveSession(s.ctx, "Ayla")
	s.True(rpgerr.IsNotFound(err))

	s.Equal([]events.EventType{
		events.EventTypeSessionCreated,
		events.EventTypePlayerLeft,
		events.EventTypeSessionClosed,
	}, s.seen)

	// The player is free to host again
	s.open("Ayla", 2)
}

func (s *MultiplayerServiceTestSuite) TestLeaveSession_HostReassigned() {
	session := s.open("Ayla", 4)
	_, err := s.service.JoinSession(s.ctx, session.ID, player("Bram", 1, 10))
	s.Require().NoError(err)
	_, err = s.service.JoinSession(s.ctx, session.ID, player("Cato", 1, 10))
	s.Require().NoError(err)

	left, err := s.service.LeaveSession(s.ctx, "Ayla")
	s.Require().NoError(err)
	s.Equal("Bram", left.Host)
	s.Equal([]string{"Bram", "Cato"}, left.PlayerNames())

	left, err = s.service.LeaveSession(s.ctx, "Cato")
	s.Require().NoError(err)
	s.Equal("Bram", left.Host)
}

func (s *MultiplayerServiceTestSuite) TestStartSession() {
	session := s.open("Ayla", 4)

	_, err := s.service.StartSession(s.ctx, session.ID)
	s.True(rpgerr.IsFailedPrecondition(err), "needs a second player")

	_, err = s.service.JoinSession(s.ctx, session.ID, player("Bram", 1, 10))
	s.Require().NoError(err)

	started, err := s.service.StartSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(entities.SessionStatusInProgress, started.Status)

	_, err = s.service.StartSession(s.ctx, session.ID)
	s.True(rpgerr.IsFailedPrecondition(err))

	_, err = s.service.StartSession(s.ctx, "NOPE")
	s.True(rpgerr.IsNotFound(err))
}

func (s *MultiplayerServiceTestSuite) TestGenerateQuest_StoresCurrentQuest() {
	session := s.open("Ayla", 4)
	_, err := s.service.JoinSession(s.ctx, session.ID, player("Bram", 3, 10))
	s.Require().NoError(err)

	want := &entities.Quest{Title: "Raid the Dire Wolf Den", Multiplayer: true, RequiredPlayers: 2}
	s.quests.EXPECT().GenerateTeam(gomock.Any(), gomock.Len(2)).Return(want, nil)

	q, err := s.service.GenerateQuest(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal("Raid the Dire Wolf Den", q.Title)

	stored, err := s.service.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.CurrentQuest)
	s.Equal("Raid the Dire Wolf Den", stored.CurrentQuest.Title)

	s.quests.EXPECT().GenerateTeam(gomock.Any(), gomock.Any()).Return(nil, rpgerr.Internal("boom"))
	_, err = s.service.GenerateQuest(s.ctx, session.ID)
	s.True(rpgerr.IsInternal(err))
}

func (s *MultiplayerServiceTestSuite) TestCreateTeamCombat() {
	session := s.open("Ayla", 4)
	wolf := &entities.Creature{Name: "Dire Wolf", MaxHP: 100, CurrentHP: 100}

	_, err := s.service.CreateTeamCombat(s.ctx, session.ID, wolf)
	s.True(rpgerr.IsFailedPrecondition(err))

	_, err = s.service.JoinSession(s.ctx, session.ID, player("Bram", 1, 14))
	s.Require().NoError(err)
	_, err = s.service.StartSession(s.ctx, session.ID)
	s.Require().NoError(err)

	fight := &entities.TeamCombatSession{TurnOrder: []string{"Bram", entities.EnemyActor, "Ayla", entities.EnemyActor}}
	s.combat.EXPECT().StartTeam(gomock.Len(2), wolf).Return(fight, nil)

	got, err := s.service.CreateTeamCombat(s.ctx, session.ID, wolf)
	s.Require().NoError(err)
	s.Equal(fight.TurnOrder, got.TurnOrder)
}

func (s *MultiplayerServiceTestSuite) TestUpdatePlayer() {
	session := s.open("Ayla", 4)

	leveled := player("Ayla", 2, 12)
	leveled.Gold = 250
	s.Require().NoError(s.service.UpdatePlayer(s.ctx, session.ID, leveled))

	stored, err := s.service.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(2, stored.Players[0].Level)
	s.Equal(250, stored.Players[0].Gold)

	err = s.service.UpdatePlayer(s.ctx, session.ID, player("Stranger", 1, 1))
	s.True(rpgerr.IsNotFound(err))
}

func (s *MultiplayerServiceTestSuite) TestGetSessionStats() {
	session := s.open("Ayla", 4)
	bram := player("Bram", 3, 10)
	bram.Gold = 40
	_, err := s.service.JoinSession(s.ctx, session.ID, bram)
	s.Require().NoError(err)

	s.Require().NoError(s.service.AppendStoryEvent(s.ctx, session.ID, entities.StoryEvent{Type: entities.StoryEventQuestCompleted, Creature: "Dire Wolf"}))
	s.Require().NoError(s.service.AppendStoryEvent(s.ctx, session.ID, entities.StoryEvent{Type: entities.StoryEventNote, Text: "camped"}))
	s.Require().NoError(s.service.AppendStoryEvent(s.ctx, session.ID, entities.StoryEvent{Type: entities.StoryEventQuestCompleted, Creature: "Cave Bear"}))

	s.now = s.now.Add(90 * time.Minute)

	stats, err := s.service.GetSessionStats(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, stats.SessionID)
	s.Equal(2, stats.NumPlayers)
	s.Equal(4, stats.TotalLevel)
	s.InDelta(2.0, stats.AverageLevel, 1e-9)
	s.Equal(140, stats.TotalGold)
	s.Equal(2, stats.QuestsCompleted)
	s.Equal(90*time.Minute, stats.Duration)
	s.Equal([]multiplayer.PlayerSummary{
		{Name: "Ayla", Class: entities.ClassHunter, Level: 1},
		{Name: "Bram", Class: entities.ClassHunter, Level: 3},
	}, stats.Players)

	_, err = s.service.GetSessionStats(s.ctx, "NOPE")
	s.True(rpgerr.IsNotFound(err))
}

func (s *MultiplayerServiceTestSuite) TestListWaitingSessions() {
	first := s.open("Ayla", 4)
	s.now = s.now.Add(time.Minute)
	second := s.open("Bram", 3)
	s.now = s.now.Add(time.Minute)
	started := s.open("Cato", 2)

	_, err := s.service.JoinSession(s.ctx, started.ID, player("Dara", 1, 10))
	s.Require().NoError(err)
	_, err = s.service.StartSession(s.ctx, started.ID)
	s.Require().NoError(err)

	listings, err := s.service.ListWaitingSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listings, 2)
	s.Equal(first.ID, listings[0].SessionID)
	s.Equal("Ayla", listings[0].Host)
	s.Equal(1, listings[0].Players)
	s.Equal(4, listings[0].MaxPlayers)
	s.Equal(second.ID, listings[1].SessionID)
}

func (s *MultiplayerServiceTestSuite) TestCleanupExpiredSessions() {
	old := s.open("Ayla", 4)
	_, err := s.service.JoinSession(s.ctx, old.ID, player("Bram", 1, 10))
	s.Require().NoError(err)

	s.now = s.now.Add(20 * time.Hour)
	fresh := s.open("Cato", 4)

	s.now = s.now.Add(5 * time.Hour)

	removed, err := s.service.CleanupExpiredSessions(s.ctx, multiplayer.DefaultMaxAge)
	s.Require().NoError(err)
	s.Equal(1, removed)

	_, err = s.service.GetSession(s.ctx, old.ID)
	s.True(rpgerr.IsNotFound(err))
	_, err = s.service.GetSession(s.ctx, fresh.ID)
	s.NoError(err)

	// Expired players are released
	_, err = s.service.GetPlayerSession(s.ctx, "Bram")
	s.True(rpgerr.IsNotFound(err))
	_, err = s.service.JoinSession(s.ctx, fresh.ID, player("Bram", 1, 10))
	s.NoError(err)

	s.Contains(s.seen, events.EventTypeSessionsExpired)

	removed, err = s.service.CleanupExpiredSessions(s.ctx, multiplayer.DefaultMaxAge)
	s.Require().NoError(err)
	s.Zero(removed)
}

func TestNewService_RequiresCollaborators(t *testing.T) {
	_, err := multiplayer.NewService(nil)
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = multiplayer.NewService(&multiplayer.ServiceConfig{Quests: mockquest.NewMockService(ctrl)})
	assert.Error(t, err)
}

func TestJoinSession_ConcurrentJoinsNeverOverfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := multiplayer.NewService(&multiplayer.ServiceConfig{
		Quests: mockquest.NewMockService(ctrl),
		Combat: mockcombat.NewMockService(ctrl),
	})
	require.NoError(t, err)

	ctx := context.Background()
	session, err := svc.CreateSession(ctx, player("Host", 1, 10), 5)
	require.NoError(t, err)

	var joined, full atomic.Int32
	var g errgroup.Group
	for i := range 20 {
		g.Go(func() error {
			_, err := svc.JoinSession(ctx, session.ID, player(fmt.Sprintf("P%02d", i), 1, 10))
			switch {
			case err == nil:
				joined.Add(1)
			case rpgerr.IsResourceExhausted(err):
				full.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(4), joined.Load())
	assert.Equal(t, int32(16), full.Load())

	stored, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Players, 5)
}

func TestCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := multiplayer.NewService(&multiplayer.ServiceConfig{
		Quests: mockquest.NewMockService(ctrl),
		Combat: mockcombat.NewMockService(ctrl),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.CreateSession(ctx, player("Host", 1, 10), 4)
	assert.ErrorIs(t, err, context.Canceled)
}
