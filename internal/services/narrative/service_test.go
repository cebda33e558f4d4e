package narrative_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/narrative"
	mocknarrative "github.com/Darkkkking/ai-rpg-adventure/internal/services/narrative/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NarrativeServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *mocknarrative.MockProvider
	roller   *dice.MockRoller
	service  narrative.Service

	player *entities.Character
	quest  *entities.Quest
}

func (s *NarrativeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = mocknarrative.NewMockProvider(s.ctrl)
	s.roller = dice.NewMockRoller()
	s.service = narrative.NewService(&narrative.ServiceConfig{
		Provider: s.provider,
		Roller:   s.roller,
		Timeout:  time.Second,
	})

	s.player = &entities.Character{Name: "Rin", Class: entities.ClassMagician, Level: 2}
	s.quest = &entities.Quest{
		Title:    "Hunt the Dire Wolf",
		Location: "by the Mystic Lake",
		Creature: &entities.Creature{Name: "Dire Wolf"},
	}
}

func (s *NarrativeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNarrativeServiceSuite(t *testing.T) {
	suite.Run(t, new(NarrativeServiceTestSuite))
}

func completed(n int) []entities.StoryEvent {
	var story []entities.StoryEvent
	for i := 0; i < n; i++ {
		story = append(story, entities.StoryEvent{Type: entities.StoryEventQuestCompleted, Creature: "Dire Wolf", Location: "at the Crossroads"})
	}
	return story
}

func (s *NarrativeServiceTestSuite) TestEnhanceQuest_ProviderSuccess() {
	want := &entities.QuestNarrative{Backstory: "The lake froze in summer."}
	s.provider.EXPECT().EnhanceQuest(gomock.Any(), s.quest, s.player, gomock.Nil()).Return(want, nil)

	got := s.service.EnhanceQuest(context.Background(), s.quest, s.player, nil)
	s.Equal(want, got)
}

func (s *NarrativeServiceTestSuite) TestEnhanceQuest_FailureAndEmptyBecomeNil() {
	s.provider.EXPECT().EnhanceQuest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	s.Nil(s.service.EnhanceQuest(context.Background(), s.quest, s.player, nil))

	s.provider.EXPECT().EnhanceQuest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&entities.QuestNarrative{Stakes: "  "}, nil)
	s.Nil(s.service.EnhanceQuest(context.Background(), s.quest, s.player, nil))
}

func (s *NarrativeServiceTestSuite) TestEnhanceQuest_CallRunsUnderDeadline() {
	s.provider.EXPECT().EnhanceQuest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *entities.Quest, _ *entities.Character, _ []entities.StoryEvent) (*entities.QuestNarrative, error) {
			_, ok := ctx.Deadline()
			s.True(ok)
			return nil, nil
		})

	s.Nil(s.service.EnhanceQuest(context.Background(), s.quest, s.player, nil))
}

func (s *NarrativeServiceTestSuite) TestCompletionStory_FallbackOnFailure() {
	s.provider.EXPECT().CompletionStory(gomock.Any(), s.player, s.quest, gomock.Any()).Return("", errors.New("rate limited"))
	s.roller.SetNextRoll(2)

	story := s.service.CompletionStory(context.Background(), s.player, s.quest, nil)
	s.Contains(story, "Rin")
	s.Contains(story, "Dire Wolf")
	s.Contains(story, "by the Mystic Lake")
	s.Contains(story, "Magician training")
}

func (s *NarrativeServiceTestSuite) TestCompletionStory_ProviderText() {
	s.provider.EXPECT().CompletionStory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("A saga.", nil)
	s.Equal("A saga.", s.service.CompletionStory(context.Background(), s.player, s.quest, nil))
}

func (s *NarrativeServiceTestSuite) TestEncounterStory_FallbackNamesLocation() {
	s.provider.EXPECT().EncounterStory(gomock.Any(), s.player, "in the Dark Caverns").Return("", errors.New("down"))
	s.roller.SetNextRoll(1)

	story := s.service.EncounterStory(context.Background(), s.player, "in the Dark Caverns")
	s.Contains(story, "in the Dark Caverns")
	s.Contains(story, "ancient presence")
}

func (s *NarrativeServiceTestSuite) TestPlotDevelopment() {
	s.Run("needs three completed quests", func() {
		story := append(completed(2), entities.StoryEvent{Type: entities.StoryEventQuestFailed}, entities.StoryEvent{Type: entities.StoryEventNote})
		s.Empty(s.service.PlotDevelopment(context.Background(), story))
	})

	s.Run("provider text once unlocked", func() {
		s.provider.EXPECT().PlotDevelopment(gomock.Any(), gomock.Len(3)).Return("A cult wakes the dead.", nil)
		s.Equal("A cult wakes the dead.", s.service.PlotDevelopment(context.Background(), completed(3)))
	})

	s.Run("failure is empty", func() {
		s.provider.EXPECT().PlotDevelopment(gomock.Any(), gomock.Any()).Return("", errors.New("down"))
		s.Empty(s.service.PlotDevelopment(context.Background(), completed(4)))
	})
}

func TestFallbackOnly_NoProvider(t *testing.T) {
	roller := dice.NewMockRoller()
	svc := narrative.NewService(&narrative.ServiceConfig{Roller: roller})
	player := &entities.Character{Name: "Ayla", Class: entities.ClassSniper}
	quest := &entities.Quest{Location: "at the Crossroads", Creature: &entities.Creature{Name: "Cave Bear"}}

	assert.Nil(t, svc.EnhanceQuest(context.Background(), quest, player, nil))
	assert.Empty(t, svc.PlotDevelopment(context.Background(), completed(5)))

	roller.SetNextRoll(3)
	story := svc.CompletionStory(context.Background(), player, quest, nil)
	assert.Contains(t, story, "Cave Bear")
	assert.Contains(t, story, "Ayla")

	// An exhausted roller still yields the first template
	story = svc.EncounterStory(context.Background(), player, "at the Crossroads")
	assert.Contains(t, story, "ancient presence")
}

func TestContextSummary(t *testing.T) {
	assert.Equal(t, "This is the player's first adventure.", narrative.ContextSummary(nil))
	assert.Equal(t, "The player is just beginning their journey as a Monster Hunter.",
		narrative.ContextSummary([]entities.StoryEvent{{Type: entities.StoryEventQuestFailed}}))

	story := []entities.StoryEvent{
		{Type: entities.StoryEventQuestCompleted, Creature: "Dire Wolf", Location: "at the Crossroads"},
		{Type: entities.StoryEventQuestCompleted, Creature: "Cave Bear", Location: "in the Dark Caverns"},
		{Type: entities.StoryEventNote, Text: "rested"},
		{Type: entities.StoryEventQuestCompleted, Creature: "Terror Bird", Location: "by the River Bend"},
		{Type: entities.StoryEventQuestCompleted},
	}
	assert.Equal(t,
		"Previous adventures: Defeated Cave Bear in the Dark Caverns; Defeated Terror Bird by the River Bend; Defeated unknown creature unknown location",
		narrative.ContextSummary(story))
}
