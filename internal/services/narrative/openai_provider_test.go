package narrative_test

import (
	"context"
	"testing"

	"github.com/Darkkkking/ai-rpg-adventure/internal/clients/openai"
	mockopenai "github.com/Darkkkking/ai-rpg-adventure/internal/clients/openai/mock"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	"github.com/Darkkkking/ai-rpg-adventure/internal/services/narrative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOpenAIProvider_EnhanceQuestParsesJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockopenai.NewMockClient(ctrl)
	provider := narrative.NewOpenAIProvider(client)

	player := &entities.Character{Name: "Rin", Class: entities.ClassMagician, Level: 3}
	quest := &entities.Quest{Title: "Hunt the Cave Bear", Location: "in the Dark Caverns", Giver: "Elder Sarah, Village Elder", Creature: &entities.Creature{Name: "Cave Bear"}}

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *openai.ChatRequest) (string, error) {
		assert.True(t, req.JSON)
		assert.Equal(t, 500, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.RoleSystem, req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "Cave Bear")
		assert.Contains(t, req.Messages[1].Content, "This is the player's first adventure.")
		return `{"enhanced_description":"Bones litter the cave.","stakes":"The miners are trapped."}`, nil
	})

	got, err := provider.EnhanceQuest(context.Background(), quest, player, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bones litter the cave.", got.EnhancedDescription)
	assert.Equal(t, "The miners are trapped.", got.Stakes)
	assert.Empty(t, got.Backstory)
}

func TestOpenAIProvider_MalformedEnhancement(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockopenai.NewMockClient(ctrl)
	provider := narrative.NewOpenAIProvider(client)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("once upon a time", nil)

	_, err := provider.EnhanceQuest(context.Background(),
		&entities.Quest{Creature: &entities.Creature{Name: "Dire Wolf"}},
		&entities.Character{Name: "Rin", Class: entities.ClassMagician}, nil)
	assert.Equal(t, rpgerr.CodeUnavailable, rpgerr.GetCode(err))
}

func TestOpenAIProvider_TokenBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockopenai.NewMockClient(ctrl)
	provider := narrative.NewOpenAIProvider(client)
	player := &entities.Character{Name: "Rin", Class: entities.ClassMagician}

	budget := func(want int) func(context.Context, *openai.ChatRequest) (string, error) {
		return func(_ context.Context, req *openai.ChatRequest) (string, error) {
			assert.Equal(t, want, req.MaxTokens)
			assert.False(t, req.JSON)
			return "text", nil
		}
	}

	gomock.InOrder(
		client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(budget(400)),
		client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(budget(200)),
		client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(budget(150)),
	)

	_, err := provider.CompletionStory(context.Background(), player, &entities.Quest{Location: "at the Crossroads"}, nil)
	require.NoError(t, err)
	_, err = provider.EncounterStory(context.Background(), player, "at the Crossroads")
	require.NoError(t, err)
	_, err = provider.PlotDevelopment(context.Background(), nil)
	require.NoError(t, err)
}
