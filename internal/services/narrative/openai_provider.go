package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Darkkkking/ai-rpg-adventure/internal/catalog"
	"github.com/Darkkkking/ai-rpg-adventure/internal/clients/openai"
	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
)

// Token limits per prompt kind
const (
	enhanceMaxTokens    = 500
	completionMaxTokens = 400
	encounterMaxTokens  = 200
	plotMaxTokens       = 150
)

type openAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider builds a Provider on top of a chat completions client
func NewOpenAIProvider(client openai.Client) Provider {
	if client == nil {
		panic("openai client is required")
	}
	return &openAIProvider{client: client}
}

func (p *openAIProvider) chat(ctx context.Context, system, prompt string, maxTokens int, asJSON bool) (string, error) {
	return p.client.Complete(ctx, &openai.ChatRequest{
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: system},
			{Role: openai.RoleUser, Content: prompt},
		},
		MaxTokens: maxTokens,
		JSON:      asJSON,
	})
}

func (p *openAIProvider) EnhanceQuest(ctx context.Context, quest *entities.Quest, player *entities.Character, storyContext []entities.StoryEvent) (*entities.QuestNarrative, error) {
	creature := ""
	if quest.Creature != nil {
		creature = quest.Creature.Name
	}

	prompt := fmt.Sprintf(`Expand this Monster Hunters Guild contract into a richer quest.

Hunter: %s, level %d %s
Quest: %s
Target: %s
Location: %s
Quest giver: %s
Story so far: %s

Respond with a JSON object containing the string fields
"enhanced_description" (a livelier quest description),
"backstory" (why the creature has appeared now),
"atmospheric_details" (the mood of the location and encounter) and
"stakes" (why this matters to the kingdom).`,
		player.Name, player.Level, catalog.DisplayName(string(player.Class)),
		quest.Title, creature, quest.Location, quest.Giver, ContextSummary(storyContext))

	raw, err := p.chat(ctx, "You write quests for a monster hunting role-playing game.", prompt, enhanceMaxTokens, true)
	if err != nil {
		return nil, err
	}

	var enhancement entities.QuestNarrative
	if err := json.Unmarshal([]byte(raw), &enhancement); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "enhancement was not valid JSON")
	}

	return &enhancement, nil
}

func (p *openAIProvider) CompletionStory(ctx context.Context, player *entities.Character, quest *entities.Quest, storyContext []entities.StoryEvent) (string, error) {
	creature := "creature"
	if quest.Creature != nil {
		creature = quest.Creature.Name
	}

	prompt := fmt.Sprintf(`Tell how %s the %s defeated the %s %s, a contract given by %s.
Story so far: %s

Write two or three heroic paragraphs covering the final clash, how the hunter's
class skills won the day, what the victory means for the people, and a hint of
why the ancient creatures keep coming back.`,
		player.Name, catalog.DisplayName(string(player.Class)), creature, quest.Location, quest.Giver,
		ContextSummary(storyContext))

	return p.chat(ctx, "You are a storyteller of epic fantasy.", prompt, completionMaxTokens, false)
}

func (p *openAIProvider) EncounterStory(ctx context.Context, player *entities.Character, location string) (string, error) {
	class := catalog.DisplayName(string(player.Class))
	prompt := fmt.Sprintf(`Describe %s the %s arriving %s in a world where long extinct creatures have returned.
Mention the atmosphere, signs of a great beast nearby and what a %s would notice.
Keep it to one or two mysterious paragraphs.`, player.Name, class, location, class)

	return p.chat(ctx, "You write atmospheric scene descriptions for a role-playing game.", prompt, encounterMaxTokens, false)
}

func (p *openAIProvider) PlotDevelopment(ctx context.Context, storyContext []entities.StoryEvent) (string, error) {
	prompt := fmt.Sprintf(`The hunter's adventures so far: %s

In two or three dramatic sentences reveal a new clue about why extinct creatures
are returning to threaten the kingdom. Connect the recent hunts and leave room
for future adventures.`, ContextSummary(storyContext))

	return p.chat(ctx, "You are plotting a long running role-playing campaign.", prompt, plotMaxTokens, false)
}
