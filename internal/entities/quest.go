package entities

import "strings"

// QuestType identifies the template a quest was built from
type QuestType string

const (
	QuestTypeHunt        QuestType = "hunt"
	QuestTypeProtect     QuestType = "protect"
	QuestTypeInvestigate QuestType = "investigate"
	QuestTypeUrgent      QuestType = "urgent"
	QuestTypeRaid        QuestType = "raid"
	QuestTypeSiege       QuestType = "siege"
	QuestTypeRescue      QuestType = "rescue"
	QuestTypeDefense     QuestType = "defense"
)

// Rewards is the bundle credited when a quest is completed
type Rewards struct {
	Gold       int      `json:"gold"`
	Experience int      `json:"experience"`
	Items      []string `json:"items"`
}

// QuestNarrative holds optional flavour text from the narrative enhancer
type QuestNarrative struct {
	EnhancedDescription string `json:"enhanced_description,omitempty"`
	Backstory           string `json:"backstory,omitempty"`
	AtmosphericDetails  string `json:"atmospheric_details,omitempty"`
	Stakes              string `json:"stakes,omitempty"`
}

// IsEmpty reports whether no narrative field is set
func (n *QuestNarrative) IsEmpty() bool {
	return n == nil || (strings.TrimSpace(n.EnhancedDescription) == "" &&
		strings.TrimSpace(n.Backstory) == "" &&
		strings.TrimSpace(n.AtmosphericDetails) == "" &&
		strings.TrimSpace(n.Stakes) == "")
}

// Quest is a generated contract against a single creature
type Quest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Type            QuestType       `json:"type"`
	Giver           string          `json:"giver"`
	Creature        *Creature       `json:"creature"`
	Location        string          `json:"location"`
	Difficulty      Difficulty      `json:"difficulty"`
	Rewards         Rewards         `json:"rewards"`
	Multiplayer     bool            `json:"multiplayer,omitempty"`
	RequiredPlayers int             `json:"required_players,omitempty"`
	Narrative       *QuestNarrative `json:"narrative,omitempty"`
}

// MergeNarrative adds non-empty narrative fields. Existing text and the
// numeric reward fields are never touched.
func (q *Quest) MergeNarrative(n *QuestNarrative) {
	if n.IsEmpty() {
		return
	}
	if q.Narrative == nil {
		q.Narrative = &QuestNarrative{}
	}

	mergeText(&q.Narrative.EnhancedDescription, n.EnhancedDescription)
	mergeText(&q.Narrative.Backstory, n.Backstory)
	mergeText(&q.Narrative.AtmosphericDetails, n.AtmosphericDetails)
	mergeText(&q.Narrative.Stakes, n.Stakes)
}

func mergeText(dst *string, src string) {
	if strings.TrimSpace(*dst) == "" && strings.TrimSpace(src) != "" {
		*dst = src
	}
}

// Clone returns a deep copy
func (q *Quest) Clone() *Quest {
	if q == nil {
		return nil
	}
	clone := *q
	clone.Creature = q.Creature.Clone()
	clone.Rewards.Items = append([]string(nil), q.Rewards.Items...)
	if q.Narrative != nil {
		narrative := *q.Narrative
		clone.Narrative = &narrative
	}
	return &clone
}
