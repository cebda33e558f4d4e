package catalog

import (
	"strings"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
)

// QuestTemplate describes how a quest of a given type is written and scaled.
// Solo templates leave the player range and rewards multiplier at zero.
type QuestTemplate struct {
	Type               entities.QuestType
	TitleFormat        string
	DescriptionFormat  string
	DifficultyModifier float64
	MinPlayers         int
	MaxPlayers         int
	RewardsMultiplier  float64
}

// Render fills the {creature} and {location} placeholders
func (t QuestTemplate) Render(creature, location string) (title, description string) {
	r := strings.NewReplacer("{creature}", creature, "{location}", location)
	return r.Replace(t.TitleFormat), r.Replace(t.DescriptionFormat)
}

// Fits reports whether a team template accepts players hunters
func (t QuestTemplate) Fits(players int) bool {
	return players >= t.MinPlayers && players <= t.MaxPlayers
}

// QuestGiver is an NPC who hands out contracts
type QuestGiver struct {
	Name  string
	Title string
}

// String renders the giver as "Name, Title"
func (g QuestGiver) String() string {
	return g.Name + ", " + g.Title
}

func soloTemplates() []QuestTemplate {
	return []QuestTemplate{
		{
			Type:               entities.QuestTypeHunt,
			TitleFormat:        "Hunt the {creature}",
			DescriptionFormat:  "A {creature} has been spotted {location}. Eliminate this threat before it causes more damage.",
			DifficultyModifier: 1.0,
		},
		{
			Type:               entities.QuestTypeProtect,
			TitleFormat:        "Protect {location} from {creature}",
			DescriptionFormat:  "The {creature} is threatening {location}. Defend our people and drive back this ancient menace.",
			DifficultyModifier: 1.2,
		},
		{
			Type:               entities.QuestTypeInvestigate,
			TitleFormat:        "Investigate {creature} Sightings",
			DescriptionFormat:  "Strange {creature} tracks have been found {location}. Investigate and eliminate any threats.",
			DifficultyModifier: 0.9,
		},
		{
			Type:               entities.QuestTypeUrgent,
			TitleFormat:        "URGENT: {creature} Attack!",
			DescriptionFormat:  "A {creature} is actively attacking {location}! Respond immediately!",
			DifficultyModifier: 1.5,
		},
	}
}

func teamTemplates() []QuestTemplate {
	return []QuestTemplate{
		{
			Type:               entities.QuestTypeRaid,
			TitleFormat:        "Raid the {creature} Den",
			DescriptionFormat:  "A pack of {creature}s has established a den {location}. This threat requires a coordinated team effort to eliminate.",
			DifficultyModifier: 1.5,
			MinPlayers:         2,
			MaxPlayers:         4,
			RewardsMultiplier:  1.3,
		},
		{
			Type:               entities.QuestTypeSiege,
			TitleFormat:        "Siege of the Ancient {creature}",
			DescriptionFormat:  "An enormous {creature} has claimed territory {location}. Only a united group of hunters can hope to defeat this legendary beast.",
			DifficultyModifier: 2.0,
			MinPlayers:         3,
			MaxPlayers:         5,
			RewardsMultiplier:  1.5,
		},
		{
			Type:               entities.QuestTypeRescue,
			TitleFormat:        "Rescue Mission: {creature} Captives",
			DescriptionFormat:  "Villagers are trapped {location} by a {creature}. Time is critical, coordinate your assault to save them all.",
			DifficultyModifier: 1.3,
			MinPlayers:         2,
			MaxPlayers:         4,
			RewardsMultiplier:  1.2,
		},
		{
			Type:               entities.QuestTypeDefense,
			TitleFormat:        "Defend Against {creature} Horde",
			DescriptionFormat:  "Multiple {creature}s are advancing {location}. Form a defensive line and protect the innocent.",
			DifficultyModifier: 1.4,
			MinPlayers:         2,
			MaxPlayers:         6,
			RewardsMultiplier:  1.25,
		},
	}
}

func questGivers() []QuestGiver {
	return []QuestGiver{
		{Name: "Captain Marcus", Title: "Royal Guard Captain"},
		{Name: "Elder Sarah", Title: "Village Elder"},
		{Name: "Scout Tobias", Title: "Guild Scout"},
		{Name: "Merchant Willem", Title: "Trade Master"},
		{Name: "Priestess Elena", Title: "Temple Keeper"},
		{Name: "Hunter Gareth", Title: "Senior Monster Hunter"},
		{Name: "Scholar Aramis", Title: "Royal Historian"},
		{Name: "Knight Commander Lyra", Title: "Knight Commander"},
	}
}

func locations() []string {
	return []string{
		"near the Ancient Forest",
		"in the Forgotten Ruins",
		"at the Mountain Pass",
		"by the Mystic Lake",
		"in the Dark Caverns",
		"at the Village Outskirts",
		"near the Old Watchtower",
		"in the Haunted Valley",
		"at the Crossroads",
		"by the River Bend",
		"in the Stone Circle",
		"near the Abandoned Mine",
		"at the Merchant's Route",
		"in the Whispering Woods",
		"by the Crystal Falls",
	}
}

var genericRelicItems = []string{
	"Ancient Bone Fragment",
	"Prehistoric Essence",
	"Monster Trophy",
	"Health Potion",
	"Strength Elixir",
}

var teamRewardItems = []string{
	"Teamwork Medal",
	"Cooperation Token",
	"Guild Honor Badge",
	"Multiplayer Achievement",
}
