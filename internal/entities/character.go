package entities

import "strings"

// CharacterClass is one of the nine playable hunter classes
type CharacterClass string

const (
	ClassSwordsman CharacterClass = "swordsman"
	ClassSniper    CharacterClass = "sniper"
	ClassMagician  CharacterClass = "magician"
	ClassGunman    CharacterClass = "gunman"
	ClassArcher    CharacterClass = "archer"
	ClassWarrior   CharacterClass = "warrior"
	ClassHunter    CharacterClass = "hunter"
	ClassAssassin  CharacterClass = "assassin"
	ClassHitman    CharacterClass = "hitman"
)

// Classes lists every class in catalog order
var Classes = []CharacterClass{
	ClassSwordsman,
	ClassSniper,
	ClassMagician,
	ClassGunman,
	ClassArcher,
	ClassWarrior,
	ClassHunter,
	ClassAssassin,
	ClassHitman,
}

// ParseClass normalizes user input into a known class
func ParseClass(raw string) (CharacterClass, bool) {
	class := CharacterClass(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range Classes {
		if c == class {
			return class, true
		}
	}
	return "", false
}

// Stat names a single character statistic
type Stat string

const (
	StatStrength     Stat = "strength"
	StatAgility      Stat = "agility"
	StatIntelligence Stat = "intelligence"
	StatDefense      Stat = "defense"
	StatMagicPower   Stat = "magic_power"
	StatMaxHP        Stat = "max_hp"
)

// GrowthStats are the stats that grow by bucketed ranges on level up; max_hp grows separately
var GrowthStats = []Stat{StatStrength, StatAgility, StatIntelligence, StatDefense, StatMagicPower}

// Stats holds a character's attributes
type Stats struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Defense      int `json:"defense"`
	MagicPower   int `json:"magic_power"`
	MaxHP        int `json:"max_hp"`
}

// Get returns the value of a stat by name
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Strength
	case StatAgility:
		return s.Agility
	case StatIntelligence:
		return s.Intelligence
	case StatDefense:
		return s.Defense
	case StatMagicPower:
		return s.MagicPower
	case StatMaxHP:
		return s.MaxHP
	default:
		return 0
	}
}

// Add increases a stat by amount
func (s *Stats) Add(stat Stat, amount int) {
	switch stat {
	case StatStrength:
		s.Strength += amount
	case StatAgility:
		s.Agility += amount
	case StatIntelligence:
		s.Intelligence += amount
	case StatDefense:
		s.Defense += amount
	case StatMagicPower:
		s.MagicPower += amount
	case StatMaxHP:
		s.MaxHP += amount
	}
}

// ItemCategory is an inventory bucket
type ItemCategory string

const (
	CategoryWeapons ItemCategory = "weapons"
	CategoryArmor   ItemCategory = "armor"
	CategoryItems   ItemCategory = "items"
	CategorySpells  ItemCategory = "spells"
)

// ItemCategories lists the inventory buckets every character starts with
var ItemCategories = []ItemCategory{CategoryWeapons, CategoryArmor, CategoryItems, CategorySpells}

// Item is a single inventory record
type Item struct {
	Name   string         `json:"name"`
	Type   ItemCategory   `json:"type"`
	Effect map[string]int `json:"effect,omitempty"`
}

// Inventory maps a category to its items in insertion order
type Inventory map[ItemCategory][]Item

// NewInventory creates an inventory with every category present and empty
func NewInventory() Inventory {
	inv := make(Inventory, len(ItemCategories))
	for _, category := range ItemCategories {
		inv[category] = []Item{}
	}
	return inv
}

// Character is a player's hunter
type Character struct {
	Name             string         `json:"name"`
	Class            CharacterClass `json:"class"`
	Level            int            `json:"level"`
	Experience       int            `json:"experience"`
	ExperienceToNext int            `json:"experience_to_next"`
	Gold             int            `json:"gold"`
	Stats            Stats          `json:"stats"`
	CurrentHP        int            `json:"current_hp"`
	Abilities        []string       `json:"abilities"`
	Inventory        Inventory      `json:"inventory"`
	QuestsCompleted  int            `json:"quests_completed"`
	MonstersDefeated int            `json:"monsters_defeated"`
}

// AddItem appends item to its category. Items without a type go to "items".
// Returns false if the category is not one the character carries.
func (c *Character) AddItem(item Item) bool {
	if item.Type == "" {
		item.Type = CategoryItems
	}
	if c.Inventory == nil {
		c.Inventory = NewInventory()
	}

	items, ok := c.Inventory[item.Type]
	if !ok {
		return false
	}

	c.Inventory[item.Type] = append(items, item)
	return true
}

// RemoveItem removes the first item named name from category
func (c *Character) RemoveItem(name string, category ItemCategory) bool {
	items, ok := c.Inventory[category]
	if !ok {
		return false
	}

	for i, item := range items {
		if item.Name != name {
			continue
		}
		c.Inventory[category] = append(items[:i:i], items[i+1:]...)
		return true
	}

	return false
}

// ApplyDamage reduces current HP, never below zero, and returns the HP actually lost
func (c *Character) ApplyDamage(damage int) int {
	if damage < 0 {
		damage = 0
	}
	before := c.CurrentHP
	c.CurrentHP -= damage
	c.ClampHP()
	return before - c.CurrentHP
}

// Heal restores HP up to max and returns the HP actually gained
func (c *Character) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := c.CurrentHP
	c.CurrentHP += amount
	c.ClampHP()
	return c.CurrentHP - before
}

// FullHeal sets current HP to max
func (c *Character) FullHeal() {
	c.CurrentHP = c.Stats.MaxHP
}

// IsDefeated reports whether the character is at zero HP
func (c *Character) IsDefeated() bool {
	return c.CurrentHP <= 0
}

// CanLevelUp reports whether experience has reached the next threshold
func (c *Character) CanLevelUp() bool {
	return c.Experience >= c.ExperienceToNext
}

// ClampHP keeps CurrentHP within [0, MaxHP]
func (c *Character) ClampHP() {
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	if c.CurrentHP > c.Stats.MaxHP {
		c.CurrentHP = c.Stats.MaxHP
	}
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Abilities = append([]string(nil), c.Abilities...)

	if c.Inventory != nil {
		clone.Inventory = make(Inventory, len(c.Inventory))
		for category, items := range c.Inventory {
			copied := make([]Item, len(items))
			for i, item := range items {
				copied[i] = item
				if item.Effect != nil {
					copied[i].Effect = make(map[string]int, len(item.Effect))
					for k, v := range item.Effect {
						copied[i].Effect[k] = v
					}
				}
			}
			clone.Inventory[category] = copied
		}
	}

	return &clone
}
