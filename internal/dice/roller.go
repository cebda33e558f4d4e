package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice.
// Every random draw in the game goes through a Roller so tests can pin outcomes.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains the details of a dice roll
type RollResult struct {
	Total int   // Sum of dice plus bonus
	Rolls []int // Individual die results
	Bonus int
	Count int
	Sides int
}
