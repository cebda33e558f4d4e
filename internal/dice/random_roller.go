package dice

import (
	"errors"
	"fmt"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"
)

// randomRoller implements Roller on top of the rpg-toolkit random source
type randomRoller struct {
	source toolkit.Roller
}

// NewRandomRoller creates a new random dice roller using the toolkit default source
func NewRandomRoller() Roller {
	return &randomRoller{source: toolkit.DefaultRoller}
}

// NewRandomRollerFrom creates a roller over a specific toolkit source
func NewRandomRollerFrom(source toolkit.Roller) Roller {
	if source == nil {
		source = toolkit.DefaultRoller
	}
	return &randomRoller{source: source}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	result := &RollResult{
		Total: bonus,
		Rolls: make([]int, count),
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}

	for i := 0; i < count; i++ {
		roll, err := r.source.Roll(sides)
		if err != nil {
			return nil, fmt.Errorf("failed to roll d%d: %w", sides, err)
		}
		result.Rolls[i] = roll
		result.Total += roll
	}

	return result, nil
}
