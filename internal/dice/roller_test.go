package dice_test

import (
	"errors"
	"testing"

	"github.com/Darkkkking/ai-rpg-adventure/internal/dice"
	mockdice "github.com/Darkkkking/ai-rpg-adventure/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d100",
			setupRolls: []int{42},
			count:      1,
			sides:      100,
			wantTotal:  42,
			wantRolls:  []int{42},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12,
			wantRolls:  []int{4, 5},
		},
		{
			name:       "negative bonus shifts the range",
			setupRolls: []int{1},
			count:      1,
			sides:      7,
			bonus:      -4,
			wantTotal:  -3,
			wantRolls:  []int{1},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      20,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
			assert.Equal(t, tt.bonus, result.Bonus)
		})
	}
}

func TestBetween(t *testing.T) {
	roller := dice.NewMockRoller()
	// [-3,3] is a d7 shifted by -4
	roller.SetRolls([]int{1, 7, 4})

	low, err := dice.Between(roller, -3, 3)
	require.NoError(t, err)
	high, err := dice.Between(roller, -3, 3)
	require.NoError(t, err)
	mid, err := dice.Between(roller, -3, 3)
	require.NoError(t, err)

	assert.Equal(t, -3, low)
	assert.Equal(t, 3, high)
	assert.Equal(t, 0, mid)

	_, err = dice.Between(roller, 5, 1)
	assert.Error(t, err)
}

func TestPercent(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{20, 21, 100})

	hit, err := dice.Percent(roller, 20)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = dice.Percent(roller, 20)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = dice.Percent(roller, 0)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, roller.Remaining())
}

func TestSample_DrawsDistinctIndexes(t *testing.T) {
	roller := dice.NewMockRoller()
	// first draw picks index 2 of [0..4], second picks the last of the remaining four
	roller.SetRolls([]int{3, 4})

	picked, err := dice.Sample(roller, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, picked)

	_, err = dice.Sample(roller, 2, 3)
	assert.Error(t, err)
}

func TestIndex_PropagatesRollerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Roll(1, 4, -1).Return(nil, errors.New("dice jammed"))

	_, err := dice.Index(roller, 4)
	assert.EqualError(t, err, "dice jammed")
}

func TestRandomRoller_BetweenStaysInRange(t *testing.T) {
	roller := dice.NewRandomRoller()

	rapid.Check(t, func(t *rapid.T) {
		low := rapid.IntRange(-10, 10).Draw(t, "low")
		width := rapid.IntRange(0, 20).Draw(t, "width")
		high := low + width

		got, err := dice.Between(roller, low, high)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got < low || got > high {
			t.Fatalf("got %d outside [%d,%d]", got, low, high)
		}
	})
}

func TestRandomRoller_RejectsBadDice(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)
	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}
