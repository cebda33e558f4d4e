package dice

import "fmt"

// Between returns a uniform integer in [low, high] using a single die.
func Between(r Roller, low, high int) (int, error) {
	if high < low {
		return 0, fmt.Errorf("invalid range [%d,%d]", low, high)
	}

	result, err := r.Roll(1, high-low+1, low-1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

// Percent rolls a d100 and reports whether it landed at or under percent.
// A d100 is always consumed, even for percent <= 0 or >= 100.
func Percent(r Roller, percent int) (bool, error) {
	result, err := r.Roll(1, 100, 0)
	if err != nil {
		return false, err
	}

	return result.Total <= percent, nil
}

// Index returns a uniform index in [0, n).
func Index(r Roller, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("cannot pick from %d options", n)
	}

	result, err := r.Roll(1, n, -1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

// Sample returns k distinct indexes from [0, n) in draw order.
// Each draw is one die over the options still remaining.
func Sample(r Roller, n, k int) ([]int, error) {
	if k > n {
		return nil, fmt.Errorf("cannot sample %d of %d", k, n)
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	picked := make([]int, 0, k)
	for i := 0; i < k; i++ {
		idx, err := Index(r, len(remaining))
		if err != nil {
			return nil, err
		}
		picked = append(picked, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return picked, nil
}
