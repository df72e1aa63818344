package calculations

import (
	"math"
)

// DecrementSupply consumes quantity units from a category's remaining
// supply. A category at zero is permanently exhausted.
func DecrementSupply(remaining, quantity uint64) (uint64, error) {
	if quantity == 0 {
		return 0, ErrInvalidAmount.Wrap("quantity must be positive")
	}
	if quantity > remaining {
		return 0, ErrSoldOut.Wrapf("remaining %d, requested %d", remaining, quantity)
	}
	return remaining - quantity, nil
}

// IncrementMinted advances the global minted counter, failing on wraparound.
func IncrementMinted(total, quantity uint64) (uint64, error) {
	if quantity > math.MaxUint64-total {
		return 0, ErrOverflow.Wrapf("minted counter %d cannot grow by %d", total, quantity)
	}
	return total + quantity, nil
}
