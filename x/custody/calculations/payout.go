package calculations

import (
	"cosmossdk.io/math"
)

// PoolPayout computes a winner's settlement for a two-bucket pool:
// the winner's stake plus their pro-rata share of the losing pool,
// floor(stake * losingTotal / winningTotal). The multiplication happens on
// arbitrary-precision integers before the division, so intermediate values
// cannot wrap.
//
// A zero stake yields ErrNoWinningStake so callers can short-circuit before
// moving any value. A zero winning pool yields ErrEmptyWinningPool; the
// divide-by-zero case is never reachable.
func PoolPayout(stake, winningTotal, losingTotal math.Int) (math.Int, error) {
	if stake.IsNil() || stake.IsNegative() || winningTotal.IsNegative() || losingTotal.IsNegative() {
		return math.ZeroInt(), ErrInvalidAmount.Wrap("pool totals and stake must be non-negative")
	}
	if stake.IsZero() {
		return math.ZeroInt(), ErrNoWinningStake
	}
	if winningTotal.IsZero() {
		return math.ZeroInt(), ErrEmptyWinningPool
	}
	if stake.GT(winningTotal) {
		return math.ZeroInt(), ErrOverflow.Wrapf("stake %s exceeds winning pool %s", stake.String(), winningTotal.String())
	}
	share := stake.Mul(losingTotal).Quo(winningTotal)
	return stake.Add(share), nil
}
