package calculations

import (
	"cosmossdk.io/math"
)

// ConsumeAllowance charges a requested amount against a grantee's bounded
// allowance and returns the new cumulative used total. The used counter only
// grows and never exceeds the allowance.
func ConsumeAllowance(allowance, used, requested math.Int) (math.Int, error) {
	if requested.IsNil() || !requested.IsPositive() {
		return math.ZeroInt(), ErrInvalidAmount.Wrapf("requested %s", requested.String())
	}
	if used.IsNegative() || used.GT(allowance) {
		return math.ZeroInt(), ErrOverflow.Wrapf("used %s is outside allowance %s", used.String(), allowance.String())
	}
	remaining := allowance.Sub(used)
	if requested.GT(remaining) {
		return math.ZeroInt(), ErrExceedsAllowance.Wrapf("requested %s, remaining %s", requested.String(), remaining.String())
	}
	return used.Add(requested), nil
}
