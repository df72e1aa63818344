package calculations

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ValidateSwapTerms checks the two legs of an escrow swap at creation time.
// Both legs must be well-formed positive amounts in distinct denominations;
// a same-denom swap is never a trade.
func ValidateSwapTerms(offered, requested sdk.Coin) error {
	if !offered.IsValid() || !offered.IsPositive() {
		return ErrInvalidAmount.Wrapf("offered amount %s", offered.String())
	}
	if !requested.IsValid() || !requested.IsPositive() {
		return ErrInvalidAmount.Wrapf("requested amount %s", requested.String())
	}
	if offered.Denom == requested.Denom {
		return ErrDenomMismatch.Wrapf("both legs denominated in %s", offered.Denom)
	}
	return nil
}

// ValidateFill checks a taker's contribution against the maker's requested
// leg. The fill must be in the requested denomination and cover the
// requested amount in full.
func ValidateFill(requested, fill sdk.Coin) error {
	if fill.Denom != requested.Denom {
		return ErrDenomMismatch.Wrapf("requested %s, fill offered in %s", requested.Denom, fill.Denom)
	}
	if fill.IsLT(requested) {
		return ErrInsufficientFill.Wrapf("requested %s, fill %s", requested.String(), fill.String())
	}
	return nil
}
