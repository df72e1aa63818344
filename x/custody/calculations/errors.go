package calculations

import (
	sdkerrors "cosmossdk.io/errors"
)

// Settlement calculator sentinel errors. Registered under their own
// codespace so handlers in any module can compare against them directly.
var (
	ErrInvalidAmount    = sdkerrors.Register("settlement", 1200, "amount must be positive")
	ErrDenomMismatch    = sdkerrors.Register("settlement", 1201, "denomination mismatch")
	ErrInsufficientFill = sdkerrors.Register("settlement", 1202, "fill does not cover the requested amount")
	ErrNoWinningStake   = sdkerrors.Register("settlement", 1203, "no stake on the winning side")
	ErrEmptyWinningPool = sdkerrors.Register("settlement", 1204, "winning pool is empty")
	ErrExceedsAllowance = sdkerrors.Register("settlement", 1205, "amount exceeds remaining allowance")
	ErrSoldOut          = sdkerrors.Register("settlement", 1206, "supply exhausted")
	ErrOverflow         = sdkerrors.Register("settlement", 1207, "arithmetic overflow")
)
