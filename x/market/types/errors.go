package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/market module sentinel errors
var (
	ErrMarketNotFound   = sdkerrors.Register(ModuleName, 1100, "market not found")
	ErrQuestionTooLong  = sdkerrors.Register(ModuleName, 1101, "question exceeds maximum length")
	ErrDeadlinePassed   = sdkerrors.Register(ModuleName, 1102, "betting deadline has passed")
	ErrDeadlineNotPast  = sdkerrors.Register(ModuleName, 1103, "betting deadline has not passed")
	ErrAlreadyResolved  = sdkerrors.Register(ModuleName, 1104, "market already resolved")
	ErrNotResolved      = sdkerrors.Register(ModuleName, 1105, "market not resolved")
	ErrNotCreator       = sdkerrors.Register(ModuleName, 1106, "signer is not the market creator")
	ErrPositionNotFound = sdkerrors.Register(ModuleName, 1107, "no position for bettor")
	ErrAlreadyClaimed   = sdkerrors.Register(ModuleName, 1108, "position already claimed")
	ErrInvalidDeadline  = sdkerrors.Register(ModuleName, 1109, "deadline must be in the future")
)
