package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/stablemint module sentinel errors
var (
	ErrAlreadyInitialized = sdkerrors.Register(ModuleName, 1100, "stablecoin config already initialized")
	ErrNotInitialized     = sdkerrors.Register(ModuleName, 1101, "stablecoin config not initialized")
	ErrUnauthorized       = sdkerrors.Register(ModuleName, 1102, "caller is not the stablecoin admin")
	ErrPaused             = sdkerrors.Register(ModuleName, 1103, "minting is currently paused")
	ErrNotMinter          = sdkerrors.Register(ModuleName, 1104, "account is not an authorized minter")
	ErrInvalidAllowance   = sdkerrors.Register(ModuleName, 1105, "invalid minter allowance")
)
