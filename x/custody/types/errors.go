package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/custody module sentinel errors
var (
	ErrAddressMismatch   = sdkerrors.Register(ModuleName, 1100, "account does not match its expected derivation")
	ErrInsufficientVault = sdkerrors.Register(ModuleName, 1101, "vault balance is insufficient")
)
