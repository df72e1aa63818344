package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/escrow module sentinel errors
var (
	ErrEscrowExists   = sdkerrors.Register(ModuleName, 1100, "an escrow already exists for this maker and seed")
	ErrEscrowNotFound = sdkerrors.Register(ModuleName, 1101, "escrow not found")
	ErrInvalidSigner  = sdkerrors.Register(ModuleName, 1102, "expected gov account as only signer for proposal message")
)
