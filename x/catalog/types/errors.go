package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/catalog module sentinel errors
var (
	ErrAlreadyInitialized = sdkerrors.Register(ModuleName, 1100, "collection already initialized")
	ErrNotInitialized     = sdkerrors.Register(ModuleName, 1101, "collection not initialized")
	ErrCategoryNotFound   = sdkerrors.Register(ModuleName, 1102, "category not found")
	ErrInvalidSupply      = sdkerrors.Register(ModuleName, 1103, "category supply must be positive")
	ErrItemNotFound       = sdkerrors.Register(ModuleName, 1104, "item not found")
)
