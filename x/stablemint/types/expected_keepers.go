package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// CustodyKeeper moves the stablecoin supply through the custody audit trail.
type CustodyKeeper interface {
	MintToAccount(ctx context.Context, moduleName string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	BurnFromAccount(ctx context.Context, ownerAddr sdk.AccAddress, moduleName string, amt sdk.Coins, memo string) error
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
