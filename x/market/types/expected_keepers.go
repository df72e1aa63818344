package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
)

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// CustodyKeeper moves stake in and out of derived market vaults.
type CustodyKeeper interface {
	LockToSubAccount(ctx context.Context, fromAddr sdk.AccAddress, sub custodytypes.SubAccount, amt sdk.Coins, memo string) error
	ReleaseFromSubAccount(ctx context.Context, sub custodytypes.SubAccount, declaredAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SubAccountBalance(ctx context.Context, sub custodytypes.SubAccount, denom string) sdk.Coin
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
