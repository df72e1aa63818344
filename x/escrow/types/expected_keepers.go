package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
)

// AccountKeeper defines the expected interface for the Account module.
type AccountKeeper interface {
	GetAccount(context.Context, sdk.AccAddress) sdk.AccountI // only used for simulation
}

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SpendableCoins(context.Context, sdk.AccAddress) sdk.Coins
}

// CustodyKeeper defines the expected interface for the custody vault engine.
type CustodyKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	LockToSubAccount(ctx context.Context, fromAddr sdk.AccAddress, sub custodytypes.SubAccount, amt sdk.Coins, memo string) error
	ReleaseAllFromSubAccount(ctx context.Context, sub custodytypes.SubAccount, declaredAddr, toAddr sdk.AccAddress, memo string) (sdk.Coins, error)
}

// ParamSubspace defines the expected Subspace interface for parameters.
type ParamSubspace interface {
	Get(context.Context, []byte, interface{})
	Set(context.Context, []byte, interface{})
}
