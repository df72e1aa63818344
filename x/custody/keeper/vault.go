package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/custodialabs/custodynet/x/custody/types"
)

// Vault operations move value in and out of derived sub-accounts. A vault's
// spending authority is the derivation itself: release requires the caller
// to present the sub-account inputs that re-derive the declared address.

// LockToSubAccount moves coins from an authenticated sender into the
// sub-account's derived address. Fails if the sender balance is short; no
// partial transfer is possible.
func (k Keeper) LockToSubAccount(ctx context.Context, fromAddr sdk.AccAddress, sub types.SubAccount, amt sdk.Coins, memo string) error {
	vaultAddr := sub.Address()
	if err := k.bankKeeper.SendCoins(ctx, fromAddr, vaultAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, vaultAddr.String(), fromAddr.String(), coin, memo, sub.Tag)
	}
	return nil
}

// ReleaseFromSubAccount moves coins out of a vault. The declared vault
// address must re-derive from the presented sub-account inputs, and the
// release amount must be covered by the vault's actual balance.
func (k Keeper) ReleaseFromSubAccount(ctx context.Context, sub types.SubAccount, declaredAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := types.RequireSubAccount(declaredAddr, sub); err != nil {
		return err
	}
	balance := k.bankKeeper.GetAllBalances(ctx, declaredAddr)
	if !amt.IsAllLTE(balance) {
		return types.ErrInsufficientVault.Wrapf(
			"vault %s holds %s, release of %s requested", sub.String(), balance.String(), amt.String())
	}
	if err := k.bankKeeper.SendCoins(ctx, declaredAddr, toAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, toAddr.String(), declaredAddr.String(), coin, memo, sub.Tag)
	}
	return nil
}

// ReleaseAllFromSubAccount drains the vault to the recipient and returns
// what was released. The amount is taken from the vault's own bookkeeping,
// never from caller input, so the vault can close with nothing left behind.
func (k Keeper) ReleaseAllFromSubAccount(ctx context.Context, sub types.SubAccount, declaredAddr, toAddr sdk.AccAddress, memo string) (sdk.Coins, error) {
	if err := types.RequireSubAccount(declaredAddr, sub); err != nil {
		return nil, err
	}
	balance := k.bankKeeper.GetAllBalances(ctx, declaredAddr)
	if balance.IsZero() {
		return sdk.NewCoins(), nil
	}
	if err := k.bankKeeper.SendCoins(ctx, declaredAddr, toAddr, balance); err != nil {
		return nil, err
	}
	for _, coin := range balance {
		k.logTransaction(ctx, toAddr.String(), declaredAddr.String(), coin, memo, sub.Tag)
	}
	return balance, nil
}

// SubAccountBalance reports the vault's balance in one denom.
func (k Keeper) SubAccountBalance(ctx context.Context, sub types.SubAccount, denom string) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, sub.Address(), denom)
}
