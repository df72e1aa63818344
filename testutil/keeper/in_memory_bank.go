package keeper

// In-memory bank for keeper tests: balances and supply live in a map as if
// in the KV store, so custody flows can be checked end to end without a
// full app.
import (
	"context"
	"sync"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// InMemoryBankKeeper is an in-memory implementation of the bank interfaces
// the custody keeper and the domain modules expect.
type InMemoryBankKeeper struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
	mu       sync.RWMutex
}

// NewInMemoryBankKeeper creates a new instance of InMemoryBankKeeper.
func NewInMemoryBankKeeper() *InMemoryBankKeeper {
	return &InMemoryBankKeeper{
		balances: make(map[string]sdk.Coins),
		supply:   sdk.NewCoins(),
	}
}

// FundAccount credits an account out of thin air, growing the supply.
func (b *InMemoryBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[addr.String()] = b.balances[addr.String()].Add(amt...)
	b.supply = b.supply.Add(amt...)
}

// TotalSupply reports the current total supply across all accounts.
func (b *InMemoryBankKeeper) TotalSupply() sdk.Coins {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.supply
}

func (b *InMemoryBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[addr.String()]
}

func (b *InMemoryBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *InMemoryBankKeeper) GetAllBalances(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[addr.String()]
}

func (b *InMemoryBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(fromAddr.String(), toAddr.String(), amt)
}

func (b *InMemoryBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

func (b *InMemoryBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (b *InMemoryBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	moduleAddr := authtypes.NewModuleAddress(moduleName).String()
	b.balances[moduleAddr] = b.balances[moduleAddr].Add(amt...)
	b.supply = b.supply.Add(amt...)
	return nil
}

func (b *InMemoryBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	moduleAddr := authtypes.NewModuleAddress(moduleName).String()
	balance, hasNeg := b.balances[moduleAddr].SafeSub(amt...)
	if hasNeg {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds,
			"module %s holds %s, burn of %s requested", moduleName, b.balances[moduleAddr], amt)
	}
	b.balances[moduleAddr] = balance
	newSupply, hasNeg := b.supply.SafeSub(amt...)
	if hasNeg {
		return errorsmod.Wrap(sdkerrors.ErrInsufficientFunds, "supply underflow")
	}
	b.supply = newSupply
	return nil
}

func (b *InMemoryBankKeeper) send(from, to string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	balance, hasNeg := b.balances[from].SafeSub(amt...)
	if hasNeg {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds,
			"account %s holds %s, send of %s requested", from, b.balances[from], amt)
	}
	b.balances[from] = balance
	b.balances[to] = b.balances[to].Add(amt...)
	return nil
}
