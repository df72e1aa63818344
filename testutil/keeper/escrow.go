package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	custodykeeper "github.com/custodialabs/custodynet/x/custody/keeper"
	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
	"github.com/custodialabs/custodynet/x/escrow/keeper"
	"github.com/custodialabs/custodynet/x/escrow/types"
)

// EscrowKeeper builds an escrow keeper over a real custody keeper and an
// in-memory bank, so vault flows are exercised for real.
func EscrowKeeper(t testing.TB) (keeper.Keeper, *InMemoryBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	custodyStoreKey := storetypes.NewKVStoreKey(custodytypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(custodyStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	bank := NewInMemoryBankKeeper()
	custodyK := custodykeeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(custodyStoreKey),
		log.NewNopLogger(),
		authority.String(),
		bank,
		custodykeeper.LogConfig{},
	)

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		bank,
		custodyK,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, bank, ctx
}
