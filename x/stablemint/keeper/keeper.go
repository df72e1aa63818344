package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
	"github.com/custodialabs/custodynet/x/stablemint/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		bankKeeper    types.BankKeeper
		custodyKeeper types.CustodyKeeper

		params collections.Item[types.Params]
		// config is the singleton admin/pause record, absent until Initialize
		config collections.Item[types.Config]
		// Minters holds allowance accounting keyed by minter address
		Minters collections.Map[sdk.AccAddress, types.Minter]
		Schema  collections.Schema
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankKeeper,
	custodyKeeper types.CustodyKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bankKeeper:    bankKeeper,
		custodyKeeper: custodyKeeper,
		params:        collections.NewItem(sb, types.ParamsKey, "params", custodytypes.JSONValue[types.Params]()),
		config:        collections.NewItem(sb, types.ConfigKey, "config", custodytypes.JSONValue[types.Config]()),
		Minters: collections.NewMap(
			sb,
			types.MinterKey,
			"minters",
			sdk.AccAddressKey,
			custodytypes.JSONValue[types.Minter](),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetConfig retrieves the singleton config record
func (k Keeper) GetConfig(ctx context.Context) (types.Config, bool) {
	config, err := k.config.Get(ctx)
	return config, err == nil
}

// SetConfig stores the singleton config record
func (k Keeper) SetConfig(ctx context.Context, config types.Config) {
	if err := k.config.Set(ctx, config); err != nil {
		panic(err)
	}
}

// IsInitialized reports whether Initialize has run
func (k Keeper) IsInitialized(ctx context.Context) bool {
	found, err := k.config.Has(ctx)
	if err != nil {
		panic(err)
	}
	return found
}

// GetMinter retrieves a minter record by address
func (k Keeper) GetMinter(ctx context.Context, addr sdk.AccAddress) (types.Minter, bool) {
	minter, err := k.Minters.Get(ctx, addr)
	return minter, err == nil
}

// SetMinter stores a minter record
func (k Keeper) SetMinter(ctx context.Context, minter types.Minter) {
	addr, err := sdk.AccAddressFromBech32(minter.Address)
	if err != nil {
		panic(err)
	}
	if err := k.Minters.Set(ctx, addr, minter); err != nil {
		panic(err)
	}
}

// RemoveMinter deletes a minter record
func (k Keeper) RemoveMinter(ctx context.Context, addr sdk.AccAddress) {
	if err := k.Minters.Remove(ctx, addr); err != nil {
		panic(err)
	}
}

// HasMinter reports whether addr holds a minter record
func (k Keeper) HasMinter(ctx context.Context, addr sdk.AccAddress) bool {
	found, err := k.Minters.Has(ctx, addr)
	if err != nil {
		panic(err)
	}
	return found
}

// IterateMinters walks all minter records
func (k Keeper) IterateMinters(ctx context.Context, process func(minter types.Minter) (stop bool)) {
	err := k.Minters.Walk(ctx, nil, func(_ sdk.AccAddress, minter types.Minter) (bool, error) {
		return process(minter), nil
	})
	if err != nil {
		panic(err)
	}
}

// GetAllMinters returns all minter records (for genesis export)
func (k Keeper) GetAllMinters(ctx context.Context) []types.Minter {
	var list []types.Minter
	k.IterateMinters(ctx, func(minter types.Minter) bool {
		list = append(list, minter)
		return false
	})
	return list
}
