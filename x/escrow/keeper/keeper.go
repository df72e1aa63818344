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
	"github.com/custodialabs/custodynet/x/escrow/types"
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
		// Escrows holds open escrows keyed by (maker, seed)
		Escrows collections.Map[collections.Pair[sdk.AccAddress, uint64], types.Escrow]
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
		Escrows: collections.NewMap(
			sb,
			types.EscrowKey,
			"escrows",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key),
			custodytypes.JSONValue[types.Escrow](),
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

// SetEscrow stores an escrow record
func (k Keeper) SetEscrow(ctx context.Context, escrow types.Escrow) {
	maker, err := sdk.AccAddressFromBech32(escrow.Maker)
	if err != nil {
		panic(err)
	}
	if err := k.Escrows.Set(ctx, collections.Join(maker, escrow.Seed), escrow); err != nil {
		panic(err)
	}
}

// GetEscrow retrieves an escrow by maker and seed
func (k Keeper) GetEscrow(ctx context.Context, maker sdk.AccAddress, seed uint64) (types.Escrow, bool) {
	escrow, err := k.Escrows.Get(ctx, collections.Join(maker, seed))
	return escrow, err == nil
}

// HasEscrow reports whether an escrow exists for (maker, seed)
func (k Keeper) HasEscrow(ctx context.Context, maker sdk.AccAddress, seed uint64) bool {
	found, err := k.Escrows.Has(ctx, collections.Join(maker, seed))
	if err != nil {
		panic(err)
	}
	return found
}

// RemoveEscrow deletes an escrow record; the record and its vault always
// close in the same transition.
func (k Keeper) RemoveEscrow(ctx context.Context, maker sdk.AccAddress, seed uint64) {
	if err := k.Escrows.Remove(ctx, collections.Join(maker, seed)); err != nil {
		panic(err)
	}
}

// IterateEscrows walks all open escrows
func (k Keeper) IterateEscrows(ctx context.Context, process func(escrow types.Escrow) (stop bool)) {
	err := k.Escrows.Walk(ctx, nil, func(_ collections.Pair[sdk.AccAddress, uint64], escrow types.Escrow) (bool, error) {
		return process(escrow), nil
	})
	if err != nil {
		panic(err)
	}
}

// GetAllEscrows returns all open escrows (for genesis export)
func (k Keeper) GetAllEscrows(ctx context.Context) []types.Escrow {
	var list []types.Escrow
	k.IterateEscrows(ctx, func(escrow types.Escrow) bool {
		list = append(list, escrow)
		return false
	})
	return list
}
