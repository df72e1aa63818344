package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/catalog/types"
	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
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
		// collection is the singleton supply record, absent until initialized
		collection collections.Item[types.Collection]
		// Items holds minted collectibles keyed by serial
		Items collections.Map[uint64, types.Item]
		// ItemSeq hands out item serials
		ItemSeq collections.Sequence
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
		collection:    collections.NewItem(sb, types.CollectionKey, "collection", custodytypes.JSONValue[types.Collection]()),
		Items: collections.NewMap(
			sb,
			types.ItemKey,
			"items",
			collections.Uint64Key,
			custodytypes.JSONValue[types.Item](),
		),
		ItemSeq: collections.NewSequence(sb, types.ItemSeqKey, "item_seq"),
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

// GetCollection retrieves the singleton collection record
func (k Keeper) GetCollection(ctx context.Context) (types.Collection, bool) {
	collection, err := k.collection.Get(ctx)
	return collection, err == nil
}

// SetCollection stores the singleton collection record
func (k Keeper) SetCollection(ctx context.Context, collection types.Collection) {
	if err := k.collection.Set(ctx, collection); err != nil {
		panic(err)
	}
}

// IsInitialized reports whether InitializeCollection has run
func (k Keeper) IsInitialized(ctx context.Context) bool {
	found, err := k.collection.Has(ctx)
	if err != nil {
		panic(err)
	}
	return found
}

// NextSerial hands out the next item serial
func (k Keeper) NextSerial(ctx context.Context) uint64 {
	serial, err := k.ItemSeq.Next(ctx)
	if err != nil {
		panic(err)
	}
	return serial
}

// SetItem stores an item record
func (k Keeper) SetItem(ctx context.Context, item types.Item) {
	if err := k.Items.Set(ctx, item.Serial, item); err != nil {
		panic(err)
	}
}

// GetItem retrieves an item by serial
func (k Keeper) GetItem(ctx context.Context, serial uint64) (types.Item, bool) {
	item, err := k.Items.Get(ctx, serial)
	return item, err == nil
}

// IterateItems walks all minted items
func (k Keeper) IterateItems(ctx context.Context, process func(item types.Item) (stop bool)) {
	err := k.Items.Walk(ctx, nil, func(_ uint64, item types.Item) (bool, error) {
		return process(item), nil
	})
	if err != nil {
		panic(err)
	}
}

// GetAllItems returns all minted items (for genesis export)
func (k Keeper) GetAllItems(ctx context.Context) []types.Item {
	var list []types.Item
	k.IterateItems(ctx, func(item types.Item) bool {
		list = append(list, item)
		return false
	})
	return list
}
