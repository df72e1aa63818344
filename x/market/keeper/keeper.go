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
	"github.com/custodialabs/custodynet/x/market/types"
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
		// MarketSeq hands out market ids
		MarketSeq collections.Sequence
		// Markets holds all markets keyed by id
		Markets collections.Map[uint64, types.Market]
		// Positions holds bettor stakes keyed by (market id, bettor)
		Positions collections.Map[collections.Pair[uint64, sdk.AccAddress], types.Position]
		Schema    collections.Schema
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
		MarketSeq:     collections.NewSequence(sb, types.MarketSeqKey, "market_seq"),
		Markets: collections.NewMap(
			sb,
			types.MarketKey,
			"markets",
			collections.Uint64Key,
			custodytypes.JSONValue[types.Market](),
		),
		Positions: collections.NewMap(
			sb,
			types.PositionKey,
			"positions",
			collections.PairKeyCodec(collections.Uint64Key, sdk.AccAddressKey),
			custodytypes.JSONValue[types.Position](),
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

// NextMarketId hands out the next market id
func (k Keeper) NextMarketId(ctx context.Context) uint64 {
	id, err := k.MarketSeq.Next(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SetMarket stores a market record
func (k Keeper) SetMarket(ctx context.Context, market types.Market) {
	if err := k.Markets.Set(ctx, market.Id, market); err != nil {
		panic(err)
	}
}

// GetMarket retrieves a market by id
func (k Keeper) GetMarket(ctx context.Context, id uint64) (types.Market, bool) {
	market, err := k.Markets.Get(ctx, id)
	return market, err == nil
}

// IterateMarkets walks all markets
func (k Keeper) IterateMarkets(ctx context.Context, process func(market types.Market) (stop bool)) {
	err := k.Markets.Walk(ctx, nil, func(_ uint64, market types.Market) (bool, error) {
		return process(market), nil
	})
	if err != nil {
		panic(err)
	}
}

// GetAllMarkets returns all markets (for genesis export)
func (k Keeper) GetAllMarkets(ctx context.Context) []types.Market {
	var list []types.Market
	k.IterateMarkets(ctx, func(market types.Market) bool {
		list = append(list, market)
		return false
	})
	return list
}

// SetPosition stores a position record
func (k Keeper) SetPosition(ctx context.Context, position types.Position) {
	bettor, err := sdk.AccAddressFromBech32(position.Bettor)
	if err != nil {
		panic(err)
	}
	if err := k.Positions.Set(ctx, collections.Join(position.MarketId, bettor), position); err != nil {
		panic(err)
	}
}

// GetPosition retrieves a position by market id and bettor
func (k Keeper) GetPosition(ctx context.Context, marketId uint64, bettor sdk.AccAddress) (types.Position, bool) {
	position, err := k.Positions.Get(ctx, collections.Join(marketId, bettor))
	return position, err == nil
}

// IteratePositions walks all positions
func (k Keeper) IteratePositions(ctx context.Context, process func(position types.Position) (stop bool)) {
	err := k.Positions.Walk(ctx, nil, func(_ collections.Pair[uint64, sdk.AccAddress], position types.Position) (bool, error) {
		return process(position), nil
	})
	if err != nil {
		panic(err)
	}
}

// GetAllPositions returns all positions (for genesis export)
func (k Keeper) GetAllPositions(ctx context.Context) []types.Position {
	var list []types.Position
	k.IteratePositions(ctx, func(position types.Position) bool {
		list = append(list, position)
		return false
	})
	return list
}
