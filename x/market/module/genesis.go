package market

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/market/keeper"
	"github.com/custodialabs/custodynet/x/market/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, market := range genState.MarketList {
		k.SetMarket(ctx, market)
	}
	for _, position := range genState.PositionList {
		k.SetPosition(ctx, position)
	}
	if err := k.MarketSeq.Set(ctx, genState.MarketCount); err != nil {
		panic(err)
	}

	// this line is used by starport scaffolding # genesis/module/init
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.MarketList = k.GetAllMarkets(ctx)
	genesis.PositionList = k.GetAllPositions(ctx)

	count, err := k.MarketSeq.Peek(ctx)
	if err != nil {
		panic(err)
	}
	genesis.MarketCount = count

	// this line is used by starport scaffolding # genesis/module/export

	return genesis
}
