package catalog

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/catalog/keeper"
	"github.com/custodialabs/custodynet/x/catalog/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if genState.Collection != nil {
		k.SetCollection(ctx, *genState.Collection)
	}
	for _, item := range genState.ItemList {
		k.SetItem(ctx, item)
	}
	if err := k.ItemSeq.Set(ctx, genState.ItemCount); err != nil {
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
	if collection, found := k.GetCollection(ctx); found {
		genesis.Collection = &collection
	}
	genesis.ItemList = k.GetAllItems(ctx)

	count, err := k.ItemSeq.Peek(ctx)
	if err != nil {
		panic(err)
	}
	genesis.ItemCount = count

	// this line is used by starport scaffolding # genesis/module/export

	return genesis
}
