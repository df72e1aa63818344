package stablemint

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/stablemint/keeper"
	"github.com/custodialabs/custodynet/x/stablemint/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if genState.Config != nil {
		k.SetConfig(ctx, *genState.Config)
	}
	for _, minter := range genState.MinterList {
		k.SetMinter(ctx, minter)
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
	if config, found := k.GetConfig(ctx); found {
		genesis.Config = &config
	}
	genesis.MinterList = k.GetAllMinters(ctx)

	// this line is used by starport scaffolding # genesis/module/export

	return genesis
}
