package escrow

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/escrow/keeper"
	"github.com/custodialabs/custodynet/x/escrow/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, escrow := range genState.EscrowList {
		k.SetEscrow(ctx, escrow)
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
	genesis.EscrowList = k.GetAllEscrows(ctx)

	// this line is used by starport scaffolding # genesis/module/export

	return genesis
}
