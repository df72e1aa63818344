package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/custodialabs/custodynet/testutil/keeper"
	"github.com/custodialabs/custodynet/testutil/sample"
	catalog "github.com/custodialabs/custodynet/x/catalog/module"
	"github.com/custodialabs/custodynet/x/catalog/types"
)

func TestGenesis(t *testing.T) {
	categories := types.DefaultCategories()
	categories[0].Remaining -= 2

	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		Collection: &types.Collection{
			Authority:   sample.AccAddress(),
			Categories:  categories,
			TotalMinted: 2,
		},
		ItemList: []types.Item{
			{Serial: 0, CategoryId: 0, Owner: sample.AccAddress()},
			{Serial: 1, CategoryId: 0, Owner: sample.AccAddress()},
		},
		ItemCount: 2,
	}
	require.NoError(t, genesisState.Validate())

	k, _, ctx := keepertest.CatalogKeeper(t)
	catalog.InitGenesis(ctx, k, genesisState)
	got := catalog.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.Equal(t, genesisState.Collection, got.Collection)
	require.ElementsMatch(t, genesisState.ItemList, got.ItemList)
	require.Equal(t, genesisState.ItemCount, got.ItemCount)

	// The serial sequence continues from the imported count
	require.Equal(t, uint64(2), k.NextSerial(ctx))
}
