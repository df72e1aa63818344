package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the catalog module's genesis state.
type GenesisState struct {
	Params     Params      `json:"params"`
	Collection *Collection `json:"collection,omitempty"`
	ItemList   []Item      `json:"item_list"`
	ItemCount  uint64      `json:"item_count"`
	// this line is used by starport scaffolding # genesis/types/default
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		ItemList: []Item{},
		// this line is used by starport scaffolding # genesis/types/default
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Collection == nil {
		if len(gs.ItemList) > 0 {
			return fmt.Errorf("items present without an initialized collection")
		}
		return gs.Params.Validate()
	}

	if _, err := sdk.AccAddressFromBech32(gs.Collection.Authority); err != nil {
		return fmt.Errorf("invalid collection authority address: %w", err)
	}

	var minted uint64
	categoryIdMap := make(map[uint64]struct{})
	for _, cat := range gs.Collection.Categories {
		if _, ok := categoryIdMap[cat.Id]; ok {
			return fmt.Errorf("duplicated id for category %d", cat.Id)
		}
		categoryIdMap[cat.Id] = struct{}{}

		if cat.InitialSupply == 0 {
			return fmt.Errorf("category %d has zero initial supply", cat.Id)
		}
		if cat.Remaining > cat.InitialSupply {
			return fmt.Errorf("category %d remaining exceeds initial supply", cat.Id)
		}
		minted += cat.InitialSupply - cat.Remaining
	}

	// The global counter always equals the sum of per-category mints.
	if gs.Collection.TotalMinted != minted {
		return fmt.Errorf("total minted %d does not match category counters %d",
			gs.Collection.TotalMinted, minted)
	}
	if uint64(len(gs.ItemList)) != minted {
		return fmt.Errorf("item count %d does not match total minted %d", len(gs.ItemList), minted)
	}

	itemSerialMap := make(map[uint64]struct{})
	for _, item := range gs.ItemList {
		if _, ok := itemSerialMap[item.Serial]; ok {
			return fmt.Errorf("duplicated serial for item %d", item.Serial)
		}
		itemSerialMap[item.Serial] = struct{}{}

		if item.Serial >= gs.ItemCount {
			return fmt.Errorf("item serial %d is not below the item count %d", item.Serial, gs.ItemCount)
		}
		if _, ok := categoryIdMap[item.CategoryId]; !ok {
			return fmt.Errorf("item %d references unknown category %d", item.Serial, item.CategoryId)
		}
		if _, err := sdk.AccAddressFromBech32(item.Owner); err != nil {
			return fmt.Errorf("invalid owner address for item %d: %w", item.Serial, err)
		}
	}
	// this line is used by starport scaffolding # genesis/types/validate

	return gs.Params.Validate()
}
