package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the market module's genesis state.
type GenesisState struct {
	Params       Params     `json:"params"`
	MarketList   []Market   `json:"market_list"`
	PositionList []Position `json:"position_list"`
	MarketCount  uint64     `json:"market_count"`
	// this line is used by starport scaffolding # genesis/types/default
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		MarketList:   []Market{},
		PositionList: []Position{},
		// this line is used by starport scaffolding # genesis/types/default
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	marketIdMap := make(map[uint64]struct{})
	for _, market := range gs.MarketList {
		if _, ok := marketIdMap[market.Id]; ok {
			return fmt.Errorf("duplicated id for market %d", market.Id)
		}
		marketIdMap[market.Id] = struct{}{}

		if market.Id >= gs.MarketCount {
			return fmt.Errorf("market id %d is not below the market count %d", market.Id, gs.MarketCount)
		}

		creator, err := sdk.AccAddressFromBech32(market.Creator)
		if err != nil {
			return fmt.Errorf("invalid creator address for market %d: %w", market.Id, err)
		}
		if len(market.Question) == 0 || len(market.Question) > MaxQuestionLen {
			return fmt.Errorf("invalid question length for market %d", market.Id)
		}
		if market.YesPool.IsNil() || market.YesPool.IsNegative() ||
			market.NoPool.IsNil() || market.NoPool.IsNegative() {
			return fmt.Errorf("negative pool for market %d", market.Id)
		}
		if derived := VaultSubAccount(creator, market.Id).Address().String(); derived != market.VaultAddress {
			return fmt.Errorf("vault address mismatch for market %d: %s != %s", market.Id, market.VaultAddress, derived)
		}
	}

	positionKeyMap := make(map[string]struct{})
	for _, position := range gs.PositionList {
		if _, err := sdk.AccAddressFromBech32(position.Bettor); err != nil {
			return fmt.Errorf("invalid bettor address %s: %w", position.Bettor, err)
		}
		key := fmt.Sprintf("%d/%s", position.MarketId, position.Bettor)
		if _, ok := positionKeyMap[key]; ok {
			return fmt.Errorf("duplicated position %s", key)
		}
		positionKeyMap[key] = struct{}{}

		if _, ok := marketIdMap[position.MarketId]; !ok {
			return fmt.Errorf("position %s references unknown market %d", position.Bettor, position.MarketId)
		}
		if position.YesAmount.IsNil() || position.YesAmount.IsNegative() ||
			position.NoAmount.IsNil() || position.NoAmount.IsNegative() {
			return fmt.Errorf("negative stake in position %s", key)
		}
	}
	// this line is used by starport scaffolding # genesis/types/validate

	return gs.Params.Validate()
}
