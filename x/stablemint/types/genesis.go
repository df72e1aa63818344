package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the stablemint module's genesis state.
type GenesisState struct {
	Params     Params   `json:"params"`
	Config     *Config  `json:"config,omitempty"`
	MinterList []Minter `json:"minter_list"`
	// this line is used by starport scaffolding # genesis/types/default
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		MinterList: []Minter{},
		// this line is used by starport scaffolding # genesis/types/default
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Config != nil {
		if _, err := sdk.AccAddressFromBech32(gs.Config.Admin); err != nil {
			return fmt.Errorf("invalid config admin address: %w", err)
		}
	}

	if gs.Config == nil && len(gs.MinterList) > 0 {
		return fmt.Errorf("minters present without an initialized config")
	}

	minterIndexMap := make(map[string]struct{})
	for _, minter := range gs.MinterList {
		if _, err := sdk.AccAddressFromBech32(minter.Address); err != nil {
			return fmt.Errorf("invalid minter address %s: %w", minter.Address, err)
		}
		if _, ok := minterIndexMap[minter.Address]; ok {
			return fmt.Errorf("duplicated address for minter %s", minter.Address)
		}
		minterIndexMap[minter.Address] = struct{}{}

		if minter.Allowance.IsNil() || minter.Allowance.IsNegative() {
			return fmt.Errorf("minter %s has negative allowance", minter.Address)
		}
		// AmountMinted may exceed Allowance when the admin lowered the
		// allowance after minting; only negative values are invalid.
		if minter.AmountMinted.IsNil() || minter.AmountMinted.IsNegative() {
			return fmt.Errorf("minter %s has negative minted amount", minter.Address)
		}
	}
	// this line is used by starport scaffolding # genesis/types/validate

	return gs.Params.Validate()
}
