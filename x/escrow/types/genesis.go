package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the escrow module's genesis state.
type GenesisState struct {
	Params     Params   `json:"params"`
	EscrowList []Escrow `json:"escrow_list"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		EscrowList: []Escrow{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{})
	for _, escrow := range gs.EscrowList {
		maker, err := sdk.AccAddressFromBech32(escrow.Maker)
		if err != nil {
			return fmt.Errorf("invalid maker address %s: %w", escrow.Maker, err)
		}
		key := fmt.Sprintf("%s/%d", escrow.Maker, escrow.Seed)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicated escrow for maker %s seed %d", escrow.Maker, escrow.Seed)
		}
		seen[key] = struct{}{}

		if !escrow.Offered.IsValid() || !escrow.Offered.IsPositive() {
			return fmt.Errorf("escrow %s has non-positive offered amount", key)
		}
		if !escrow.Requested.IsValid() || !escrow.Requested.IsPositive() {
			return fmt.Errorf("escrow %s has non-positive requested amount", key)
		}

		expected := VaultSubAccount(maker, escrow.Seed).Address().String()
		if escrow.VaultAddress != expected {
			return fmt.Errorf("escrow %s vault address %s does not match derivation %s", key, escrow.VaultAddress, expected)
		}
	}

	// this line is used by starport scaffolding # genesis/types/validate

	return gs.Params.Validate()
}
