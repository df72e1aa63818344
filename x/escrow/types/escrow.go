package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
)

// Escrow is an open value lock: the maker's offered coins sit in a derived
// vault until a taker fills the requested leg or the maker refunds.
type Escrow struct {
	Maker        string   `json:"maker"`
	Seed         uint64   `json:"seed"`
	Offered      sdk.Coin `json:"offered"`
	Requested    sdk.Coin `json:"requested"`
	VaultAddress string   `json:"vault_address"`
}

// VaultSubAccount derives the custody vault for one escrow. The maker and
// seed are the key material, so every escrow owns a distinct vault.
func VaultSubAccount(maker sdk.AccAddress, seed uint64) custodytypes.SubAccount {
	return custodytypes.NewSubAccount(ModuleName, SubAccountVault, maker.Bytes(), custodytypes.Uint64Key(seed))
}
