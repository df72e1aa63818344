package types

import (
	"cosmossdk.io/math"
)

// Config is the stablecoin authority root: the admin identity and the
// pause switch for minting.
type Config struct {
	Admin  string `json:"admin"`
	Paused bool   `json:"paused"`
}

// Minter is a delegated mint capability. AmountMinted only grows and is
// bounded by Allowance; removing the record and re-granting starts the
// counter from zero again.
type Minter struct {
	Address      string   `json:"address"`
	Allowance    math.Int `json:"allowance"`
	AmountMinted math.Int `json:"amount_minted"`
}

// Remaining reports the unused part of the minter's allowance.
func (m Minter) Remaining() math.Int {
	if m.AmountMinted.GT(m.Allowance) {
		return math.ZeroInt()
	}
	return m.Allowance.Sub(m.AmountMinted)
}
