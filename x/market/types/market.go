package types

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
)

// Market is a binary prediction market. The yes/no pools only grow until
// the deadline; after resolution they are frozen and drained by claims.
type Market struct {
	Id           uint64    `json:"id"`
	Creator      string    `json:"creator"`
	Question     string    `json:"question"`
	Deadline     time.Time `json:"deadline"`
	Resolved     bool      `json:"resolved"`
	Outcome      bool      `json:"outcome"`
	YesPool      math.Int  `json:"yes_pool"`
	NoPool       math.Int  `json:"no_pool"`
	VaultAddress string    `json:"vault_address"`
}

// WinningPool returns the pool on the resolved outcome side.
func (m Market) WinningPool() math.Int {
	if m.Outcome {
		return m.YesPool
	}
	return m.NoPool
}

// LosingPool returns the pool on the losing side.
func (m Market) LosingPool() math.Int {
	if m.Outcome {
		return m.NoPool
	}
	return m.YesPool
}

// Position is a bettor's accumulated stake in one market. A bettor may
// hold stake on both sides; Claimed flips once and is terminal.
type Position struct {
	MarketId  uint64   `json:"market_id"`
	Bettor    string   `json:"bettor"`
	YesAmount math.Int `json:"yes_amount"`
	NoAmount  math.Int `json:"no_amount"`
	Claimed   bool     `json:"claimed"`
}

// WinningStake returns the bettor's stake on the given outcome side.
func (p Position) WinningStake(outcome bool) math.Int {
	if outcome {
		return p.YesAmount
	}
	return p.NoAmount
}

// VaultSubAccount derives the custody sub-account holding a market's
// combined stake pools.
func VaultSubAccount(creator sdk.AccAddress, id uint64) custodytypes.SubAccount {
	return custodytypes.NewSubAccount(ModuleName, SubAccountPool, creator.Bytes(), custodytypes.Uint64Key(id))
}
