package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "market"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_market"

	// SubAccountPool tags the derived vault holding a market's stake pools
	SubAccountPool = "pool"

	// MaxQuestionLen bounds the market question text
	MaxQuestionLen = 200
)

var (
	ParamsKey    = collections.NewPrefix(0)
	MarketKey    = collections.NewPrefix(1)
	MarketSeqKey = collections.NewPrefix(2)
	PositionKey  = collections.NewPrefix(3)
)
