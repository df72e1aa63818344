package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "catalog"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_catalog"

	// DenomPrefix prefixes per-category collectible denoms
	DenomPrefix = "collectible"
)

var (
	ParamsKey     = collections.NewPrefix(0)
	CollectionKey = collections.NewPrefix(1)
	ItemKey       = collections.NewPrefix(2)
	ItemSeqKey    = collections.NewPrefix(3)
)
