package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "stablemint"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_stablemint"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// ConfigKey is the key for the singleton stablecoin config
	ConfigKey = collections.NewPrefix(1)

	// MinterKey is the prefix to store minter capability records
	MinterKey = collections.NewPrefix(2)
)
