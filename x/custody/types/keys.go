package types

const (
	// ModuleName defines the module name
	ModuleName = "custody"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_custody"

	// BaseDenom is the chain's native staking and betting denomination
	BaseDenom = "ucnet"
)
