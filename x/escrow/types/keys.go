package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "escrow"

	// SubAccountVault tags the per-escrow custody vault derivation
	SubAccountVault = "vault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_escrow"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// EscrowKey is the prefix to store open escrows, keyed by (maker, seed)
	EscrowKey = collections.NewPrefix(1)
)
