package types

// Event types
const (
	EventTypeMakeEscrow   = "make_escrow"
	EventTypeTakeEscrow   = "take_escrow"
	EventTypeRefundEscrow = "refund_escrow"
)

// Event attribute keys
const (
	AttributeKeyMaker     = "maker"
	AttributeKeyTaker     = "taker"
	AttributeKeySeed      = "seed"
	AttributeKeyOffered   = "offered"
	AttributeKeyRequested = "requested"
	AttributeKeyVault     = "vault"
)
