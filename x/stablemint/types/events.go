package types

// Event types
const (
	EventTypeInitialize      = "initialize_stablecoin"
	EventTypeConfigureMinter = "configure_minter"
	EventTypeRemoveMinter    = "remove_minter"
	EventTypeMintTokens      = "mint_tokens"
	EventTypeBurnTokens      = "burn_tokens"
	EventTypeSetPaused       = "set_paused"
)

// Event attribute keys
const (
	AttributeKeyAdmin     = "admin"
	AttributeKeyMinter    = "minter"
	AttributeKeyAllowance = "allowance"
	AttributeKeyAmount    = "amount"
	AttributeKeyRecipient = "recipient"
	AttributeKeyOwner     = "owner"
	AttributeKeyPaused    = "paused"
)
