package types

// Event types
const (
	EventTypeInitializeCollection = "initialize_collection"
	EventTypeMintItem             = "mint_item"
)

// Event attribute keys
const (
	AttributeKeyAuthority  = "authority"
	AttributeKeyCategories = "categories"
	AttributeKeyCategoryId = "category_id"
	AttributeKeySerial     = "serial"
	AttributeKeyOwner      = "owner"
	AttributeKeyDenom      = "denom"
	AttributeKeyRemaining  = "remaining"
)
