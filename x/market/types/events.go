package types

// Event types
const (
	EventTypeCreateMarket  = "create_market"
	EventTypePlaceBet      = "place_bet"
	EventTypeResolveMarket = "resolve_market"
	EventTypeClaimWinnings = "claim_winnings"
)

// Event attribute keys
const (
	AttributeKeyMarketId = "market_id"
	AttributeKeyCreator  = "creator"
	AttributeKeyQuestion = "question"
	AttributeKeyDeadline = "deadline"
	AttributeKeyBettor   = "bettor"
	AttributeKeySide     = "side"
	AttributeKeyAmount   = "amount"
	AttributeKeyOutcome  = "outcome"
	AttributeKeyPayout   = "payout"
	AttributeKeyVault    = "vault"
)
