package types

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the market transaction surface.
type MsgServer interface {
	CreateMarket(context.Context, *MsgCreateMarket) (*MsgCreateMarketResponse, error)
	PlaceBet(context.Context, *MsgPlaceBet) (*MsgPlaceBetResponse, error)
	ResolveMarket(context.Context, *MsgResolveMarket) (*MsgResolveMarketResponse, error)
	ClaimWinnings(context.Context, *MsgClaimWinnings) (*MsgClaimWinningsResponse, error)
}

type MsgCreateMarket struct {
	Creator  string    `json:"creator"`
	Question string    `json:"question"`
	Deadline time.Time `json:"deadline"`
}

type MsgCreateMarketResponse struct {
	MarketId     uint64 `json:"market_id"`
	VaultAddress string `json:"vault_address"`
}

type MsgPlaceBet struct {
	Bettor   string   `json:"bettor"`
	MarketId uint64   `json:"market_id"`
	Side     bool     `json:"side"`
	Amount   math.Int `json:"amount"`
}

type MsgPlaceBetResponse struct{}

type MsgResolveMarket struct {
	Creator  string `json:"creator"`
	MarketId uint64 `json:"market_id"`
	Outcome  bool   `json:"outcome"`
}

type MsgResolveMarketResponse struct{}

type MsgClaimWinnings struct {
	Bettor   string `json:"bettor"`
	MarketId uint64 `json:"market_id"`
}

type MsgClaimWinningsResponse struct {
	Payout sdk.Coin `json:"payout"`
}

var (
	_ sdk.Msg = &MsgCreateMarket{}
	_ sdk.Msg = &MsgPlaceBet{}
	_ sdk.Msg = &MsgResolveMarket{}
	_ sdk.Msg = &MsgClaimWinnings{}
)

func (m *MsgCreateMarket) Reset()         { *m = MsgCreateMarket{} }
func (m *MsgCreateMarket) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgCreateMarket) ProtoMessage()    {}

func (m *MsgPlaceBet) Reset()         { *m = MsgPlaceBet{} }
func (m *MsgPlaceBet) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgPlaceBet) ProtoMessage()    {}

func (m *MsgResolveMarket) Reset()         { *m = MsgResolveMarket{} }
func (m *MsgResolveMarket) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgResolveMarket) ProtoMessage()    {}

func (m *MsgClaimWinnings) Reset()         { *m = MsgClaimWinnings{} }
func (m *MsgClaimWinnings) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgClaimWinnings) ProtoMessage()    {}
