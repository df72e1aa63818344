package types

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the escrow transaction surface.
type MsgServer interface {
	MakeEscrow(context.Context, *MsgMakeEscrow) (*MsgMakeEscrowResponse, error)
	TakeEscrow(context.Context, *MsgTakeEscrow) (*MsgTakeEscrowResponse, error)
	RefundEscrow(context.Context, *MsgRefundEscrow) (*MsgRefundEscrowResponse, error)
}

type MsgMakeEscrow struct {
	Maker     string   `json:"maker"`
	Seed      uint64   `json:"seed"`
	Offered   sdk.Coin `json:"offered"`
	Requested sdk.Coin `json:"requested"`
}

type MsgMakeEscrowResponse struct {
	VaultAddress string `json:"vault_address"`
}

type MsgTakeEscrow struct {
	Taker string `json:"taker"`
	Maker string `json:"maker"`
	Seed  uint64 `json:"seed"`
}

type MsgTakeEscrowResponse struct {
	Released sdk.Coins `json:"released"`
}

type MsgRefundEscrow struct {
	Maker string `json:"maker"`
	Seed  uint64 `json:"seed"`
}

type MsgRefundEscrowResponse struct {
	Refunded sdk.Coins `json:"refunded"`
}

var (
	_ sdk.Msg = &MsgMakeEscrow{}
	_ sdk.Msg = &MsgTakeEscrow{}
	_ sdk.Msg = &MsgRefundEscrow{}
)

func (m *MsgMakeEscrow) Reset()         { *m = MsgMakeEscrow{} }
func (m *MsgMakeEscrow) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgMakeEscrow) ProtoMessage()    {}

func (m *MsgTakeEscrow) Reset()         { *m = MsgTakeEscrow{} }
func (m *MsgTakeEscrow) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgTakeEscrow) ProtoMessage()    {}

func (m *MsgRefundEscrow) Reset()         { *m = MsgRefundEscrow{} }
func (m *MsgRefundEscrow) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRefundEscrow) ProtoMessage()    {}
