package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the stablemint transaction surface.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	ConfigureMinter(context.Context, *MsgConfigureMinter) (*MsgConfigureMinterResponse, error)
	RemoveMinter(context.Context, *MsgRemoveMinter) (*MsgRemoveMinterResponse, error)
	MintTokens(context.Context, *MsgMintTokens) (*MsgMintTokensResponse, error)
	BurnTokens(context.Context, *MsgBurnTokens) (*MsgBurnTokensResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
}

type MsgInitialize struct {
	Admin string `json:"admin"`
}

type MsgInitializeResponse struct{}

type MsgConfigureMinter struct {
	Admin     string   `json:"admin"`
	Minter    string   `json:"minter"`
	Allowance math.Int `json:"allowance"`
}

type MsgConfigureMinterResponse struct{}

type MsgRemoveMinter struct {
	Admin  string `json:"admin"`
	Minter string `json:"minter"`
}

type MsgRemoveMinterResponse struct{}

type MsgMintTokens struct {
	Minter    string   `json:"minter"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type MsgMintTokensResponse struct {
	Minted sdk.Coin `json:"minted"`
}

type MsgBurnTokens struct {
	Owner  string   `json:"owner"`
	Amount math.Int `json:"amount"`
}

type MsgBurnTokensResponse struct {
	Burned sdk.Coin `json:"burned"`
}

type MsgPause struct {
	Admin string `json:"admin"`
}

type MsgPauseResponse struct{}

type MsgUnpause struct {
	Admin string `json:"admin"`
}

type MsgUnpauseResponse struct{}

var (
	_ sdk.Msg = &MsgInitialize{}
	_ sdk.Msg = &MsgConfigureMinter{}
	_ sdk.Msg = &MsgRemoveMinter{}
	_ sdk.Msg = &MsgMintTokens{}
	_ sdk.Msg = &MsgBurnTokens{}
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgUnpause{}
)

func (m *MsgInitialize) Reset()         { *m = MsgInitialize{} }
func (m *MsgInitialize) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgInitialize) ProtoMessage()    {}

func (m *MsgConfigureMinter) Reset()         { *m = MsgConfigureMinter{} }
func (m *MsgConfigureMinter) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgConfigureMinter) ProtoMessage()    {}

func (m *MsgRemoveMinter) Reset()         { *m = MsgRemoveMinter{} }
func (m *MsgRemoveMinter) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRemoveMinter) ProtoMessage()    {}

func (m *MsgMintTokens) Reset()         { *m = MsgMintTokens{} }
func (m *MsgMintTokens) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgMintTokens) ProtoMessage()    {}

func (m *MsgBurnTokens) Reset()         { *m = MsgBurnTokens{} }
func (m *MsgBurnTokens) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgBurnTokens) ProtoMessage()    {}

func (m *MsgPause) Reset()         { *m = MsgPause{} }
func (m *MsgPause) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgPause) ProtoMessage()    {}

func (m *MsgUnpause) Reset()         { *m = MsgUnpause{} }
func (m *MsgUnpause) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgUnpause) ProtoMessage()    {}
