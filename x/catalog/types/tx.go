package types

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the catalog transaction surface.
type MsgServer interface {
	InitializeCollection(context.Context, *MsgInitializeCollection) (*MsgInitializeCollectionResponse, error)
	MintItem(context.Context, *MsgMintItem) (*MsgMintItemResponse, error)
}

type MsgInitializeCollection struct {
	Authority  string           `json:"authority"`
	Categories []CategorySupply `json:"categories"`
}

type MsgInitializeCollectionResponse struct{}

type MsgMintItem struct {
	Owner      string `json:"owner"`
	CategoryId uint64 `json:"category_id"`
}

type MsgMintItemResponse struct {
	Serial uint64 `json:"serial"`
	Denom  string `json:"denom"`
}

var (
	_ sdk.Msg = &MsgInitializeCollection{}
	_ sdk.Msg = &MsgMintItem{}
)

func (m *MsgInitializeCollection) Reset()         { *m = MsgInitializeCollection{} }
func (m *MsgInitializeCollection) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgInitializeCollection) ProtoMessage()    {}

func (m *MsgMintItem) Reset()         { *m = MsgMintItem{} }
func (m *MsgMintItem) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgMintItem) ProtoMessage()    {}
