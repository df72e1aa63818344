package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer is the escrow query surface.
type QueryServer interface {
	Escrow(context.Context, *QueryEscrowRequest) (*QueryEscrowResponse, error)
	AllEscrows(context.Context, *QueryAllEscrowsRequest) (*QueryAllEscrowsResponse, error)
}

type QueryEscrowRequest struct {
	Maker string `json:"maker"`
	Seed  uint64 `json:"seed"`
}

type QueryEscrowResponse struct {
	Escrow Escrow `json:"escrow"`
}

type QueryAllEscrowsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryAllEscrowsResponse struct {
	Escrows    []Escrow            `json:"escrows"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}
