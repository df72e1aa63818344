package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer is the stablemint query surface.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Minter(context.Context, *QueryMinterRequest) (*QueryMinterResponse, error)
	AllMinters(context.Context, *QueryAllMintersRequest) (*QueryAllMintersResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

type QueryMinterRequest struct {
	Address string `json:"address"`
}

type QueryMinterResponse struct {
	Minter Minter `json:"minter"`
}

type QueryAllMintersRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryAllMintersResponse struct {
	Minter     []Minter            `json:"minter"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}
