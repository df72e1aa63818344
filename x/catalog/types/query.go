package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer is the catalog query surface.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Collection(context.Context, *QueryCollectionRequest) (*QueryCollectionResponse, error)
	Item(context.Context, *QueryItemRequest) (*QueryItemResponse, error)
	AllItems(context.Context, *QueryAllItemsRequest) (*QueryAllItemsResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryCollectionRequest struct{}

type QueryCollectionResponse struct {
	Collection Collection `json:"collection"`
}

type QueryItemRequest struct {
	Serial uint64 `json:"serial"`
}

type QueryItemResponse struct {
	Item Item `json:"item"`
}

type QueryAllItemsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryAllItemsResponse struct {
	Item       []Item              `json:"item"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}
