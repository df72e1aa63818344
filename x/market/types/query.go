package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer is the market query surface.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Market(context.Context, *QueryMarketRequest) (*QueryMarketResponse, error)
	AllMarkets(context.Context, *QueryAllMarketsRequest) (*QueryAllMarketsResponse, error)
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	ImpliedOdds(context.Context, *QueryImpliedOddsRequest) (*QueryImpliedOddsResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryMarketRequest struct {
	Id uint64 `json:"id"`
}

type QueryMarketResponse struct {
	Market Market `json:"market"`
}

type QueryAllMarketsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryAllMarketsResponse struct {
	Market     []Market            `json:"market"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryPositionRequest struct {
	MarketId uint64 `json:"market_id"`
	Bettor   string `json:"bettor"`
}

type QueryPositionResponse struct {
	Position Position `json:"position"`
}

type QueryImpliedOddsRequest struct {
	MarketId uint64 `json:"market_id"`
}

// QueryImpliedOddsResponse reports each side's share of the combined pool
// as a decimal string in [0, 1].
type QueryImpliedOddsResponse struct {
	YesOdds string `json:"yes_odds"`
	NoOdds  string `json:"no_odds"`
}
