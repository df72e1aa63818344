package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/shopspring/decimal"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/market/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Keeper) Market(c context.Context, req *types.QueryMarketRequest) (*types.QueryMarketResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	market, found := k.GetMarket(ctx, req.Id)
	if !found {
		return nil, status.Errorf(codes.NotFound, "market %d not found", req.Id)
	}

	return &types.QueryMarketResponse{Market: market}, nil
}

func (k Keeper) AllMarkets(c context.Context, req *types.QueryAllMarketsRequest) (*types.QueryAllMarketsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	markets, pageRes, err := query.CollectionPaginate(
		c,
		k.Markets,
		req.Pagination,
		func(_ uint64, value types.Market) (types.Market, error) {
			return value, nil
		})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllMarketsResponse{Market: markets, Pagination: pageRes}, nil
}

func (k Keeper) Position(c context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	bettorAddr, err := sdk.AccAddressFromBech32(req.Bettor)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid bettor address: %v", err)
	}

	position, found := k.GetPosition(ctx, req.MarketId, bettorAddr)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no position for market %d bettor %s", req.MarketId, req.Bettor)
	}

	return &types.QueryPositionResponse{Position: position}, nil
}

func (k Keeper) ImpliedOdds(c context.Context, req *types.QueryImpliedOddsRequest) (*types.QueryImpliedOddsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	market, found := k.GetMarket(ctx, req.MarketId)
	if !found {
		return nil, status.Errorf(codes.NotFound, "market %d not found", req.MarketId)
	}

	yes := decimal.NewFromBigInt(market.YesPool.BigInt(), 0)
	no := decimal.NewFromBigInt(market.NoPool.BigInt(), 0)
	total := yes.Add(no)
	if total.IsZero() {
		return &types.QueryImpliedOddsResponse{YesOdds: "0", NoOdds: "0"}, nil
	}

	return &types.QueryImpliedOddsResponse{
		YesOdds: yes.DivRound(total, 6).String(),
		NoOdds:  no.DivRound(total, 6).String(),
	}, nil
}
