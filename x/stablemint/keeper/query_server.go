package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/types/query"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/stablemint/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Keeper) Config(c context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "stablecoin is not initialized")
	}

	return &types.QueryConfigResponse{Config: config}, nil
}

func (k Keeper) Minter(c context.Context, req *types.QueryMinterRequest) (*types.QueryMinterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid minter address: %v", err)
	}

	minter, found := k.GetMinter(ctx, addr)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no minter record for %s", req.Address)
	}

	return &types.QueryMinterResponse{Minter: minter}, nil
}

func (k Keeper) AllMinters(c context.Context, req *types.QueryAllMintersRequest) (*types.QueryAllMintersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	minters, pageRes, err := query.CollectionPaginate(
		c,
		k.Minters,
		req.Pagination,
		func(_ sdk.AccAddress, value types.Minter) (types.Minter, error) {
			return value, nil
		})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllMintersResponse{Minter: minters, Pagination: pageRes}, nil
}
