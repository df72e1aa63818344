package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/types/query"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/escrow/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Escrow(c context.Context, req *types.QueryEscrowRequest) (*types.QueryEscrowResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	makerAddr, err := sdk.AccAddressFromBech32(req.Maker)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid maker address: %v", err)
	}

	escrow, found := k.GetEscrow(ctx, makerAddr, req.Seed)
	if !found {
		return nil, status.Errorf(codes.NotFound, "escrow not found for maker %s seed %d", req.Maker, req.Seed)
	}

	return &types.QueryEscrowResponse{Escrow: escrow}, nil
}

func (k Keeper) AllEscrows(c context.Context, req *types.QueryAllEscrowsRequest) (*types.QueryAllEscrowsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	escrows, pageRes, err := query.CollectionPaginate(
		c,
		k.Escrows,
		req.Pagination,
		func(_ collections.Pair[sdk.AccAddress, uint64], value types.Escrow) (types.Escrow, error) {
			return value, nil
		})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllEscrowsResponse{Escrows: escrows, Pagination: pageRes}, nil
}
