package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/types/query"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/catalog/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Keeper) Collection(c context.Context, req *types.QueryCollectionRequest) (*types.QueryCollectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	collection, found := k.GetCollection(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "collection is not initialized")
	}

	return &types.QueryCollectionResponse{Collection: collection}, nil
}

func (k Keeper) Item(c context.Context, req *types.QueryItemRequest) (*types.QueryItemResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	item, found := k.GetItem(ctx, req.Serial)
	if !found {
		return nil, status.Errorf(codes.NotFound, "item %d not found", req.Serial)
	}

	return &types.QueryItemResponse{Item: item}, nil
}

func (k Keeper) AllItems(c context.Context, req *types.QueryAllItemsRequest) (*types.QueryAllItemsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	items, pageRes, err := query.CollectionPaginate(
		c,
		k.Items,
		req.Pagination,
		func(_ uint64, value types.Item) (types.Item, error) {
			return value, nil
		})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllItemsResponse{Item: items, Pagination: pageRes}, nil
}
