package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/catalog/types"
)

func (k msgServer) InitializeCollection(goCtx context.Context, msg *types.MsgInitializeCollection) (*types.MsgInitializeCollectionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	// Re-initialization must fail: supply counters are seeded exactly once.
	if k.IsInitialized(ctx) {
		return nil, types.ErrAlreadyInitialized
	}

	collection := types.Collection{
		Authority:   msg.Authority,
		Categories:  msg.Categories,
		TotalMinted: 0,
	}
	k.SetCollection(ctx, collection)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeInitializeCollection,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyCategories, strconv.Itoa(len(msg.Categories))),
		),
	})

	k.Logger().Info("collection initialized",
		"authority", msg.Authority,
		"categories", len(msg.Categories),
		"total_supply", collection.TotalRemaining(),
	)

	return &types.MsgInitializeCollectionResponse{}, nil
}
