package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/stablemint/types"
)

func (k msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	// Re-initialization must fail: the admin slot is claimed exactly once.
	if k.IsInitialized(ctx) {
		return nil, types.ErrAlreadyInitialized
	}

	k.SetConfig(ctx, types.Config{
		Admin:  msg.Admin,
		Paused: false,
	})

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeInitialize,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
		),
	})

	k.Logger().Info("stablecoin initialized", "admin", msg.Admin)

	return &types.MsgInitializeResponse{}, nil
}
