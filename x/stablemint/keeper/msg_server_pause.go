package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/stablemint/types"
)

func (k msgServer) Pause(goCtx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.setPaused(ctx, msg.Admin, true); err != nil {
		return nil, err
	}
	return &types.MsgPauseResponse{}, nil
}

func (k msgServer) Unpause(goCtx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.setPaused(ctx, msg.Admin, false); err != nil {
		return nil, err
	}
	return &types.MsgUnpauseResponse{}, nil
}

// setPaused is idempotent: pausing twice leaves the switch paused.
func (k msgServer) setPaused(ctx sdk.Context, admin string, paused bool) error {
	config, found := k.GetConfig(ctx)
	if !found {
		return types.ErrNotInitialized
	}
	if config.Admin != admin {
		return types.ErrUnauthorized.Wrapf("signer %s is not the admin", admin)
	}

	config.Paused = paused
	k.SetConfig(ctx, config)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSetPaused,
			sdk.NewAttribute(types.AttributeKeyAdmin, admin),
			sdk.NewAttribute(types.AttributeKeyPaused, strconv.FormatBool(paused)),
		),
	})

	k.Logger().Info("pause switch set", "paused", paused)

	return nil
}
