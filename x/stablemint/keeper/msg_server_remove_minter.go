package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/stablemint/types"
)

func (k msgServer) RemoveMinter(goCtx context.Context, msg *types.MsgRemoveMinter) (*types.MsgRemoveMinterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, types.ErrNotInitialized
	}
	if config.Admin != msg.Admin {
		return nil, types.ErrUnauthorized.Wrapf("signer %s is not the admin", msg.Admin)
	}

	minterAddr, err := sdk.AccAddressFromBech32(msg.Minter)
	if err != nil {
		return nil, err
	}

	if !k.HasMinter(ctx, minterAddr) {
		return nil, types.ErrNotMinter.Wrapf("no minter record for %s", msg.Minter)
	}

	k.Keeper.RemoveMinter(ctx, minterAddr)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRemoveMinter,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
			sdk.NewAttribute(types.AttributeKeyMinter, msg.Minter),
		),
	})

	k.Logger().Info("minter removed", "minter", msg.Minter)

	return &types.MsgRemoveMinterResponse{}, nil
}
