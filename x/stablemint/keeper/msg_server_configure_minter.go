package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/stablemint/types"
)

func (k msgServer) ConfigureMinter(goCtx context.Context, msg *types.MsgConfigureMinter) (*types.MsgConfigureMinterResponse, error) {
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

	// Updating an existing minter keeps the minted counter: only removal
	// and a fresh grant start the lifecycle over.
	minter, found := k.GetMinter(ctx, minterAddr)
	if !found {
		minter = types.Minter{
			Address:      msg.Minter,
			AmountMinted: math.ZeroInt(),
		}
	}
	minter.Allowance = msg.Allowance
	k.SetMinter(ctx, minter)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeConfigureMinter,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
			sdk.NewAttribute(types.AttributeKeyMinter, msg.Minter),
			sdk.NewAttribute(types.AttributeKeyAllowance, msg.Allowance.String()),
		),
	})

	k.Logger().Info("minter configured",
		"minter", msg.Minter,
		"allowance", msg.Allowance.String(),
	)

	return &types.MsgConfigureMinterResponse{}, nil
}
