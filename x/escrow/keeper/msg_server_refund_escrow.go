package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/escrow/types"
)

func (k msgServer) RefundEscrow(goCtx context.Context, msg *types.MsgRefundEscrow) (*types.MsgRefundEscrowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	makerAddr, err := sdk.AccAddressFromBech32(msg.Maker)
	if err != nil {
		return nil, err
	}

	// The escrow is keyed by its maker, so only the maker's own signed
	// message can reach their escrow; no further ownership check is needed.
	escrow, found := k.GetEscrow(ctx, makerAddr, msg.Seed)
	if !found {
		return nil, types.ErrEscrowNotFound.Wrapf("maker %s seed %d", msg.Maker, msg.Seed)
	}

	vault := types.VaultSubAccount(makerAddr, escrow.Seed)
	declaredVault, err := sdk.AccAddressFromBech32(escrow.VaultAddress)
	if err != nil {
		return nil, err
	}

	refunded, err := k.custodyKeeper.ReleaseAllFromSubAccount(ctx, vault, declaredVault, makerAddr, "escrow refunded")
	if err != nil {
		return nil, err
	}

	k.RemoveEscrow(ctx, makerAddr, escrow.Seed)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRefundEscrow,
			sdk.NewAttribute(types.AttributeKeyMaker, msg.Maker),
			sdk.NewAttribute(types.AttributeKeySeed, strconv.FormatUint(msg.Seed, 10)),
			sdk.NewAttribute(types.AttributeKeyOffered, refunded.String()),
		),
	})

	k.Logger().Info("escrow refunded",
		"maker", msg.Maker,
		"seed", msg.Seed,
		"refunded", refunded.String(),
	)

	return &types.MsgRefundEscrowResponse{Refunded: refunded}, nil
}
