package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/market/types"
)

func (k msgServer) CreateMarket(goCtx context.Context, msg *types.MsgCreateMarket) (*types.MsgCreateMarketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	creatorAddr, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}

	if !msg.Deadline.After(ctx.BlockTime()) {
		return nil, types.ErrInvalidDeadline.Wrapf("deadline %s is not after block time %s",
			msg.Deadline, ctx.BlockTime())
	}

	id := k.NextMarketId(ctx)
	vault := types.VaultSubAccount(creatorAddr, id)
	vaultAddr := vault.Address()

	market := types.Market{
		Id:           id,
		Creator:      msg.Creator,
		Question:     msg.Question,
		Deadline:     msg.Deadline,
		Resolved:     false,
		Outcome:      false,
		YesPool:      math.ZeroInt(),
		NoPool:       math.ZeroInt(),
		VaultAddress: vaultAddr.String(),
	}
	k.SetMarket(ctx, market)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCreateMarket,
			sdk.NewAttribute(types.AttributeKeyMarketId, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyCreator, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyQuestion, msg.Question),
			sdk.NewAttribute(types.AttributeKeyDeadline, msg.Deadline.String()),
			sdk.NewAttribute(types.AttributeKeyVault, vaultAddr.String()),
		),
	})

	k.Logger().Info("market created",
		"id", id,
		"creator", msg.Creator,
		"deadline", msg.Deadline,
		"vault", vaultAddr.String(),
	)

	return &types.MsgCreateMarketResponse{MarketId: id, VaultAddress: vaultAddr.String()}, nil
}
