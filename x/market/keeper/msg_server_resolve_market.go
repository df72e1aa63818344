package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/market/types"
)

func (k msgServer) ResolveMarket(goCtx context.Context, msg *types.MsgResolveMarket) (*types.MsgResolveMarketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	market, found := k.GetMarket(ctx, msg.MarketId)
	if !found {
		return nil, types.ErrMarketNotFound.Wrapf("id %d", msg.MarketId)
	}
	if market.Creator != msg.Creator {
		return nil, types.ErrNotCreator.Wrapf("signer %s, creator %s", msg.Creator, market.Creator)
	}
	if market.Resolved {
		return nil, types.ErrAlreadyResolved.Wrapf("id %d", msg.MarketId)
	}
	if ctx.BlockTime().Before(market.Deadline) {
		return nil, types.ErrDeadlineNotPast.Wrapf("deadline %s, block time %s",
			market.Deadline, ctx.BlockTime())
	}

	// Resolution is terminal: the outcome and both pools freeze here.
	market.Resolved = true
	market.Outcome = msg.Outcome
	k.SetMarket(ctx, market)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeResolveMarket,
			sdk.NewAttribute(types.AttributeKeyMarketId, strconv.FormatUint(market.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyOutcome, strconv.FormatBool(msg.Outcome)),
		),
	})

	k.Logger().Info("market resolved",
		"market", market.Id,
		"outcome", msg.Outcome,
		"winning_pool", market.WinningPool().String(),
		"losing_pool", market.LosingPool().String(),
	)

	return &types.MsgResolveMarketResponse{}, nil
}
