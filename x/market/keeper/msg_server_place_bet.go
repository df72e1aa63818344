package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/market/types"
)

func (k msgServer) PlaceBet(goCtx context.Context, msg *types.MsgPlaceBet) (*types.MsgPlaceBetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	bettorAddr, err := sdk.AccAddressFromBech32(msg.Bettor)
	if err != nil {
		return nil, err
	}

	market, found := k.GetMarket(ctx, msg.MarketId)
	if !found {
		return nil, types.ErrMarketNotFound.Wrapf("id %d", msg.MarketId)
	}
	if market.Resolved {
		return nil, types.ErrAlreadyResolved.Wrapf("id %d", msg.MarketId)
	}
	if !ctx.BlockTime().Before(market.Deadline) {
		return nil, types.ErrDeadlinePassed.Wrapf("deadline %s, block time %s",
			market.Deadline, ctx.BlockTime())
	}

	creatorAddr, err := sdk.AccAddressFromBech32(market.Creator)
	if err != nil {
		return nil, err
	}

	coin := sdk.NewCoin(k.GetParams(ctx).StakeDenom, msg.Amount)
	vault := types.VaultSubAccount(creatorAddr, market.Id)

	// Stake moves first; pool accounting only advances once custody holds it.
	err = k.custodyKeeper.LockToSubAccount(ctx, bettorAddr, vault, sdk.NewCoins(coin), "market stake locked")
	if err != nil {
		return nil, err
	}

	if msg.Side {
		market.YesPool = market.YesPool.Add(msg.Amount)
	} else {
		market.NoPool = market.NoPool.Add(msg.Amount)
	}
	k.SetMarket(ctx, market)

	position, found := k.GetPosition(ctx, market.Id, bettorAddr)
	if !found {
		position = types.Position{
			MarketId:  market.Id,
			Bettor:    msg.Bettor,
			YesAmount: math.ZeroInt(),
			NoAmount:  math.ZeroInt(),
			Claimed:   false,
		}
	}
	if msg.Side {
		position.YesAmount = position.YesAmount.Add(msg.Amount)
	} else {
		position.NoAmount = position.NoAmount.Add(msg.Amount)
	}
	k.SetPosition(ctx, position)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePlaceBet,
			sdk.NewAttribute(types.AttributeKeyMarketId, strconv.FormatUint(market.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyBettor, msg.Bettor),
			sdk.NewAttribute(types.AttributeKeySide, strconv.FormatBool(msg.Side)),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	})

	k.Logger().Info("bet placed",
		"market", market.Id,
		"bettor", msg.Bettor,
		"side", msg.Side,
		"amount", coin.String(),
	)

	return &types.MsgPlaceBetResponse{}, nil
}
