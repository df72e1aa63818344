package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/custody/calculations"
	"github.com/custodialabs/custodynet/x/market/types"
)

func (k msgServer) ClaimWinnings(goCtx context.Context, msg *types.MsgClaimWinnings) (*types.MsgClaimWinningsResponse, error) {
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
	if !market.Resolved {
		return nil, types.ErrNotResolved.Wrapf("id %d", msg.MarketId)
	}

	position, found := k.GetPosition(ctx, market.Id, bettorAddr)
	if !found {
		return nil, types.ErrPositionNotFound.Wrapf("market %d bettor %s", msg.MarketId, msg.Bettor)
	}
	if position.Claimed {
		return nil, types.ErrAlreadyClaimed.Wrapf("market %d bettor %s", msg.MarketId, msg.Bettor)
	}

	// Nobody staked the winning side: everyone takes back exactly what they
	// put in, no winnings are manufactured.
	var payout math.Int
	if market.WinningPool().IsZero() {
		payout = position.YesAmount.Add(position.NoAmount)
		if payout.IsZero() {
			return nil, calculations.ErrNoWinningStake
		}
	} else {
		payout, err = calculations.PoolPayout(
			position.WinningStake(market.Outcome),
			market.WinningPool(),
			market.LosingPool(),
		)
		if err != nil {
			return nil, err
		}
	}

	// The claim flag flips before funds move so a re-entrant claim within
	// the same transition sees it set.
	position.Claimed = true
	k.SetPosition(ctx, position)

	creatorAddr, err := sdk.AccAddressFromBech32(market.Creator)
	if err != nil {
		return nil, err
	}
	vault := types.VaultSubAccount(creatorAddr, market.Id)
	vaultAddr, err := sdk.AccAddressFromBech32(market.VaultAddress)
	if err != nil {
		return nil, err
	}

	coin := sdk.NewCoin(k.GetParams(ctx).StakeDenom, payout)
	err = k.custodyKeeper.ReleaseFromSubAccount(ctx, vault, vaultAddr, bettorAddr, sdk.NewCoins(coin), "market payout released")
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaimWinnings,
			sdk.NewAttribute(types.AttributeKeyMarketId, strconv.FormatUint(market.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyBettor, msg.Bettor),
			sdk.NewAttribute(types.AttributeKeyPayout, coin.String()),
		),
	})

	k.Logger().Info("winnings claimed",
		"market", market.Id,
		"bettor", msg.Bettor,
		"payout", coin.String(),
	)

	return &types.MsgClaimWinningsResponse{Payout: coin}, nil
}
