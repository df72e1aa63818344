package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/custodialabs/custodynet/x/stablemint/types"
)

func (k msgServer) BurnTokens(goCtx context.Context, msg *types.MsgBurnTokens) (*types.MsgBurnTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if !k.IsInitialized(ctx) {
		return nil, types.ErrNotInitialized
	}

	ownerAddr, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	// Burning stays open while minting is paused: holders can always exit
	// their own balance.
	coin := sdk.NewCoin(k.GetParams(ctx).MintDenom, msg.Amount)

	balance := k.bankKeeper.GetBalance(ctx, ownerAddr, coin.Denom)
	if balance.IsLT(coin) {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds,
			"balance %s is less than burn amount %s", balance, coin)
	}

	err = k.custodyKeeper.BurnFromAccount(ctx, ownerAddr, types.ModuleName, sdk.NewCoins(coin), "stablecoin burn")
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeBurnTokens,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	})

	k.Logger().Info("tokens burned",
		"owner", msg.Owner,
		"amount", coin.String(),
	)

	return &types.MsgBurnTokensResponse{Burned: coin}, nil
}
