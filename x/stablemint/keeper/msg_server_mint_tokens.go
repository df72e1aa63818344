package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/custody/calculations"
	"github.com/custodialabs/custodynet/x/stablemint/types"
)

func (k msgServer) MintTokens(goCtx context.Context, msg *types.MsgMintTokens) (*types.MsgMintTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, types.ErrNotInitialized
	}
	if config.Paused {
		return nil, types.ErrPaused
	}

	minterAddr, err := sdk.AccAddressFromBech32(msg.Minter)
	if err != nil {
		return nil, err
	}
	recipientAddr, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, err
	}

	minter, found := k.GetMinter(ctx, minterAddr)
	if !found {
		return nil, types.ErrNotMinter.Wrapf("no minter record for %s", msg.Minter)
	}

	newMinted, err := calculations.ConsumeAllowance(minter.Allowance, minter.AmountMinted, msg.Amount)
	if err != nil {
		return nil, err
	}

	// The counter advances before the supply moves so the allowance bound
	// holds even within a single transition.
	minter.AmountMinted = newMinted
	k.SetMinter(ctx, minter)

	coin := sdk.NewCoin(k.GetParams(ctx).MintDenom, msg.Amount)
	err = k.custodyKeeper.MintToAccount(ctx, types.ModuleName, recipientAddr, sdk.NewCoins(coin), "stablecoin mint")
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeMintTokens,
			sdk.NewAttribute(types.AttributeKeyMinter, msg.Minter),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.Recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	})

	k.Logger().Info("tokens minted",
		"minter", msg.Minter,
		"recipient", msg.Recipient,
		"amount", coin.String(),
		"allowance_used", newMinted.String(),
	)

	return &types.MsgMintTokensResponse{Minted: coin}, nil
}
