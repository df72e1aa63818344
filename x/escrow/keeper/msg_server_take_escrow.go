package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/custody/calculations"
	"github.com/custodialabs/custodynet/x/escrow/types"
)

func (k msgServer) TakeEscrow(goCtx context.Context, msg *types.MsgTakeEscrow) (*types.MsgTakeEscrowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	takerAddr, err := sdk.AccAddressFromBech32(msg.Taker)
	if err != nil {
		return nil, err
	}
	makerAddr, err := sdk.AccAddressFromBech32(msg.Maker)
	if err != nil {
		return nil, err
	}

	escrow, found := k.GetEscrow(ctx, makerAddr, msg.Seed)
	if !found {
		return nil, types.ErrEscrowNotFound.Wrapf("maker %s seed %d", msg.Maker, msg.Seed)
	}

	// Check the taker can cover the requested leg before anything moves
	spendable := k.bankKeeper.SpendableCoins(ctx, takerAddr)
	fill := sdk.NewCoin(escrow.Requested.Denom, spendable.AmountOf(escrow.Requested.Denom))
	if err := calculations.ValidateFill(escrow.Requested, fill); err != nil {
		return nil, err
	}

	vault := types.VaultSubAccount(makerAddr, escrow.Seed)
	declaredVault, err := sdk.AccAddressFromBech32(escrow.VaultAddress)
	if err != nil {
		return nil, err
	}

	// Both legs settle in this single transition: taker pays the maker the
	// requested leg, then the vault drains to the taker and closes.
	err = k.custodyKeeper.SendCoins(ctx, takerAddr, makerAddr, sdk.NewCoins(escrow.Requested), "escrow requested leg filled")
	if err != nil {
		return nil, err
	}

	released, err := k.custodyKeeper.ReleaseAllFromSubAccount(ctx, vault, declaredVault, takerAddr, "escrow settled")
	if err != nil {
		return nil, err
	}

	k.RemoveEscrow(ctx, makerAddr, escrow.Seed)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTakeEscrow,
			sdk.NewAttribute(types.AttributeKeyMaker, msg.Maker),
			sdk.NewAttribute(types.AttributeKeyTaker, msg.Taker),
			sdk.NewAttribute(types.AttributeKeySeed, strconv.FormatUint(msg.Seed, 10)),
			sdk.NewAttribute(types.AttributeKeyOffered, released.String()),
			sdk.NewAttribute(types.AttributeKeyRequested, escrow.Requested.String()),
		),
	})

	k.Logger().Info("escrow settled",
		"maker", msg.Maker,
		"taker", msg.Taker,
		"seed", msg.Seed,
		"released", released.String(),
	)

	return &types.MsgTakeEscrowResponse{Released: released}, nil
}
