package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/custody/calculations"
	"github.com/custodialabs/custodynet/x/escrow/types"
)

func (k msgServer) MakeEscrow(goCtx context.Context, msg *types.MsgMakeEscrow) (*types.MsgMakeEscrowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	makerAddr, err := sdk.AccAddressFromBech32(msg.Maker)
	if err != nil {
		return nil, err
	}

	if err := calculations.ValidateSwapTerms(msg.Offered, msg.Requested); err != nil {
		return nil, err
	}

	// Double-initialization must fail: an existing escrow at this derivation
	// can never be silently overwritten.
	if k.HasEscrow(ctx, makerAddr, msg.Seed) {
		return nil, types.ErrEscrowExists.Wrapf("maker %s seed %d", msg.Maker, msg.Seed)
	}

	vault := types.VaultSubAccount(makerAddr, msg.Seed)
	vaultAddr := vault.Address()

	// Lock the offered leg into the derived vault
	err = k.custodyKeeper.LockToSubAccount(ctx, makerAddr, vault, sdk.NewCoins(msg.Offered), "escrow offered leg locked")
	if err != nil {
		return nil, err
	}

	escrow := types.Escrow{
		Maker:        msg.Maker,
		Seed:         msg.Seed,
		Offered:      msg.Offered,
		Requested:    msg.Requested,
		VaultAddress: vaultAddr.String(),
	}
	k.SetEscrow(ctx, escrow)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeMakeEscrow,
			sdk.NewAttribute(types.AttributeKeyMaker, msg.Maker),
			sdk.NewAttribute(types.AttributeKeySeed, strconv.FormatUint(msg.Seed, 10)),
			sdk.NewAttribute(types.AttributeKeyOffered, msg.Offered.String()),
			sdk.NewAttribute(types.AttributeKeyRequested, msg.Requested.String()),
			sdk.NewAttribute(types.AttributeKeyVault, vaultAddr.String()),
		),
	})

	k.Logger().Info("escrow opened",
		"maker", msg.Maker,
		"seed", msg.Seed,
		"offered", msg.Offered.String(),
		"requested", msg.Requested.String(),
		"vault", vaultAddr.String(),
	)

	return &types.MsgMakeEscrowResponse{VaultAddress: vaultAddr.String()}, nil
}
