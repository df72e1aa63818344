package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/x/catalog/types"
	"github.com/custodialabs/custodynet/x/custody/calculations"
)

func (k msgServer) MintItem(goCtx context.Context, msg *types.MsgMintItem) (*types.MsgMintItemResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	ownerAddr, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, err
	}

	collection, found := k.GetCollection(ctx)
	if !found {
		return nil, types.ErrNotInitialized
	}

	catIdx := -1
	for i, cat := range collection.Categories {
		if cat.Id == msg.CategoryId {
			catIdx = i
			break
		}
	}
	if catIdx < 0 {
		return nil, types.ErrCategoryNotFound.Wrapf("id %d", msg.CategoryId)
	}

	// Both counters move in the same transition or not at all.
	remaining, err := calculations.DecrementSupply(collection.Categories[catIdx].Remaining, 1)
	if err != nil {
		return nil, err
	}
	totalMinted, err := calculations.IncrementMinted(collection.TotalMinted, 1)
	if err != nil {
		return nil, err
	}
	collection.Categories[catIdx].Remaining = remaining
	collection.TotalMinted = totalMinted
	k.SetCollection(ctx, collection)

	serial := k.NextSerial(ctx)
	item := types.Item{
		Serial:     serial,
		CategoryId: msg.CategoryId,
		Owner:      msg.Owner,
	}
	k.SetItem(ctx, item)

	denom := types.CategoryDenom(msg.CategoryId)
	coin := sdk.NewCoin(denom, math.OneInt())
	err = k.custodyKeeper.MintToAccount(ctx, types.ModuleName, ownerAddr, sdk.NewCoins(coin), "collectible minted")
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeMintItem,
			sdk.NewAttribute(types.AttributeKeySerial, strconv.FormatUint(serial, 10)),
			sdk.NewAttribute(types.AttributeKeyCategoryId, strconv.FormatUint(msg.CategoryId, 10)),
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyRemaining, strconv.FormatUint(remaining, 10)),
		),
	})

	k.Logger().Info("item minted",
		"serial", serial,
		"category", msg.CategoryId,
		"owner", msg.Owner,
		"remaining", remaining,
	)

	return &types.MsgMintItemResponse{Serial: serial, Denom: denom}, nil
}
