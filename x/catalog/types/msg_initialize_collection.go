package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgInitializeCollection
func (msg *MsgInitializeCollection) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if len(msg.Categories) == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "at least one category is required")
	}

	seen := make(map[uint64]struct{})
	for _, cat := range msg.Categories {
		if _, ok := seen[cat.Id]; ok {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "duplicated category id %d", cat.Id)
		}
		seen[cat.Id] = struct{}{}

		if cat.InitialSupply == 0 {
			return ErrInvalidSupply.Wrapf("category %d", cat.Id)
		}
		if cat.Remaining != cat.InitialSupply {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest,
				"category %d remaining must equal initial supply", cat.Id)
		}
	}

	return nil
}
