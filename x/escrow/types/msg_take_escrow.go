package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgTakeEscrow
func (msg *MsgTakeEscrow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Taker); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid taker address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Maker); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid maker address: %s", err)
	}

	return nil
}
