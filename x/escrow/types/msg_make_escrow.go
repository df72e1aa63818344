package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgMakeEscrow
func (msg *MsgMakeEscrow) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Maker)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid maker address: %s", err)
	}

	if !msg.Offered.IsValid() || !msg.Offered.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "offered amount must be positive")
	}

	if !msg.Requested.IsValid() || !msg.Requested.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "requested amount must be positive")
	}

	return nil
}
