package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgRefundEscrow
func (msg *MsgRefundEscrow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Maker); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid maker address: %s", err)
	}

	return nil
}
