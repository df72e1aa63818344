package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgConfigureMinter
func (msg *MsgConfigureMinter) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Minter); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid minter address: %s", err)
	}

	if msg.Allowance.IsNil() || msg.Allowance.IsNegative() {
		return ErrInvalidAllowance.Wrap("allowance must be non-negative")
	}

	return nil
}
