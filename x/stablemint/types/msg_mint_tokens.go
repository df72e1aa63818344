package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgMintTokens
func (msg *MsgMintTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Minter); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid minter address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "mint amount must be positive")
	}

	return nil
}
