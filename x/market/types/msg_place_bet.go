package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgPlaceBet
func (msg *MsgPlaceBet) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Bettor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid bettor address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "bet amount must be positive")
	}

	return nil
}
