package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgClaimWinnings
func (msg *MsgClaimWinnings) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Bettor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid bettor address: %s", err)
	}
	return nil
}
