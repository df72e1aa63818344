package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ValidateBasic performs basic validation of the MsgCreateMarket
func (msg *MsgCreateMarket) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if len(msg.Question) == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "question must not be empty")
	}
	if len(msg.Question) > MaxQuestionLen {
		return ErrQuestionTooLong.Wrapf("%d > %d", len(msg.Question), MaxQuestionLen)
	}

	if msg.Deadline.IsZero() {
		return ErrInvalidDeadline.Wrap("deadline must be set")
	}

	return nil
}
