package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// SubAccount identifies a program-controlled custody account by the inputs
// of its derivation: the owning module, a domain tag, and arbitrary key
// material. Two distinct input tuples never derive the same address, so
// holding the inputs is the proof of authority over the derived account.
type SubAccount struct {
	Module string
	Tag    string
	Keys   [][]byte
}

func NewSubAccount(module, tag string, keys ...[]byte) SubAccount {
	return SubAccount{
		Module: module,
		Tag:    tag,
		Keys:   keys,
	}
}

// Address derives the custody account address from the sub-account inputs.
// The derivation is deterministic: the same inputs always produce the same
// address.
func (s SubAccount) Address() sdk.AccAddress {
	material := make([][]byte, 0, len(s.Keys)+1)
	material = append(material, []byte(s.Tag))
	material = append(material, s.Keys...)
	return address.Module(s.Module, material...)
}

func (s SubAccount) String() string {
	return fmt.Sprintf("%s/%s", s.Module, s.Tag)
}

// RequireSubAccount re-derives the sub-account address and rejects the
// declared account if it does not match. Every privileged release must pass
// this check before any value moves; it is the sole defense against
// account-substitution.
func RequireSubAccount(declared sdk.AccAddress, sub SubAccount) error {
	derived := sub.Address()
	if !declared.Equals(derived) {
		return ErrAddressMismatch.Wrapf(
			"account %s is not the %s sub-account (expected %s)",
			declared.String(), sub.String(), derived.String())
	}
	return nil
}

// Uint64Key encodes an integer seed as sub-account key material.
func Uint64Key(v uint64) []byte {
	return sdk.Uint64ToBigEndian(v)
}
