package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Default parameter values
var (
	DefaultMintDenom = "uusd"
)

// Parameter store keys
var (
	KeyMintDenom = []byte("MintDenom")
)

// Params defines the parameters for the module.
type Params struct {
	MintDenom string `json:"mint_denom"`
}

// ParamKeyTable the param key table for launch module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(mintDenom string) Params {
	return Params{
		MintDenom: mintDenom,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultMintDenom)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyMintDenom, &p.MintDenom, validateMintDenom),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	return validateMintDenom(p.MintDenom)
}

func validateMintDenom(v interface{}) error {
	mintDenom, ok := v.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if err := sdk.ValidateDenom(mintDenom); err != nil {
		return fmt.Errorf("invalid mint denom: %w", err)
	}

	return nil
}
