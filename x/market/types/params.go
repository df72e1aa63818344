package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"

	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Default parameter values
var (
	DefaultStakeDenom = custodytypes.BaseDenom
)

// Parameter store keys
var (
	KeyStakeDenom = []byte("StakeDenom")
)

// Params defines the parameters for the module.
type Params struct {
	StakeDenom string `json:"stake_denom"`
}

// ParamKeyTable the param key table for launch module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(stakeDenom string) Params {
	return Params{
		StakeDenom: stakeDenom,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultStakeDenom)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyStakeDenom, &p.StakeDenom, validateStakeDenom),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	return validateStakeDenom(p.StakeDenom)
}

func validateStakeDenom(v interface{}) error {
	stakeDenom, ok := v.(string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if err := sdk.ValidateDenom(stakeDenom); err != nil {
		return fmt.Errorf("invalid stake denom: %w", err)
	}

	return nil
}
