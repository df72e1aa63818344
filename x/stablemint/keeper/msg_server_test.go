package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/custodialabs/custodynet/testutil/sample"
	"github.com/custodialabs/custodynet/x/custody/calculations"
	"github.com/custodialabs/custodynet/x/stablemint/types"
)

func (s *KeeperTestSuite) initialize() (admin sdk.AccAddress) {
	admin = sample.AccAddressBytes()
	_, err := s.msgServer.Initialize(s.ctx, &types.MsgInitialize{Admin: admin.String()})
	s.Require().NoError(err)
	return admin
}

func (s *KeeperTestSuite) TestInitialize_DoubleInitFails() {
	admin := s.initialize()

	_, err := s.msgServer.Initialize(s.ctx, &types.MsgInitialize{Admin: admin.String()})
	s.Require().ErrorIs(err, types.ErrAlreadyInitialized)

	// Neither can anyone else claim the admin slot
	_, err = s.msgServer.Initialize(s.ctx, &types.MsgInitialize{Admin: sample.AccAddress()})
	s.Require().ErrorIs(err, types.ErrAlreadyInitialized)
}

func (s *KeeperTestSuite) TestConfigureMinter_AdminOnly() {
	s.initialize()
	minter := sample.AccAddress()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin:     sample.AccAddress(),
		Minter:    minter,
		Allowance: math.NewInt(1000),
	})
	s.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (s *KeeperTestSuite) TestConfigureMinter_UpdateKeepsCounter() {
	admin := s.initialize()
	minter := sample.AccAddressBytes()
	recipient := sample.AccAddressBytes()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(1000),
	})
	s.Require().NoError(err)

	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: recipient.String(), Amount: math.NewInt(400),
	})
	s.Require().NoError(err)

	// Raising the allowance keeps the 400 already minted on the books
	_, err = s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(500),
	})
	s.Require().NoError(err)

	record, found := s.k.GetMinter(s.ctx, minter)
	s.Require().True(found)
	s.Require().Equal(math.NewInt(400), record.AmountMinted)
	s.Require().Equal(math.NewInt(100), record.Remaining())
}

func (s *KeeperTestSuite) TestMintTokens_AllowanceBound() {
	admin := s.initialize()
	minter := sample.AccAddressBytes()
	recipient := sample.AccAddressBytes()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(1000),
	})
	s.Require().NoError(err)

	// Minting up to the exact bound succeeds
	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: recipient.String(), Amount: math.NewInt(600),
	})
	s.Require().NoError(err)
	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: recipient.String(), Amount: math.NewInt(400),
	})
	s.Require().NoError(err)

	denom := s.k.GetParams(s.ctx).MintDenom
	s.Require().Equal(int64(1000), s.bank.GetBalance(s.ctx, recipient, denom).Amount.Int64())

	// One more unit fails and moves nothing
	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: recipient.String(), Amount: math.NewInt(1),
	})
	s.Require().ErrorIs(err, calculations.ErrExceedsAllowance)
	s.Require().Equal(int64(1000), s.bank.GetBalance(s.ctx, recipient, denom).Amount.Int64())
}

func (s *KeeperTestSuite) TestMintBurn_RejectInvalidAmounts() {
	admin := s.initialize()
	minter := sample.AccAddressBytes()
	holder := sample.AccAddressBytes()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(100),
	})
	s.Require().NoError(err)

	for _, amount := range []math.Int{math.NewInt(-1), math.ZeroInt(), {}} {
		_, err := s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
			Minter: minter.String(), Recipient: holder.String(), Amount: amount,
		})
		s.Require().ErrorIs(err, sdkerrors.ErrInvalidCoins)

		_, err = s.msgServer.BurnTokens(s.ctx, &types.MsgBurnTokens{
			Owner: holder.String(), Amount: amount,
		})
		s.Require().ErrorIs(err, sdkerrors.ErrInvalidCoins)
	}
}

func (s *KeeperTestSuite) TestMintTokens_RequiresMinterRecord() {
	s.initialize()

	_, err := s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter:    sample.AccAddress(),
		Recipient: sample.AccAddress(),
		Amount:    math.NewInt(1),
	})
	s.Require().ErrorIs(err, types.ErrNotMinter)
}

func (s *KeeperTestSuite) TestPause_GatesMintingOnly() {
	admin := s.initialize()
	minter := sample.AccAddressBytes()
	holder := sample.AccAddressBytes()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(1000),
	})
	s.Require().NoError(err)

	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: holder.String(), Amount: math.NewInt(500),
	})
	s.Require().NoError(err)

	_, err = s.msgServer.Pause(s.ctx, &types.MsgPause{Admin: admin.String()})
	s.Require().NoError(err)

	// Minting is blocked while paused
	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: holder.String(), Amount: math.NewInt(1),
	})
	s.Require().ErrorIs(err, types.ErrPaused)

	// Burning stays open: holders can always exit their own balance
	_, err = s.msgServer.BurnTokens(s.ctx, &types.MsgBurnTokens{
		Owner: holder.String(), Amount: math.NewInt(200),
	})
	s.Require().NoError(err)

	denom := s.k.GetParams(s.ctx).MintDenom
	s.Require().Equal(int64(300), s.bank.GetBalance(s.ctx, holder, denom).Amount.Int64())

	_, err = s.msgServer.Unpause(s.ctx, &types.MsgUnpause{Admin: admin.String()})
	s.Require().NoError(err)

	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: holder.String(), Amount: math.NewInt(1),
	})
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestPause_AdminOnlyAndIdempotent() {
	admin := s.initialize()

	_, err := s.msgServer.Pause(s.ctx, &types.MsgPause{Admin: sample.AccAddress()})
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = s.msgServer.Pause(s.ctx, &types.MsgPause{Admin: admin.String()})
	s.Require().NoError(err)
	_, err = s.msgServer.Pause(s.ctx, &types.MsgPause{Admin: admin.String()})
	s.Require().NoError(err)

	config, found := s.k.GetConfig(s.ctx)
	s.Require().True(found)
	s.Require().True(config.Paused)
}

func (s *KeeperTestSuite) TestBurnTokens_BoundedByBalance() {
	admin := s.initialize()
	minter := sample.AccAddressBytes()
	holder := sample.AccAddressBytes()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(100),
	})
	s.Require().NoError(err)
	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: holder.String(), Amount: math.NewInt(100),
	})
	s.Require().NoError(err)

	_, err = s.msgServer.BurnTokens(s.ctx, &types.MsgBurnTokens{
		Owner: holder.String(), Amount: math.NewInt(101),
	})
	s.Require().Error(err)

	// Supply unchanged after the failed burn
	denom := s.k.GetParams(s.ctx).MintDenom
	s.Require().Equal(int64(100), s.bank.GetBalance(s.ctx, holder, denom).Amount.Int64())
}

func (s *KeeperTestSuite) TestRemoveMinter_FreshLifecycle() {
	admin := s.initialize()
	minter := sample.AccAddressBytes()
	recipient := sample.AccAddressBytes()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(100),
	})
	s.Require().NoError(err)
	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: recipient.String(), Amount: math.NewInt(100),
	})
	s.Require().NoError(err)

	_, err = s.msgServer.RemoveMinter(s.ctx, &types.MsgRemoveMinter{
		Admin: admin.String(), Minter: minter.String(),
	})
	s.Require().NoError(err)

	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: recipient.String(), Amount: math.NewInt(1),
	})
	s.Require().ErrorIs(err, types.ErrNotMinter)

	// A fresh grant starts the counter from zero
	_, err = s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(50),
	})
	s.Require().NoError(err)

	record, found := s.k.GetMinter(s.ctx, minter)
	s.Require().True(found)
	s.Require().True(record.AmountMinted.IsZero())
}

func (s *KeeperTestSuite) TestMintBurn_SupplyAccounting() {
	admin := s.initialize()
	minter := sample.AccAddressBytes()
	holder := sample.AccAddressBytes()

	_, err := s.msgServer.ConfigureMinter(s.ctx, &types.MsgConfigureMinter{
		Admin: admin.String(), Minter: minter.String(), Allowance: math.NewInt(1000),
	})
	s.Require().NoError(err)
	_, err = s.msgServer.MintTokens(s.ctx, &types.MsgMintTokens{
		Minter: minter.String(), Recipient: holder.String(), Amount: math.NewInt(1000),
	})
	s.Require().NoError(err)

	denom := s.k.GetParams(s.ctx).MintDenom
	s.Require().Equal(int64(1000), s.bank.TotalSupply().AmountOf(denom).Int64())

	_, err = s.msgServer.BurnTokens(s.ctx, &types.MsgBurnTokens{
		Owner: holder.String(), Amount: math.NewInt(1000),
	})
	s.Require().NoError(err)
	s.Require().True(s.bank.TotalSupply().AmountOf(denom).IsZero())
}
