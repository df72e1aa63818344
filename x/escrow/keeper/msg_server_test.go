package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/testutil/sample"
	"github.com/custodialabs/custodynet/x/custody/calculations"
	custodytypes "github.com/custodialabs/custodynet/x/custody/types"
	"github.com/custodialabs/custodynet/x/escrow/types"
)

func (s *KeeperTestSuite) TestMakeEscrow_Success() {
	maker := sample.AccAddressBytes()
	offered := sdk.NewInt64Coin(custodytypes.BaseDenom, 1_000_000_000)
	requested := sdk.NewInt64Coin("uusd", 500_000_000)
	s.bank.FundAccount(maker, sdk.NewCoins(offered))

	resp, err := s.msgServer.MakeEscrow(s.ctx, &types.MsgMakeEscrow{
		Maker:     maker.String(),
		Seed:      1,
		Offered:   offered,
		Requested: requested,
	})
	s.Require().NoError(err)

	vault := types.VaultSubAccount(maker, 1)
	s.Require().Equal(vault.Address().String(), resp.VaultAddress)

	// The offered leg sits in the vault, not with the maker
	s.Require().True(s.bank.GetAllBalances(s.ctx, maker).IsZero())
	s.Require().Equal(offered, s.bank.GetBalance(s.ctx, vault.Address(), offered.Denom))

	escrow, found := s.k.GetEscrow(s.ctx, maker, 1)
	s.Require().True(found)
	s.Require().Equal(requested, escrow.Requested)
}

func (s *KeeperTestSuite) TestMakeEscrow_DoubleInitFails() {
	maker := sample.AccAddressBytes()
	offered := sdk.NewInt64Coin(custodytypes.BaseDenom, 100)
	requested := sdk.NewInt64Coin("uusd", 50)
	s.bank.FundAccount(maker, sdk.NewCoins(offered.Add(offered)))

	msg := &types.MsgMakeEscrow{
		Maker:     maker.String(),
		Seed:      1,
		Offered:   offered,
		Requested: requested,
	}
	_, err := s.msgServer.MakeEscrow(s.ctx, msg)
	s.Require().NoError(err)

	_, err = s.msgServer.MakeEscrow(s.ctx, msg)
	s.Require().ErrorIs(err, types.ErrEscrowExists)
}

func (s *KeeperTestSuite) TestMakeEscrow_SameDenomRejected() {
	maker := sample.AccAddressBytes()
	coin := sdk.NewInt64Coin(custodytypes.BaseDenom, 100)
	s.bank.FundAccount(maker, sdk.NewCoins(coin))

	_, err := s.msgServer.MakeEscrow(s.ctx, &types.MsgMakeEscrow{
		Maker:     maker.String(),
		Seed:      1,
		Offered:   coin,
		Requested: coin,
	})
	s.Require().ErrorIs(err, calculations.ErrDenomMismatch)
}

func (s *KeeperTestSuite) TestTakeEscrow_SettlesBothLegs() {
	maker := sample.AccAddressBytes()
	taker := sample.AccAddressBytes()
	offered := sdk.NewInt64Coin(custodytypes.BaseDenom, 1_000_000_000)
	requested := sdk.NewInt64Coin("uusd", 500_000_000)
	s.bank.FundAccount(maker, sdk.NewCoins(offered))
	s.bank.FundAccount(taker, sdk.NewCoins(requested))

	_, err := s.msgServer.MakeEscrow(s.ctx, &types.MsgMakeEscrow{
		Maker:     maker.String(),
		Seed:      1,
		Offered:   offered,
		Requested: requested,
	})
	s.Require().NoError(err)

	resp, err := s.msgServer.TakeEscrow(s.ctx, &types.MsgTakeEscrow{
		Taker: taker.String(),
		Maker: maker.String(),
		Seed:  1,
	})
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewCoins(offered), resp.Released)

	// Taker ends with the locked leg, maker with the requested leg, vault
	// closed with nothing left behind
	s.Require().Equal(offered, s.bank.GetBalance(s.ctx, taker, offered.Denom))
	s.Require().Equal(requested, s.bank.GetBalance(s.ctx, maker, requested.Denom))

	vault := types.VaultSubAccount(maker, 1)
	s.Require().True(s.bank.GetAllBalances(s.ctx, vault.Address()).IsZero())
	s.Require().False(s.k.HasEscrow(s.ctx, maker, 1))
}

func (s *KeeperTestSuite) TestTakeEscrow_InsufficientFill() {
	maker := sample.AccAddressBytes()
	taker := sample.AccAddressBytes()
	offered := sdk.NewInt64Coin(custodytypes.BaseDenom, 1_000_000_000)
	requested := sdk.NewInt64Coin("uusd", 500_000_000)
	s.bank.FundAccount(maker, sdk.NewCoins(offered))
	// One unit short of the requested leg
	s.bank.FundAccount(taker, sdk.NewCoins(sdk.NewInt64Coin("uusd", 499_999_999)))

	_, err := s.msgServer.MakeEscrow(s.ctx, &types.MsgMakeEscrow{
		Maker:     maker.String(),
		Seed:      1,
		Offered:   offered,
		Requested: requested,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.TakeEscrow(s.ctx, &types.MsgTakeEscrow{
		Taker: taker.String(),
		Maker: maker.String(),
		Seed:  1,
	})
	s.Require().ErrorIs(err, calculations.ErrInsufficientFill)

	// The escrow and its vault are untouched
	s.Require().True(s.k.HasEscrow(s.ctx, maker, 1))
	vault := types.VaultSubAccount(maker, 1)
	s.Require().Equal(offered, s.bank.GetBalance(s.ctx, vault.Address(), offered.Denom))
}

func (s *KeeperTestSuite) TestTakeEscrow_NotFound() {
	taker := sample.AccAddressBytes()
	maker := sample.AccAddressBytes()

	_, err := s.msgServer.TakeEscrow(s.ctx, &types.MsgTakeEscrow{
		Taker: taker.String(),
		Maker: maker.String(),
		Seed:  9,
	})
	s.Require().ErrorIs(err, types.ErrEscrowNotFound)
}

func (s *KeeperTestSuite) TestRefundEscrow_ReturnsOfferedLeg() {
	maker := sample.AccAddressBytes()
	offered := sdk.NewInt64Coin(custodytypes.BaseDenom, 777)
	requested := sdk.NewInt64Coin("uusd", 500)
	s.bank.FundAccount(maker, sdk.NewCoins(offered))

	_, err := s.msgServer.MakeEscrow(s.ctx, &types.MsgMakeEscrow{
		Maker:     maker.String(),
		Seed:      4,
		Offered:   offered,
		Requested: requested,
	})
	s.Require().NoError(err)

	resp, err := s.msgServer.RefundEscrow(s.ctx, &types.MsgRefundEscrow{
		Maker: maker.String(),
		Seed:  4,
	})
	s.Require().NoError(err)
	s.Require().Equal(sdk.NewCoins(offered), resp.Refunded)
	s.Require().Equal(offered, s.bank.GetBalance(s.ctx, maker, offered.Denom))
	s.Require().False(s.k.HasEscrow(s.ctx, maker, 4))
}

func (s *KeeperTestSuite) TestRefundEscrow_OnlyMakersOwnEscrow() {
	maker := sample.AccAddressBytes()
	other := sample.AccAddressBytes()
	offered := sdk.NewInt64Coin(custodytypes.BaseDenom, 100)
	s.bank.FundAccount(maker, sdk.NewCoins(offered))

	_, err := s.msgServer.MakeEscrow(s.ctx, &types.MsgMakeEscrow{
		Maker:     maker.String(),
		Seed:      1,
		Offered:   offered,
		Requested: sdk.NewInt64Coin("uusd", 50),
	})
	s.Require().NoError(err)

	// A different signer addresses their own (empty) keyspace
	_, err = s.msgServer.RefundEscrow(s.ctx, &types.MsgRefundEscrow{
		Maker: other.String(),
		Seed:  1,
	})
	s.Require().ErrorIs(err, types.ErrEscrowNotFound)
	s.Require().True(s.k.HasEscrow(s.ctx, maker, 1))
}

func (s *KeeperTestSuite) TestEscrowConservation() {
	maker := sample.AccAddressBytes()
	taker := sample.AccAddressBytes()
	offered := sdk.NewInt64Coin(custodytypes.BaseDenom, 12345)
	requested := sdk.NewInt64Coin("uusd", 678)
	s.bank.FundAccount(maker, sdk.NewCoins(offered))
	s.bank.FundAccount(taker, sdk.NewCoins(requested))

	supplyBefore := s.bank.TotalSupply()

	_, err := s.msgServer.MakeEscrow(s.ctx, &types.MsgMakeEscrow{
		Maker: maker.String(), Seed: 1, Offered: offered, Requested: requested,
	})
	s.Require().NoError(err)
	_, err = s.msgServer.TakeEscrow(s.ctx, &types.MsgTakeEscrow{
		Taker: taker.String(), Maker: maker.String(), Seed: 1,
	})
	s.Require().NoError(err)

	// Settlement moves value, it never creates or destroys it
	s.Require().Equal(supplyBefore, s.bank.TotalSupply())
}
