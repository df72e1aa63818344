package keeper_test

import (
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/custodialabs/custodynet/testutil/sample"
	"github.com/custodialabs/custodynet/x/custody/calculations"
	"github.com/custodialabs/custodynet/x/market/types"
)

func (s *KeeperTestSuite) createMarket() (creator sdk.AccAddress, id uint64) {
	creator = sample.AccAddressBytes()
	resp, err := s.msgServer.CreateMarket(s.ctx, &types.MsgCreateMarket{
		Creator:  creator.String(),
		Question: "will it settle before the deadline",
		Deadline: s.deadline,
	})
	s.Require().NoError(err)
	return creator, resp.MarketId
}

func (s *KeeperTestSuite) fundAndBet(id uint64, side bool, amount int64) sdk.AccAddress {
	bettor := sample.AccAddressBytes()
	denom := s.k.GetParams(s.ctx).StakeDenom
	s.bank.FundAccount(bettor, sdk.NewCoins(sdk.NewInt64Coin(denom, amount)))

	_, err := s.msgServer.PlaceBet(s.ctx, &types.MsgPlaceBet{
		Bettor:   bettor.String(),
		MarketId: id,
		Side:     side,
		Amount:   math.NewInt(amount),
	})
	s.Require().NoError(err)
	return bettor
}

func (s *KeeperTestSuite) TestCreateMarket_DeadlineMustBeFuture() {
	creator := sample.AccAddressBytes()

	_, err := s.msgServer.CreateMarket(s.ctx, &types.MsgCreateMarket{
		Creator:  creator.String(),
		Question: "already closed",
		Deadline: s.openTime,
	})
	s.Require().ErrorIs(err, types.ErrInvalidDeadline)
}

func (s *KeeperTestSuite) TestCreateMarket_QuestionLengthCap() {
	_, err := s.msgServer.CreateMarket(s.ctx, &types.MsgCreateMarket{
		Creator:  sample.AccAddress(),
		Question: strings.Repeat("q", types.MaxQuestionLen+1),
		Deadline: s.deadline,
	})
	s.Require().ErrorIs(err, types.ErrQuestionTooLong)
}

func (s *KeeperTestSuite) TestCreateMarket_SequentialIds() {
	_, first := s.createMarket()
	_, second := s.createMarket()
	s.Require().Equal(first+1, second)
}

func (s *KeeperTestSuite) TestPlaceBet_MovesStakeToVault() {
	creator, id := s.createMarket()
	bettor := s.fundAndBet(id, true, 1000)

	denom := s.k.GetParams(s.ctx).StakeDenom
	s.Require().True(s.bank.GetBalance(s.ctx, bettor, denom).IsZero())

	vault := types.VaultSubAccount(creator, id)
	s.Require().Equal(int64(1000), s.bank.GetBalance(s.ctx, vault.Address(), denom).Amount.Int64())

	market, found := s.k.GetMarket(s.ctx, id)
	s.Require().True(found)
	s.Require().Equal(math.NewInt(1000), market.YesPool)
	s.Require().True(market.NoPool.IsZero())
}

func (s *KeeperTestSuite) TestPlaceBet_AfterDeadlineFails() {
	_, id := s.createMarket()

	bettor := sample.AccAddressBytes()
	denom := s.k.GetParams(s.ctx).StakeDenom
	s.bank.FundAccount(bettor, sdk.NewCoins(sdk.NewInt64Coin(denom, 100)))

	_, err := s.msgServer.PlaceBet(s.afterDeadline(), &types.MsgPlaceBet{
		Bettor:   bettor.String(),
		MarketId: id,
		Side:     false,
		Amount:   math.NewInt(100),
	})
	s.Require().ErrorIs(err, types.ErrDeadlinePassed)
}

func (s *KeeperTestSuite) TestPlaceBet_RejectsInvalidAmount() {
	_, id := s.createMarket()
	bettor := sample.AccAddress()

	for _, amount := range []math.Int{math.NewInt(-5), math.ZeroInt(), {}} {
		_, err := s.msgServer.PlaceBet(s.ctx, &types.MsgPlaceBet{
			Bettor:   bettor,
			MarketId: id,
			Side:     true,
			Amount:   amount,
		})
		s.Require().ErrorIs(err, sdkerrors.ErrInvalidCoins)
	}
}

func (s *KeeperTestSuite) TestPlaceBet_AccumulatesPosition() {
	_, id := s.createMarket()

	bettor := sample.AccAddressBytes()
	denom := s.k.GetParams(s.ctx).StakeDenom
	s.bank.FundAccount(bettor, sdk.NewCoins(sdk.NewInt64Coin(denom, 300)))

	for _, bet := range []struct {
		side   bool
		amount int64
	}{{true, 100}, {true, 50}, {false, 150}} {
		_, err := s.msgServer.PlaceBet(s.ctx, &types.MsgPlaceBet{
			Bettor:   bettor.String(),
			MarketId: id,
			Side:     bet.side,
			Amount:   math.NewInt(bet.amount),
		})
		s.Require().NoError(err)
	}

	position, found := s.k.GetPosition(s.ctx, id, bettor)
	s.Require().True(found)
	s.Require().Equal(math.NewInt(150), position.YesAmount)
	s.Require().Equal(math.NewInt(150), position.NoAmount)
}

func (s *KeeperTestSuite) TestResolveMarket_CreatorAfterDeadlineOnly() {
	creator, id := s.createMarket()

	// Too early
	_, err := s.msgServer.ResolveMarket(s.ctx, &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().ErrorIs(err, types.ErrDeadlineNotPast)

	// Wrong signer
	_, err = s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: sample.AccAddress(), MarketId: id, Outcome: true,
	})
	s.Require().ErrorIs(err, types.ErrNotCreator)

	_, err = s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().NoError(err)

	// Resolution is terminal
	_, err = s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: false,
	})
	s.Require().ErrorIs(err, types.ErrAlreadyResolved)
}

func (s *KeeperTestSuite) TestClaimWinnings_SoleWinnerTakesAll() {
	creator, id := s.createMarket()

	winner := s.fundAndBet(id, true, 1_000_000_000)
	s.fundAndBet(id, false, 2_000_000_000)

	_, err := s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().NoError(err)

	resp, err := s.msgServer.ClaimWinnings(s.afterDeadline(), &types.MsgClaimWinnings{
		Bettor: winner.String(), MarketId: id,
	})
	s.Require().NoError(err)

	// Stake plus the whole losing pool
	s.Require().Equal(int64(3_000_000_000), resp.Payout.Amount.Int64())

	denom := s.k.GetParams(s.ctx).StakeDenom
	s.Require().Equal(int64(3_000_000_000), s.bank.GetBalance(s.ctx, winner, denom).Amount.Int64())

	vault := types.VaultSubAccount(creator, id)
	s.Require().True(s.bank.GetAllBalances(s.ctx, vault.Address()).IsZero())
}

func (s *KeeperTestSuite) TestClaimWinnings_ProRataNeverExceedsPool() {
	creator, id := s.createMarket()

	winners := []sdk.AccAddress{
		s.fundAndBet(id, true, 700),
		s.fundAndBet(id, true, 300),
	}
	s.fundAndBet(id, false, 999)

	_, err := s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().NoError(err)

	denom := s.k.GetParams(s.ctx).StakeDenom
	total := int64(0)
	for _, w := range winners {
		resp, err := s.msgServer.ClaimWinnings(s.afterDeadline(), &types.MsgClaimWinnings{
			Bettor: w.String(), MarketId: id,
		})
		s.Require().NoError(err)
		total += resp.Payout.Amount.Int64()
	}

	// Truncation rounds down per claim, so the sum never exceeds the pool
	s.Require().LessOrEqual(total, int64(700+300+999))
	s.Require().Equal(int64(700+699), s.bank.GetBalance(s.ctx, winners[0], denom).Amount.Int64())
	s.Require().Equal(int64(300+299), s.bank.GetBalance(s.ctx, winners[1], denom).Amount.Int64())
}

func (s *KeeperTestSuite) TestClaimWinnings_DoubleClaimFails() {
	creator, id := s.createMarket()
	winner := s.fundAndBet(id, true, 100)
	s.fundAndBet(id, false, 100)

	_, err := s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.ClaimWinnings(s.afterDeadline(), &types.MsgClaimWinnings{
		Bettor: winner.String(), MarketId: id,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.ClaimWinnings(s.afterDeadline(), &types.MsgClaimWinnings{
		Bettor: winner.String(), MarketId: id,
	})
	s.Require().ErrorIs(err, types.ErrAlreadyClaimed)
}

func (s *KeeperTestSuite) TestClaimWinnings_LoserGetsNothing() {
	creator, id := s.createMarket()
	s.fundAndBet(id, true, 100)
	loser := s.fundAndBet(id, false, 100)

	_, err := s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().NoError(err)

	_, err = s.msgServer.ClaimWinnings(s.afterDeadline(), &types.MsgClaimWinnings{
		Bettor: loser.String(), MarketId: id,
	})
	s.Require().ErrorIs(err, calculations.ErrNoWinningStake)
}

func (s *KeeperTestSuite) TestClaimWinnings_BeforeResolutionFails() {
	_, id := s.createMarket()
	bettor := s.fundAndBet(id, true, 100)

	_, err := s.msgServer.ClaimWinnings(s.ctx, &types.MsgClaimWinnings{
		Bettor: bettor.String(), MarketId: id,
	})
	s.Require().ErrorIs(err, types.ErrNotResolved)
}

func (s *KeeperTestSuite) TestClaimWinnings_EmptyWinningPoolRefunds() {
	creator, id := s.createMarket()

	// Everyone bet no, the outcome is yes: stakes come back, nothing more
	bettor := s.fundAndBet(id, false, 500)

	_, err := s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().NoError(err)

	resp, err := s.msgServer.ClaimWinnings(s.afterDeadline(), &types.MsgClaimWinnings{
		Bettor: bettor.String(), MarketId: id,
	})
	s.Require().NoError(err)
	s.Require().Equal(int64(500), resp.Payout.Amount.Int64())

	denom := s.k.GetParams(s.ctx).StakeDenom
	s.Require().Equal(int64(500), s.bank.GetBalance(s.ctx, bettor, denom).Amount.Int64())
}

func (s *KeeperTestSuite) TestMarketConservation() {
	creator, id := s.createMarket()

	winnerA := s.fundAndBet(id, true, 123_456)
	winnerB := s.fundAndBet(id, true, 654_321)
	s.fundAndBet(id, false, 777_777)

	supplyBefore := s.bank.TotalSupply()

	_, err := s.msgServer.ResolveMarket(s.afterDeadline(), &types.MsgResolveMarket{
		Creator: creator.String(), MarketId: id, Outcome: true,
	})
	s.Require().NoError(err)

	for _, w := range []sdk.AccAddress{winnerA, winnerB} {
		_, err := s.msgServer.ClaimWinnings(s.afterDeadline(), &types.MsgClaimWinnings{
			Bettor: w.String(), MarketId: id,
		})
		s.Require().NoError(err)
	}

	// Payouts redistribute the pools, they never mint
	s.Require().Equal(supplyBefore, s.bank.TotalSupply())
}
