package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/custodialabs/custodynet/x/market/types"
)

func (s *KeeperTestSuite) TestImpliedOdds_ShareOfCombinedPool() {
	_, id := s.createMarket()
	s.fundAndBet(id, true, 1_000_000_000)
	s.fundAndBet(id, false, 3_000_000_000)

	resp, err := s.k.ImpliedOdds(s.ctx, &types.QueryImpliedOddsRequest{MarketId: id})
	s.Require().NoError(err)
	s.Require().Equal("0.25", resp.YesOdds)
	s.Require().Equal("0.75", resp.NoOdds)
}

func (s *KeeperTestSuite) TestImpliedOdds_RoundsToSixPlaces() {
	_, id := s.createMarket()
	s.fundAndBet(id, true, 1)
	s.fundAndBet(id, false, 2)

	resp, err := s.k.ImpliedOdds(s.ctx, &types.QueryImpliedOddsRequest{MarketId: id})
	s.Require().NoError(err)
	s.Require().Equal("0.333333", resp.YesOdds)
	s.Require().Equal("0.666667", resp.NoOdds)
}

func (s *KeeperTestSuite) TestImpliedOdds_EmptyPools() {
	_, id := s.createMarket()

	resp, err := s.k.ImpliedOdds(s.ctx, &types.QueryImpliedOddsRequest{MarketId: id})
	s.Require().NoError(err)
	s.Require().Equal("0", resp.YesOdds)
	s.Require().Equal("0", resp.NoOdds)
}

func (s *KeeperTestSuite) TestImpliedOdds_UnknownMarket() {
	_, err := s.k.ImpliedOdds(s.ctx, &types.QueryImpliedOddsRequest{MarketId: 42})
	s.Require().Equal(codes.NotFound, status.Code(err))
}
