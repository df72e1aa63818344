package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	sdk "github.com/cosmos/cosmos-sdk/types"

	testkeeper "github.com/custodialabs/custodynet/testutil/keeper"
	"github.com/custodialabs/custodynet/x/stablemint/keeper"
	"github.com/custodialabs/custodynet/x/stablemint/types"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx       sdk.Context
	k         keeper.Keeper
	bank      *testkeeper.InMemoryBankKeeper
	msgServer types.MsgServer
}

func (s *KeeperTestSuite) SetupTest() {
	k, bank, ctx := testkeeper.StablemintKeeper(s.T())

	s.ctx = ctx
	s.k = k
	s.bank = bank
	s.msgServer = keeper.NewMsgServerImpl(s.k)
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}
