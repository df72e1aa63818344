package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/custodialabs/custodynet/testutil/sample"
	"github.com/custodialabs/custodynet/x/catalog/types"
	"github.com/custodialabs/custodynet/x/custody/calculations"
)

func (s *KeeperTestSuite) initializeDefault() {
	_, err := s.msgServer.InitializeCollection(s.ctx, &types.MsgInitializeCollection{
		Authority:  sample.AccAddress(),
		Categories: types.DefaultCategories(),
	})
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestInitializeCollection_Seeding() {
	s.initializeDefault()

	collection, found := s.k.GetCollection(s.ctx)
	s.Require().True(found)
	s.Require().Len(collection.Categories, types.DefaultStandardCategories+1)
	s.Require().Zero(collection.TotalMinted)

	expected := uint64(types.DefaultStandardCategories*types.DefaultStandardSupply + types.DefaultRareSupply)
	s.Require().Equal(expected, collection.TotalRemaining())
}

func (s *KeeperTestSuite) TestInitializeCollection_DoubleInitFails() {
	s.initializeDefault()

	_, err := s.msgServer.InitializeCollection(s.ctx, &types.MsgInitializeCollection{
		Authority:  sample.AccAddress(),
		Categories: types.DefaultCategories(),
	})
	s.Require().ErrorIs(err, types.ErrAlreadyInitialized)
}

func (s *KeeperTestSuite) TestMintItem_BeforeInitFails() {
	_, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{
		Owner:      sample.AccAddress(),
		CategoryId: 0,
	})
	s.Require().ErrorIs(err, types.ErrNotInitialized)
}

func (s *KeeperTestSuite) TestMintItem_MovesBothCounters() {
	s.initializeDefault()
	owner := sample.AccAddressBytes()

	resp, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{
		Owner:      owner.String(),
		CategoryId: 3,
	})
	s.Require().NoError(err)
	s.Require().Equal(types.CategoryDenom(3), resp.Denom)

	collection, found := s.k.GetCollection(s.ctx)
	s.Require().True(found)
	s.Require().Equal(uint64(1), collection.TotalMinted)

	category, found := collection.Category(3)
	s.Require().True(found)
	s.Require().Equal(uint64(types.DefaultStandardSupply-1), category.Remaining)

	// Other categories are untouched
	other, found := collection.Category(4)
	s.Require().True(found)
	s.Require().Equal(uint64(types.DefaultStandardSupply), other.Remaining)

	item, found := s.k.GetItem(s.ctx, resp.Serial)
	s.Require().True(found)
	s.Require().Equal(uint64(3), item.CategoryId)
	s.Require().Equal(owner.String(), item.Owner)

	// Exactly one token of the category denom lands with the owner
	balance := s.bank.GetBalance(s.ctx, owner, resp.Denom)
	s.Require().Equal(int64(1), balance.Amount.Int64())
}

func (s *KeeperTestSuite) TestMintItem_SerialsAreSequential() {
	s.initializeDefault()
	owner := sample.AccAddress()

	first, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{Owner: owner, CategoryId: 0})
	s.Require().NoError(err)
	second, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{Owner: owner, CategoryId: 7})
	s.Require().NoError(err)
	s.Require().Equal(first.Serial+1, second.Serial)
}

func (s *KeeperTestSuite) TestMintItem_UnknownCategoryFails() {
	s.initializeDefault()

	_, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{
		Owner:      sample.AccAddress(),
		CategoryId: 99,
	})
	s.Require().ErrorIs(err, types.ErrCategoryNotFound)
}

func (s *KeeperTestSuite) TestMintItem_RareCategoryExhausts() {
	s.initializeDefault()
	owner := sample.AccAddressBytes()
	rareId := uint64(types.DefaultStandardCategories)

	for i := 0; i < types.DefaultRareSupply; i++ {
		_, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{
			Owner:      owner.String(),
			CategoryId: rareId,
		})
		s.Require().NoError(err)
	}

	collection, _ := s.k.GetCollection(s.ctx)
	category, found := collection.Category(rareId)
	s.Require().True(found)
	s.Require().Zero(category.Remaining)

	// Exhaustion is terminal
	_, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{
		Owner:      owner.String(),
		CategoryId: rareId,
	})
	s.Require().ErrorIs(err, calculations.ErrSoldOut)

	collection, _ = s.k.GetCollection(s.ctx)
	s.Require().Equal(uint64(types.DefaultRareSupply), collection.TotalMinted)

	denom := types.CategoryDenom(rareId)
	s.Require().Equal(int64(types.DefaultRareSupply), s.bank.GetBalance(s.ctx, owner, denom).Amount.Int64())
}

func (s *KeeperTestSuite) TestMintItem_GlobalCounterMatchesCategoryDrain() {
	s.initializeDefault()

	mints := []uint64{0, 0, 1, 5, 5, 5}
	for _, id := range mints {
		_, err := s.msgServer.MintItem(s.ctx, &types.MsgMintItem{
			Owner:      sample.AccAddress(),
			CategoryId: id,
		})
		s.Require().NoError(err)
	}

	collection, _ := s.k.GetCollection(s.ctx)
	s.Require().Equal(uint64(len(mints)), collection.TotalMinted)

	var drained uint64
	for _, cat := range collection.Categories {
		drained += cat.InitialSupply - cat.Remaining
	}
	s.Require().Equal(collection.TotalMinted, drained)
	s.Require().Len(s.k.GetAllItems(s.ctx), len(mints))

	s.Require().Equal(int64(len(mints)), supplyTotal(s.bank.TotalSupply()))
}

func supplyTotal(coins sdk.Coins) int64 {
	var total int64
	for _, c := range coins {
		total += c.Amount.Int64()
	}
	return total
}
