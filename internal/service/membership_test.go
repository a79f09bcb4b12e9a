package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	ctx               context.Context
	factories         *testutils.FactorySet
	mockRecipeRepo    *mocks.MockRecipeRepositoryInterface
	mockFavoriteRepo  *mocks.MockMembershipRepositoryInterface
	mockCartRepo      *mocks.MockMembershipRepositoryInterface
	membershipService *service.MembershipService
	favorites         service.ToggleOperation
	cart              service.ToggleOperation
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.factories = testutils.NewFactorySet()
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.mockFavoriteRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockCartRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.membershipService = service.NewMembershipService(suite.mockRecipeRepo)
	suite.favorites = service.NewFavoriteToggle(suite.mockFavoriteRepo)
	suite.cart = service.NewCartToggle(suite.mockCartRepo)
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) TestRelations() {
	assert.Equal(suite.T(), "favorite", suite.favorites.Relation())
	assert.Equal(suite.T(), "shopping_cart", suite.cart.Relation())
	assert.ErrorIs(suite.T(), suite.favorites.ExistsError(), apperrors.ErrFavoriteExists)
	assert.ErrorIs(suite.T(), suite.cart.MissingError(), apperrors.ErrShoppingCartItemNotFound)
}

func (suite *MembershipServiceTestSuite) TestAddFavorite_Success() {
	recipe := suite.factories.Recipe.Create()
	userID := uuid.New()

	suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipe.ID).Return(recipe, nil)
	suite.mockFavoriteRepo.EXPECT().Exists(gomock.Any(), userID, recipe.ID).Return(false, nil)
	suite.mockFavoriteRepo.EXPECT().Add(gomock.Any(), userID, recipe.ID).Return(nil)

	resp, err := suite.membershipService.Add(suite.ctx, suite.favorites, userID, recipe.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), recipe.ID, resp.ID)
	assert.Equal(suite.T(), recipe.Name, resp.Name)
	assert.Equal(suite.T(), recipe.CookingTime, resp.CookingTime)
}

// Two adds in a row: the second one sees the pair already present.
func (suite *MembershipServiceTestSuite) TestAddTwice_Conflict() {
	for _, op := range []struct {
		name   string
		toggle func() service.ToggleOperation
		repo   func() *mocks.MockMembershipRepositoryInterface
		want   error
	}{
		{"favorite", func() service.ToggleOperation { return suite.favorites }, func() *mocks.MockMembershipRepositoryInterface { return suite.mockFavoriteRepo }, apperrors.ErrFavoriteExists},
		{"shopping cart", func() service.ToggleOperation { return suite.cart }, func() *mocks.MockMembershipRepositoryInterface { return suite.mockCartRepo }, apperrors.ErrShoppingCartItemExists},
	} {
		suite.Run(op.name, func() {
			recipe := suite.factories.Recipe.Create()
			userID := uuid.New()
			repo := op.repo()

			suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipe.ID).Return(recipe, nil).Times(2)
			gomock.InOrder(
				repo.EXPECT().Exists(gomock.Any(), userID, recipe.ID).Return(false, nil),
				repo.EXPECT().Add(gomock.Any(), userID, recipe.ID).Return(nil),
				repo.EXPECT().Exists(gomock.Any(), userID, recipe.ID).Return(true, nil),
			)

			_, err := suite.membershipService.Add(suite.ctx, op.toggle(), userID, recipe.ID)
			require.NoError(suite.T(), err)

			resp, err := suite.membershipService.Add(suite.ctx, op.toggle(), userID, recipe.ID)
			assert.Nil(suite.T(), resp)
			assert.ErrorIs(suite.T(), err, op.want)
			assert.True(suite.T(), apperrors.IsAlreadyExists(err))
		})
	}
}

func (suite *MembershipServiceTestSuite) TestAdd_RaceOnUniqueIndex() {
	recipe := suite.factories.Recipe.Create()
	userID := uuid.New()

	suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipe.ID).Return(recipe, nil)
	suite.mockCartRepo.EXPECT().Exists(gomock.Any(), userID, recipe.ID).Return(false, nil)
	suite.mockCartRepo.EXPECT().Add(gomock.Any(), userID, recipe.ID).Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.membershipService.Add(suite.ctx, suite.cart, userID, recipe.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrShoppingCartItemExists)
}

func (suite *MembershipServiceTestSuite) TestAdd_RecipeNotFound() {
	recipeID := uuid.New()
	suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipeID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.membershipService.Add(suite.ctx, suite.favorites, uuid.New(), recipeID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

func (suite *MembershipServiceTestSuite) TestAdd_RepositoryError() {
	recipe := suite.factories.Recipe.Create()
	suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipe.ID).Return(recipe, nil)
	suite.mockFavoriteRepo.EXPECT().Exists(gomock.Any(), gomock.Any(), recipe.ID).Return(false, errors.New("db down"))

	_, err := suite.membershipService.Add(suite.ctx, suite.favorites, uuid.New(), recipe.ID)

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to check favorite")
}

// Add, remove, remove: the second remove finds nothing to delete.
func (suite *MembershipServiceTestSuite) TestRemoveTwice_NotFound() {
	recipe := suite.factories.Recipe.Create()
	userID := uuid.New()

	suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipe.ID).Return(recipe, nil).Times(3)
	gomock.InOrder(
		suite.mockFavoriteRepo.EXPECT().Exists(gomock.Any(), userID, recipe.ID).Return(false, nil),
		suite.mockFavoriteRepo.EXPECT().Add(gomock.Any(), userID, recipe.ID).Return(nil),
		suite.mockFavoriteRepo.EXPECT().Remove(gomock.Any(), userID, recipe.ID).Return(true, nil),
		suite.mockFavoriteRepo.EXPECT().Remove(gomock.Any(), userID, recipe.ID).Return(false, nil),
	)

	_, err := suite.membershipService.Add(suite.ctx, suite.favorites, userID, recipe.ID)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.membershipService.Remove(suite.ctx, suite.favorites, userID, recipe.ID))

	err = suite.membershipService.Remove(suite.ctx, suite.favorites, userID, recipe.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFavoriteNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *MembershipServiceTestSuite) TestRemove_RecipeNotFound() {
	recipeID := uuid.New()
	suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipeID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.membershipService.Remove(suite.ctx, suite.cart, uuid.New(), recipeID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

func (suite *MembershipServiceTestSuite) TestRelationsAreIndependent() {
	recipe := suite.factories.Recipe.Create()
	userID := uuid.New()

	suite.mockRecipeRepo.EXPECT().GetByID(gomock.Any(), recipe.ID).Return(recipe, nil).Times(2)
	suite.mockFavoriteRepo.EXPECT().Exists(gomock.Any(), userID, recipe.ID).Return(false, nil)
	suite.mockFavoriteRepo.EXPECT().Add(gomock.Any(), userID, recipe.ID).Return(nil)
	suite.mockCartRepo.EXPECT().Remove(gomock.Any(), userID, recipe.ID).Return(false, nil)

	_, err := suite.membershipService.Add(suite.ctx, suite.favorites, userID, recipe.ID)
	require.NoError(suite.T(), err)

	err = suite.membershipService.Remove(suite.ctx, suite.cart, userID, recipe.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShoppingCartItemNotFound)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
