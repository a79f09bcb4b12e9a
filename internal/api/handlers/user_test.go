package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserHandlerTestSuite drives the real UserService over mocked repositories,
// and a mocked SubscriptionService for the subscribe endpoints
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	http                 *testutils.HTTPTestSuite
	mockUserRepo         *mocks.MockUserRepositoryInterface
	mockSubscriptionRepo *mocks.MockSubscriptionRepositoryInterface
	mockSubscriptionSvc  *mocks.MockSubscriptionServiceInterface
	userID               uuid.UUID
	token                string
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.http = testutils.SetupHTTPTest()
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockSubscriptionRepo = mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl)
	suite.mockSubscriptionSvc = mocks.NewMockSubscriptionServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.token = suite.http.TokenFor(suite.T(), suite.userID)

	userService := service.NewUserService(suite.mockUserRepo, suite.mockSubscriptionRepo, service.NewPaginator(6, 100), validator.New())
	handler := handlers.NewUserHandler(userService, suite.mockSubscriptionSvc)

	optional := suite.http.AuthMiddleware.OptionalAuth()
	required := suite.http.AuthMiddleware.RequireAuth()

	r := suite.http.Router
	r.GET("/users", optional, handler.ListUsers)
	r.POST("/users", handler.CreateUser)
	r.GET("/users/me", required, handler.Me)
	r.GET("/users/subscriptions", required, handler.ListSubscriptions)
	r.GET("/users/:id", optional, handler.GetUser)
	r.POST("/users/:id/subscribe", required, handler.Subscribe)
	r.DELETE("/users/:id/subscribe", required, handler.Unsubscribe)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	newID := uuid.New()
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(suite.T(), "cook@example.com", user.Email)
			user.ID = newID
			return nil
		})

	body := map[string]string{
		"email":      "cook@example.com",
		"username":   "cook",
		"first_name": "Julia",
		"last_name":  "Child",
	}
	w := suite.http.MakeRequest(http.MethodPost, "/users", body)

	var got service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), newID, got.ID)
	assert.Equal(suite.T(), "cook", got.Username)
	assert.False(suite.T(), got.IsSubscribed)
}

func (suite *UserHandlerTestSuite) TestCreateUser_InvalidUsername() {
	body := map[string]string{
		"email":      "cook@example.com",
		"username":   "bad name!",
		"first_name": "Julia",
		"last_name":  "Child",
	}
	w := suite.http.MakeRequest(http.MethodPost, "/users", body)

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	assert.Equal(suite.T(), "username", got.Field)
}

func (suite *UserHandlerTestSuite) TestCreateUser_Duplicate() {
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	body := map[string]string{
		"email":      "cook@example.com",
		"username":   "cook",
		"first_name": "Julia",
		"last_name":  "Child",
	}
	w := suite.http.MakeRequest(http.MethodPost, "/users", body)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "user already exists")
}

func (suite *UserHandlerTestSuite) TestGetUser_AnonymousSkipsSubscriptionLookup() {
	authorID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), authorID).
		Return(&models.User{BaseModel: models.BaseModel{ID: authorID}, Username: "chef"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/users/"+authorID.String(), nil)

	var got service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "chef", got.Username)
	assert.False(suite.T(), got.IsSubscribed)
}

func (suite *UserHandlerTestSuite) TestGetUser_SubscribedViewer() {
	authorID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), authorID).
		Return(&models.User{BaseModel: models.BaseModel{ID: authorID}, Username: "chef"}, nil)
	suite.mockSubscriptionRepo.EXPECT().FilterAuthorIDs(gomock.Any(), suite.userID, []uuid.UUID{authorID}).
		Return([]uuid.UUID{authorID}, nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/users/"+authorID.String(), nil, suite.token)

	var got service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.True(suite.T(), got.IsSubscribed)
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/users/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "user not found")
}

func (suite *UserHandlerTestSuite) TestListUsers_Pagination() {
	suite.mockUserRepo.EXPECT().GetAll(gomock.Any(), 10, 10).Return([]models.User{}, int64(12), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/users?page=2&limit=10", nil)

	var got service.UserListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(12), got.Count)
	assert.Equal(suite.T(), 2, got.Page)
	assert.Empty(suite.T(), got.Results)
}

func (suite *UserHandlerTestSuite) TestListUsers_InvalidPage() {
	w := suite.http.MakeRequest(http.MethodGet, "/users?page=-1", nil)

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	assert.Equal(suite.T(), "pagination", got.Field)
}

func (suite *UserHandlerTestSuite) TestMe() {
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: suite.userID}, Username: "me"}, nil)
	suite.mockSubscriptionRepo.EXPECT().FilterAuthorIDs(gomock.Any(), suite.userID, []uuid.UUID{suite.userID}).
		Return(nil, nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/users/me", nil, suite.token)

	var got service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), suite.userID, got.ID)
}

func (suite *UserHandlerTestSuite) TestMe_Unauthenticated() {
	w := suite.http.MakeRequest(http.MethodGet, "/users/me", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodGet, "/users/me", nil, "not-a-jwt")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *UserHandlerTestSuite) TestSubscribe() {
	authorID := uuid.New()
	suite.mockSubscriptionSvc.EXPECT().Subscribe(gomock.Any(), suite.userID, authorID, 3).
		Return(&service.SubscriptionResponse{
			UserResponse: service.UserResponse{ID: authorID, Username: "chef", IsSubscribed: true},
			Recipes:      []service.RecipeShortResponse{{Name: "Soup"}},
			RecipesCount: 7,
		}, nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/users/"+authorID.String()+"/subscribe?recipes_limit=3", nil, suite.token)

	var got service.SubscriptionResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.True(suite.T(), got.IsSubscribed)
	assert.Equal(suite.T(), int64(7), got.RecipesCount)
	require.Len(suite.T(), got.Recipes, 1)
}

func (suite *UserHandlerTestSuite) TestSubscribe_ErrorMapping() {
	authorID := uuid.New()
	url := "/users/" + authorID.String() + "/subscribe"

	gomock.InOrder(
		suite.mockSubscriptionSvc.EXPECT().Subscribe(gomock.Any(), suite.userID, authorID, 0).Return(nil, apperrors.ErrSelfSubscription),
		suite.mockSubscriptionSvc.EXPECT().Subscribe(gomock.Any(), suite.userID, authorID, 0).Return(nil, apperrors.ErrSubscriptionExists),
		suite.mockSubscriptionSvc.EXPECT().Subscribe(gomock.Any(), suite.userID, authorID, 0).Return(nil, apperrors.ErrUserNotFound),
	)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, url, nil, suite.token)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodPost, url, nil, suite.token)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodPost, url, nil, suite.token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestSubscribe_NegativeRecipesLimit() {
	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/users/"+uuid.NewString()+"/subscribe?recipes_limit=-1", nil, suite.token)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "recipes_limit")
}

func (suite *UserHandlerTestSuite) TestUnsubscribe() {
	authorID := uuid.New()
	gomock.InOrder(
		suite.mockSubscriptionSvc.EXPECT().Unsubscribe(gomock.Any(), suite.userID, authorID).Return(nil),
		suite.mockSubscriptionSvc.EXPECT().Unsubscribe(gomock.Any(), suite.userID, authorID).Return(apperrors.ErrSubscriptionNotFound),
	)

	w := suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/users/"+authorID.String()+"/subscribe", nil, suite.token)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/users/"+authorID.String()+"/subscribe", nil, suite.token)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "subscription not found")
}

func (suite *UserHandlerTestSuite) TestListSubscriptions() {
	suite.mockSubscriptionSvc.EXPECT().ListSubscriptions(gomock.Any(), suite.userID, 1, 5, 2).
		Return(&service.SubscriptionListResponse{Results: []service.SubscriptionResponse{}, Count: 0, Page: 1, Limit: 5}, nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/users/subscriptions?page=1&limit=5&recipes_limit=2", nil, suite.token)

	var got service.SubscriptionListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 5, got.Limit)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
