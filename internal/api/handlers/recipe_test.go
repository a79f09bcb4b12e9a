package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"foodgram-backend/internal/api/handlers"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RecipeHandlerTestSuite defines the test suite for RecipeHandler and MembershipHandler
type RecipeHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	http              *testutils.HTTPTestSuite
	mockRecipeSvc     *mocks.MockRecipeServiceInterface
	mockShoppingSvc   *mocks.MockShoppingListServiceInterface
	mockMembershipSvc *mocks.MockMembershipServiceInterface
	favoriteToggle    service.ToggleOperation
	cartToggle        service.ToggleOperation
	userID            uuid.UUID
	token             string
}

func (suite *RecipeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.http = testutils.SetupHTTPTest()
	suite.mockRecipeSvc = mocks.NewMockRecipeServiceInterface(suite.ctrl)
	suite.mockShoppingSvc = mocks.NewMockShoppingListServiceInterface(suite.ctrl)
	suite.mockMembershipSvc = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.favoriteToggle = service.NewFavoriteToggle(mocks.NewMockMembershipRepositoryInterface(suite.ctrl))
	suite.cartToggle = service.NewCartToggle(mocks.NewMockMembershipRepositoryInterface(suite.ctrl))
	suite.userID = uuid.New()
	suite.token = suite.http.TokenFor(suite.T(), suite.userID)

	recipeHandler := handlers.NewRecipeHandler(suite.mockRecipeSvc, suite.mockShoppingSvc)
	favorites := handlers.NewMembershipHandler(suite.mockMembershipSvc, suite.favoriteToggle)
	cart := handlers.NewMembershipHandler(suite.mockMembershipSvc, suite.cartToggle)

	optional := suite.http.AuthMiddleware.OptionalAuth()
	required := suite.http.AuthMiddleware.RequireAuth()

	r := suite.http.Router
	r.GET("/recipes", optional, recipeHandler.ListRecipes)
	r.POST("/recipes", required, recipeHandler.CreateRecipe)
	r.GET("/recipes/download_shopping_cart", required, recipeHandler.DownloadShoppingCart)
	r.GET("/recipes/:id", optional, recipeHandler.GetRecipe)
	r.PATCH("/recipes/:id", required, recipeHandler.UpdateRecipe)
	r.DELETE("/recipes/:id", required, recipeHandler.DeleteRecipe)
	r.POST("/recipes/:id/favorite", required, favorites.Add)
	r.DELETE("/recipes/:id/favorite", required, favorites.Remove)
	r.POST("/recipes/:id/shopping_cart", required, cart.Add)
	r.DELETE("/recipes/:id/shopping_cart", required, cart.Remove)
}

func (suite *RecipeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecipeHandlerTestSuite) TestListRecipes_Anonymous() {
	resp := &service.RecipeListResponse{Results: []service.RecipeResponse{{ID: uuid.New(), Name: "Pancakes"}}, Count: 1, Page: 1, Limit: 6}
	suite.mockRecipeSvc.EXPECT().
		ListRecipes(gomock.Any(), &service.RecipeListQuery{}, gomock.Nil()).
		Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/recipes", nil)

	var got service.RecipeListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(1), got.Count)
	assert.Equal(suite.T(), "Pancakes", got.Results[0].Name)
}

func (suite *RecipeHandlerTestSuite) TestListRecipes_QueryParameters() {
	authorID := uuid.New()
	want := &service.RecipeListQuery{
		Page:             2,
		Limit:            10,
		AuthorID:         &authorID,
		TagSlugs:         []string{"breakfast", "lunch", "dinner"},
		IsFavorited:      true,
		IsInShoppingCart: false,
	}
	viewerID := suite.userID
	suite.mockRecipeSvc.EXPECT().
		ListRecipes(gomock.Any(), want, &viewerID).
		Return(&service.RecipeListResponse{Results: []service.RecipeResponse{}}, nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet,
		"/recipes?page=2&limit=10&author="+authorID.String()+"&tags=breakfast&tags=lunch,dinner&is_favorited=1&is_in_shopping_cart=0",
		nil, suite.token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RecipeHandlerTestSuite) TestListRecipes_BadParameters() {
	for _, url := range []string{"/recipes?page=abc", "/recipes?limit=1.5", "/recipes?author=nope"} {
		w := suite.http.MakeRequest(http.MethodGet, url, nil)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, url)
	}
}

func (suite *RecipeHandlerTestSuite) TestGetRecipe_NotFound() {
	id := uuid.New()
	suite.mockRecipeSvc.EXPECT().GetRecipe(gomock.Any(), id, gomock.Nil()).Return(nil, apperrors.ErrRecipeNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/recipes/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "recipe not found")
}

func (suite *RecipeHandlerTestSuite) TestGetRecipe_InvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/recipes/42", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid id")
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_Success() {
	tagID := uuid.New()
	ingredientID := uuid.New()
	body := map[string]interface{}{
		"tags":         []string{tagID.String()},
		"ingredients":  []map[string]interface{}{{"id": ingredientID.String(), "amount": 200}},
		"name":         "Pancakes",
		"image":        "recipes/images/pancakes.png",
		"text":         "Mix and fry.",
		"cooking_time": 20,
	}

	suite.mockRecipeSvc.EXPECT().
		CreateRecipe(gomock.Any(), suite.userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.CreateRecipeRequest) (*service.RecipeResponse, error) {
			assert.Equal(suite.T(), []uuid.UUID{tagID}, req.Tags)
			require.Len(suite.T(), req.Ingredients, 1)
			assert.Equal(suite.T(), ingredientID, req.Ingredients[0].ID)
			assert.Equal(suite.T(), 200, req.Ingredients[0].Amount)
			return &service.RecipeResponse{ID: uuid.New(), Name: req.Name}, nil
		})

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/recipes", body, suite.token)

	var got service.RecipeResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), "Pancakes", got.Name)
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_ValidationError() {
	suite.mockRecipeSvc.EXPECT().
		CreateRecipe(gomock.Any(), suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrRecipeDuplicateIngredient)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/recipes", map[string]interface{}{"name": "x"}, suite.token)

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	assert.Equal(suite.T(), "ingredients", got.Field)
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_Unauthenticated() {
	w := suite.http.MakeRequest(http.MethodPost, "/recipes", map[string]interface{}{"name": "x"})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *RecipeHandlerTestSuite) TestCreateRecipe_MalformedJSON() {
	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/recipes", "not an object", suite.token)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RecipeHandlerTestSuite) TestUpdateRecipe_PartialBody() {
	id := uuid.New()
	suite.mockRecipeSvc.EXPECT().
		UpdateRecipe(gomock.Any(), suite.userID, id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, req *service.UpdateRecipeRequest) (*service.RecipeResponse, error) {
			assert.Nil(suite.T(), req.Tags)
			assert.Nil(suite.T(), req.Ingredients)
			require.NotNil(suite.T(), req.CookingTime)
			assert.Equal(suite.T(), 5, *req.CookingTime)
			return &service.RecipeResponse{ID: id, CookingTime: 5}, nil
		})

	w := suite.http.MakeAuthenticatedRequest(http.MethodPatch, "/recipes/"+id.String(), map[string]interface{}{"cooking_time": 5}, suite.token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RecipeHandlerTestSuite) TestUpdateRecipe_Forbidden() {
	id := uuid.New()
	suite.mockRecipeSvc.EXPECT().UpdateRecipe(gomock.Any(), suite.userID, id, gomock.Any()).Return(nil, apperrors.ErrNotRecipeAuthor)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPatch, "/recipes/"+id.String(), map[string]interface{}{"name": "x"}, suite.token)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "only the author")
}

func (suite *RecipeHandlerTestSuite) TestDeleteRecipe() {
	id := uuid.New()
	suite.mockRecipeSvc.EXPECT().DeleteRecipe(gomock.Any(), suite.userID, id).Return(nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodDelete, "/recipes/"+id.String(), nil, suite.token)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.String())
}

func (suite *RecipeHandlerTestSuite) TestDownloadShoppingCart() {
	suite.mockShoppingSvc.EXPECT().Download(gomock.Any(), suite.userID).
		Return([]byte("Shopping list from Foodgram:\n\nflour, 500 g\n"), nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodGet, "/recipes/download_shopping_cart", nil, suite.token)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "attachment; filename=shopping-list.txt", w.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), "Shopping list from Foodgram:\n\nflour, 500 g\n", w.Body.String())
}

func (suite *RecipeHandlerTestSuite) TestDownloadShoppingCart_Unauthenticated() {
	w := suite.http.MakeRequest(http.MethodGet, "/recipes/download_shopping_cart", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// Each route is bound to its own toggle at wiring time.
func (suite *RecipeHandlerTestSuite) TestMembershipRoutesBindTheirToggle() {
	recipeID := uuid.New()
	short := &service.RecipeShortResponse{ID: recipeID, Name: "Pancakes"}

	suite.mockMembershipSvc.EXPECT().Add(gomock.Any(), suite.favoriteToggle, suite.userID, recipeID).Return(short, nil)
	suite.mockMembershipSvc.EXPECT().Add(gomock.Any(), suite.cartToggle, suite.userID, recipeID).Return(short, nil)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, "/recipes/"+recipeID.String()+"/favorite", nil, suite.token)
	var got service.RecipeShortResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), recipeID, got.ID)

	w = suite.http.MakeAuthenticatedRequest(http.MethodPost, "/recipes/"+recipeID.String()+"/shopping_cart", nil, suite.token)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *RecipeHandlerTestSuite) TestMembershipStatusMapping() {
	recipeID := uuid.New()
	url := "/recipes/" + recipeID.String() + "/favorite"

	gomock.InOrder(
		suite.mockMembershipSvc.EXPECT().Add(gomock.Any(), suite.favoriteToggle, suite.userID, recipeID).Return(nil, apperrors.ErrFavoriteExists),
		suite.mockMembershipSvc.EXPECT().Remove(gomock.Any(), suite.favoriteToggle, suite.userID, recipeID).Return(nil),
		suite.mockMembershipSvc.EXPECT().Remove(gomock.Any(), suite.favoriteToggle, suite.userID, recipeID).Return(apperrors.ErrFavoriteNotFound),
	)

	w := suite.http.MakeAuthenticatedRequest(http.MethodPost, url, nil, suite.token)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "favorite already exists")

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, url, nil, suite.token)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = suite.http.MakeAuthenticatedRequest(http.MethodDelete, url, nil, suite.token)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "favorite not found")
}

func (suite *RecipeHandlerTestSuite) TestInternalError() {
	suite.mockRecipeSvc.EXPECT().ListRecipes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db failure"))

	w := suite.http.MakeRequest(http.MethodGet, "/recipes", nil)

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusInternalServerError, &got)
	assert.Equal(suite.T(), "db failure", got.Details)
}

func TestRecipeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeHandlerTestSuite))
}
