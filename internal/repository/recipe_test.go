//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RecipeRepositoryTestSuite tests the RecipeRepository together with the
// membership tables that hang off recipes
type RecipeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RecipeRepository
	favorites     *FavoriteRepository
	cart          *ShoppingCartRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	author *models.User
	flour  *models.Ingredient
	milk   *models.Ingredient
	eggs   *models.Ingredient
	tagA   *models.Tag
	tagB   *models.Tag
}

// SetupSuite runs before all tests in the suite
func (suite *RecipeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRecipeRepository(suite.baseTestSuite.DB)
	suite.favorites = NewFavoriteRepository(suite.baseTestSuite.DB)
	suite.cart = NewShoppingCartRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *RecipeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds an author, three ingredients and two tags
func (suite *RecipeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	suite.author = suite.factories.User.Create()
	suite.Require().NoError(db.Create(suite.author).Error)

	suite.flour = suite.factories.Ingredient.WithNameAndUnit("flour", "g")
	suite.milk = suite.factories.Ingredient.WithNameAndUnit("milk", "ml")
	suite.eggs = suite.factories.Ingredient.WithNameAndUnit("egg", "pcs")
	for _, ingredient := range []*models.Ingredient{suite.flour, suite.milk, suite.eggs} {
		suite.Require().NoError(db.Create(ingredient).Error)
	}

	suite.tagA = suite.factories.Tag.WithSlug("breakfast")
	suite.tagB = suite.factories.Tag.WithSlug("dinner")
	suite.Require().NoError(db.Create(suite.tagA).Error)
	suite.Require().NoError(db.Create(suite.tagB).Error)
}

// TearDownTest runs after each test
func (suite *RecipeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RecipeRepositoryTestSuite) createRecipe(name string, tags []uuid.UUID, lines ...models.RecipeIngredient) *models.Recipe {
	recipe := suite.factories.Recipe.WithAuthor(suite.author.ID)
	recipe.Name = name
	suite.Require().NoError(suite.repo.Create(suite.ctx, recipe, tags, lines))
	return recipe
}

func (suite *RecipeRepositoryTestSuite) TestCreateAndGetRoundTrip() {
	recipe := suite.createRecipe("Pancakes",
		[]uuid.UUID{suite.tagA.ID, suite.tagB.ID},
		suite.factories.Recipe.Line(suite.milk.ID, 250),
		suite.factories.Recipe.Line(suite.flour.ID, 200),
	)

	got, err := suite.repo.GetByID(suite.ctx, recipe.ID)

	suite.Require().NoError(err)
	suite.Equal("Pancakes", got.Name)
	suite.Require().NotNil(got.Author)
	suite.Equal(suite.author.Username, got.Author.Username)
	suite.NotZero(got.PubDate)

	suite.Require().Len(got.Tags, 2)
	suite.ElementsMatch([]uuid.UUID{suite.tagA.ID, suite.tagB.ID}, []uuid.UUID{got.Tags[0].ID, got.Tags[1].ID})

	// lines come back in the order they were given
	suite.Require().Len(got.Ingredients, 2)
	suite.Equal(suite.milk.ID, got.Ingredients[0].IngredientID)
	suite.Equal(250, got.Ingredients[0].Amount)
	suite.Require().NotNil(got.Ingredients[0].Ingredient)
	suite.Equal("ml", got.Ingredients[0].Ingredient.MeasurementUnit)
	suite.Equal(suite.flour.ID, got.Ingredients[1].IngredientID)
}

func (suite *RecipeRepositoryTestSuite) TestCreateRejectsDuplicateLine() {
	recipe := suite.factories.Recipe.WithAuthor(suite.author.ID)

	err := suite.repo.Create(suite.ctx, recipe, []uuid.UUID{suite.tagA.ID}, []models.RecipeIngredient{
		suite.factories.Recipe.Line(suite.flour.ID, 100),
		suite.factories.Recipe.Line(suite.flour.ID, 200),
	})

	suite.Error(err)
	suite.True(IsUniqueViolation(err))

	// the transaction left nothing behind
	var count int64
	suite.baseTestSuite.DB.Model(&models.Recipe{}).Count(&count)
	suite.Zero(count)
}

func (suite *RecipeRepositoryTestSuite) TestUpdateReplacesLinesAndTags() {
	recipe := suite.createRecipe("Pancakes",
		[]uuid.UUID{suite.tagA.ID},
		suite.factories.Recipe.Line(suite.flour.ID, 200),
		suite.factories.Recipe.Line(suite.milk.ID, 250),
	)

	recipe.Name = "Crepes"
	recipe.CookingTime = 15
	err := suite.repo.Update(suite.ctx, recipe,
		[]uuid.UUID{suite.tagB.ID},
		[]models.RecipeIngredient{suite.factories.Recipe.Line(suite.eggs.ID, 3)},
	)
	suite.Require().NoError(err)

	got, err := suite.repo.GetByID(suite.ctx, recipe.ID)
	suite.Require().NoError(err)
	suite.Equal("Crepes", got.Name)
	suite.Equal(15, got.CookingTime)
	suite.Require().Len(got.Tags, 1)
	suite.Equal(suite.tagB.ID, got.Tags[0].ID)
	suite.Require().Len(got.Ingredients, 1)
	suite.Equal(suite.eggs.ID, got.Ingredients[0].IngredientID)
	suite.Equal(3, got.Ingredients[0].Amount)
}

func (suite *RecipeRepositoryTestSuite) TestUpdateNilSetsLeaveAggregateUntouched() {
	recipe := suite.createRecipe("Pancakes",
		[]uuid.UUID{suite.tagA.ID},
		suite.factories.Recipe.Line(suite.flour.ID, 200),
	)

	recipe.Text = "New method."
	suite.Require().NoError(suite.repo.Update(suite.ctx, recipe, nil, nil))

	got, err := suite.repo.GetByID(suite.ctx, recipe.ID)
	suite.Require().NoError(err)
	suite.Equal("New method.", got.Text)
	suite.Len(got.Tags, 1)
	suite.Len(got.Ingredients, 1)
}

func (suite *RecipeRepositoryTestSuite) TestUpdateNotFound() {
	recipe := suite.factories.Recipe.WithAuthor(suite.author.ID)

	err := suite.repo.Update(suite.ctx, recipe, nil, nil)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *RecipeRepositoryTestSuite) TestDeleteCascades() {
	recipe := suite.createRecipe("Pancakes",
		[]uuid.UUID{suite.tagA.ID},
		suite.factories.Recipe.Line(suite.flour.ID, 200),
	)
	reader := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(reader).Error)
	suite.Require().NoError(suite.favorites.Add(suite.ctx, reader.ID, recipe.ID))
	suite.Require().NoError(suite.cart.Add(suite.ctx, reader.ID, recipe.ID))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, recipe.ID))

	_, err := suite.repo.GetByID(suite.ctx, recipe.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	db := suite.baseTestSuite.DB
	for _, model := range []interface{}{&models.RecipeTag{}, &models.RecipeIngredient{}, &models.Favorite{}, &models.ShoppingCartItem{}} {
		var count int64
		db.Model(model).Where("recipe_id = ?", recipe.ID).Count(&count)
		suite.Zero(count)
	}

	// tags and ingredients are not owned by the recipe
	var tags, ingredients int64
	db.Model(&models.Tag{}).Count(&tags)
	db.Model(&models.Ingredient{}).Count(&ingredients)
	suite.Equal(int64(2), tags)
	suite.Equal(int64(3), ingredients)

	suite.ErrorIs(suite.repo.Delete(suite.ctx, recipe.ID), gorm.ErrRecordNotFound)
}

func (suite *RecipeRepositoryTestSuite) TestGetAllFilters() {
	breakfast := suite.createRecipe("Omelette", []uuid.UUID{suite.tagA.ID}, suite.factories.Recipe.Line(suite.eggs.ID, 3))
	time.Sleep(10 * time.Millisecond)
	dinner := suite.createRecipe("Stew", []uuid.UUID{suite.tagB.ID}, suite.factories.Recipe.Line(suite.flour.ID, 50))
	time.Sleep(10 * time.Millisecond)
	both := suite.createRecipe("Porridge", []uuid.UUID{suite.tagA.ID, suite.tagB.ID}, suite.factories.Recipe.Line(suite.milk.ID, 300))

	reader := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(reader).Error)
	suite.Require().NoError(suite.favorites.Add(suite.ctx, reader.ID, breakfast.ID))
	suite.Require().NoError(suite.cart.Add(suite.ctx, reader.ID, dinner.ID))

	ids := func(recipes []models.Recipe) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.ID)
		}
		return out
	}

	suite.Run("newest first", func() {
		recipes, total, err := suite.repo.GetAll(suite.ctx, RecipeFilter{}, 10, 0)
		suite.Require().NoError(err)
		suite.Equal(int64(3), total)
		suite.Equal([]uuid.UUID{both.ID, dinner.ID, breakfast.ID}, ids(recipes))
	})

	suite.Run("page", func() {
		recipes, total, err := suite.repo.GetAll(suite.ctx, RecipeFilter{}, 1, 1)
		suite.Require().NoError(err)
		suite.Equal(int64(3), total)
		suite.Equal([]uuid.UUID{dinner.ID}, ids(recipes))
	})

	suite.Run("tags any-of without duplicates", func() {
		recipes, total, err := suite.repo.GetAll(suite.ctx, RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}}, 10, 0)
		suite.Require().NoError(err)
		suite.Equal(int64(3), total)
		suite.Len(recipes, 3)
	})

	suite.Run("single tag", func() {
		recipes, _, err := suite.repo.GetAll(suite.ctx, RecipeFilter{TagSlugs: []string{"breakfast"}}, 10, 0)
		suite.Require().NoError(err)
		suite.ElementsMatch([]uuid.UUID{breakfast.ID, both.ID}, ids(recipes))
	})

	suite.Run("favorited", func() {
		recipes, total, err := suite.repo.GetAll(suite.ctx, RecipeFilter{FavoritedBy: &reader.ID}, 10, 0)
		suite.Require().NoError(err)
		suite.Equal(int64(1), total)
		suite.Equal([]uuid.UUID{breakfast.ID}, ids(recipes))
	})

	suite.Run("in cart", func() {
		recipes, _, err := suite.repo.GetAll(suite.ctx, RecipeFilter{InCartOf: &reader.ID}, 10, 0)
		suite.Require().NoError(err)
		suite.Equal([]uuid.UUID{dinner.ID}, ids(recipes))
	})

	suite.Run("author", func() {
		stranger := uuid.New()
		recipes, total, err := suite.repo.GetAll(suite.ctx, RecipeFilter{AuthorID: &stranger}, 10, 0)
		suite.Require().NoError(err)
		suite.Zero(total)
		suite.Empty(recipes)
	})
}

func (suite *RecipeRepositoryTestSuite) TestAuthorQueries() {
	suite.createRecipe("One", []uuid.UUID{suite.tagA.ID}, suite.factories.Recipe.Line(suite.flour.ID, 1))
	time.Sleep(10 * time.Millisecond)
	latest := suite.createRecipe("Two", []uuid.UUID{suite.tagA.ID}, suite.factories.Recipe.Line(suite.flour.ID, 2))

	recipes, err := suite.repo.GetByAuthorID(suite.ctx, suite.author.ID, 1)
	suite.Require().NoError(err)
	suite.Require().Len(recipes, 1)
	suite.Equal(latest.ID, recipes[0].ID)

	all, err := suite.repo.GetByAuthorID(suite.ctx, suite.author.ID, 0)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	other := uuid.New()
	counts, err := suite.repo.CountByAuthorIDs(suite.ctx, []uuid.UUID{suite.author.ID, other})
	suite.Require().NoError(err)
	suite.Equal(int64(2), counts[suite.author.ID])
	suite.Zero(counts[other])
}

func (suite *RecipeRepositoryTestSuite) TestShoppingCartLines() {
	pancakes := suite.createRecipe("Pancakes", []uuid.UUID{suite.tagA.ID},
		suite.factories.Recipe.Line(suite.flour.ID, 200),
		suite.factories.Recipe.Line(suite.milk.ID, 250),
	)
	bread := suite.createRecipe("Bread", []uuid.UUID{suite.tagA.ID},
		suite.factories.Recipe.Line(suite.flour.ID, 300),
	)
	suite.createRecipe("Omelette", []uuid.UUID{suite.tagA.ID},
		suite.factories.Recipe.Line(suite.eggs.ID, 3),
	)

	shopper := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(shopper).Error)
	suite.Require().NoError(suite.cart.Add(suite.ctx, shopper.ID, pancakes.ID))
	suite.Require().NoError(suite.cart.Add(suite.ctx, shopper.ID, bread.ID))

	lines, err := suite.repo.GetShoppingCartLines(suite.ctx, shopper.ID)

	suite.Require().NoError(err)
	suite.Len(lines, 3)
	total := map[string]int{}
	for _, line := range lines {
		suite.Require().NotNil(line.Ingredient)
		total[line.Ingredient.Name] += line.Amount
	}
	suite.Equal(map[string]int{"flour": 500, "milk": 250}, total)

	empty, err := suite.repo.GetShoppingCartLines(suite.ctx, uuid.New())
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *RecipeRepositoryTestSuite) TestMembershipTables() {
	recipe := suite.createRecipe("Pancakes", []uuid.UUID{suite.tagA.ID}, suite.factories.Recipe.Line(suite.flour.ID, 200))
	reader := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(reader).Error)

	suite.Require().NoError(suite.favorites.Add(suite.ctx, reader.ID, recipe.ID))

	exists, err := suite.favorites.Exists(suite.ctx, reader.ID, recipe.ID)
	suite.Require().NoError(err)
	suite.True(exists)

	// the relations are independent
	inCart, err := suite.cart.Exists(suite.ctx, reader.ID, recipe.ID)
	suite.Require().NoError(err)
	suite.False(inCart)

	err = suite.favorites.Add(suite.ctx, reader.ID, recipe.ID)
	suite.True(IsUniqueViolation(err))

	ids, err := suite.favorites.FilterRecipeIDs(suite.ctx, reader.ID, []uuid.UUID{recipe.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{recipe.ID}, ids)

	removed, err := suite.favorites.Remove(suite.ctx, reader.ID, recipe.ID)
	suite.Require().NoError(err)
	suite.True(removed)

	removed, err = suite.favorites.Remove(suite.ctx, reader.ID, recipe.ID)
	suite.Require().NoError(err)
	suite.False(removed)
}

// TestRecipeRepositoryTestSuite runs the test suite
func TestRecipeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeRepositoryTestSuite))
}
