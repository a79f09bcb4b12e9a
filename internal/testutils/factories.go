package testutils

import (
	"fmt"
	"time"

	"foodgram-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Email and username are unique per call.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     fmt.Sprintf("cook-%s@test.com", suffix),
		Username:  "cook_" + suffix,
		FirstName: "John",
		LastName:  "Doe",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// Admin creates a user with administrator rights
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.IsAdmin = true
	return user
}

// IngredientFactory provides methods to create test Ingredient data
type IngredientFactory struct{}

// NewIngredientFactory creates a new IngredientFactory
func NewIngredientFactory() *IngredientFactory {
	return &IngredientFactory{}
}

// Create creates a test Ingredient with default values
func (f *IngredientFactory) Create() *models.Ingredient {
	return f.WithNameAndUnit("flour", "g")
}

// WithNameAndUnit creates an ingredient with the given name and measurement unit
func (f *IngredientFactory) WithNameAndUnit(name, unit string) *models.Ingredient {
	return &models.Ingredient{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            name,
		MeasurementUnit: unit,
	}
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with a unique slug
func (f *TagFactory) Create() *models.Tag {
	id := uuid.New()
	return f.withID(id, "Breakfast", "breakfast-"+id.String()[:8])
}

// WithSlug creates a tag with the given slug
func (f *TagFactory) WithSlug(slug string) *models.Tag {
	return f.withID(uuid.New(), slug, slug)
}

func (f *TagFactory) withID(id uuid.UUID, name, slug string) *models.Tag {
	return &models.Tag{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  name,
		Color: "#E26C2D",
		Slug:  slug,
	}
}

// RecipeFactory provides methods to create test Recipe data
type RecipeFactory struct{}

// NewRecipeFactory creates a new RecipeFactory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Create creates a test Recipe with default values
func (f *RecipeFactory) Create() *models.Recipe {
	return &models.Recipe{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AuthorID:    uuid.New(),
		Name:        "Pancakes",
		Text:        "Mix everything and fry on a hot pan.",
		Image:       "recipes/images/pancakes.png",
		CookingTime: 20,
	}
}

// WithAuthor creates a recipe belonging to the given author
func (f *RecipeFactory) WithAuthor(authorID uuid.UUID) *models.Recipe {
	recipe := f.Create()
	recipe.AuthorID = authorID
	return recipe
}

// Line builds an ingredient line for a recipe
func (f *RecipeFactory) Line(ingredientID uuid.UUID, amount int) models.RecipeIngredient {
	return models.RecipeIngredient{IngredientID: ingredientID, Amount: amount}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Ingredient *IngredientFactory
	Tag        *TagFactory
	Recipe     *RecipeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Ingredient: NewIngredientFactory(),
		Tag:        NewTagFactory(),
		Recipe:     NewRecipeFactory(),
	}
}
