package service

import (
	"time"

	"foodgram-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserResponse represents a user profile as seen by a viewer
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Results []UserResponse `json:"results"`
	Count   int64          `json:"count"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

// IngredientResponse represents a catalog ingredient
type IngredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}

// TagResponse represents a tag
type TagResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Slug  string    `json:"slug"`
}

// RecipeIngredientResponse is one line of a recipe, flattened with its ingredient
type RecipeIngredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// RecipeResponse represents a full recipe as seen by a viewer
type RecipeResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Tags             []TagResponse              `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
	PubDate          time.Time                  `json:"pub_date"`
}

// RecipeListResponse represents a paginated list of recipes
type RecipeListResponse struct {
	Results []RecipeResponse `json:"results"`
	Count   int64            `json:"count"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// RecipeShortResponse is the compact recipe used by memberships and subscriptions
type RecipeShortResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// SubscriptionResponse is a followed author with a preview of their recipes
type SubscriptionResponse struct {
	UserResponse
	Recipes      []RecipeShortResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

// SubscriptionListResponse represents a paginated list of followed authors
type SubscriptionListResponse struct {
	Results []SubscriptionResponse `json:"results"`
	Count   int64                  `json:"count"`
	Page    int                    `json:"page"`
	Limit   int                    `json:"limit"`
}

func toUserResponse(user *models.User, isSubscribed bool) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

func toIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func toTagResponse(tag *models.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func toRecipeShortResponse(recipe *models.Recipe) RecipeShortResponse {
	return RecipeShortResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

// viewerFlags holds the per-viewer annotations for a batch of recipes
type viewerFlags struct {
	favorited  map[uuid.UUID]bool
	inCart     map[uuid.UUID]bool
	subscribed map[uuid.UUID]bool
}

func toRecipeResponse(recipe *models.Recipe, flags viewerFlags) RecipeResponse {
	tags := make([]TagResponse, 0, len(recipe.Tags))
	for i := range recipe.Tags {
		tags = append(tags, toTagResponse(&recipe.Tags[i]))
	}

	lines := make([]RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		item := RecipeIngredientResponse{ID: line.IngredientID, Amount: line.Amount}
		if line.Ingredient != nil {
			item.Name = line.Ingredient.Name
			item.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		lines = append(lines, item)
	}

	var author UserResponse
	if recipe.Author != nil {
		author = toUserResponse(recipe.Author, flags.subscribed[recipe.AuthorID])
	} else {
		author = UserResponse{ID: recipe.AuthorID}
	}

	return RecipeResponse{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      lines,
		IsFavorited:      flags.favorited[recipe.ID],
		IsInShoppingCart: flags.inCart[recipe.ID],
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
		PubDate:          recipe.PubDate,
	}
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
