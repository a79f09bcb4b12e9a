package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*UserResponse, error)
	ListUsers(ctx context.Context, viewerID *uuid.UUID, page, limit int) (*UserListResponse, error)
}

// IngredientServiceInterface defines the interface for the ingredient catalog
type IngredientServiceInterface interface {
	ListIngredients(ctx context.Context, namePrefix string) ([]IngredientResponse, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*IngredientResponse, error)
}

// TagServiceInterface defines the interface for the tag catalog
type TagServiceInterface interface {
	ListTags(ctx context.Context) ([]TagResponse, error)
	GetTag(ctx context.Context, id uuid.UUID) (*TagResponse, error)
}

// RecipeServiceInterface defines the interface for the recipe aggregate
type RecipeServiceInterface interface {
	CreateRecipe(ctx context.Context, authorID uuid.UUID, req *CreateRecipeRequest) (*RecipeResponse, error)
	UpdateRecipe(ctx context.Context, requesterID, recipeID uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error)
	DeleteRecipe(ctx context.Context, requesterID, recipeID uuid.UUID) error
	GetRecipe(ctx context.Context, recipeID uuid.UUID, viewerID *uuid.UUID) (*RecipeResponse, error)
	ListRecipes(ctx context.Context, query *RecipeListQuery, viewerID *uuid.UUID) (*RecipeListResponse, error)
}

// MembershipServiceInterface adds and removes recipes from a membership set chosen by op
type MembershipServiceInterface interface {
	Add(ctx context.Context, op ToggleOperation, userID, recipeID uuid.UUID) (*RecipeShortResponse, error)
	Remove(ctx context.Context, op ToggleOperation, userID, recipeID uuid.UUID) error
}

// ShoppingListServiceInterface defines the interface for the shopping list aggregator
type ShoppingListServiceInterface interface {
	Build(ctx context.Context, userID uuid.UUID) ([]ShoppingListItem, error)
	Download(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// SubscriptionServiceInterface defines the interface for author subscriptions
type SubscriptionServiceInterface interface {
	Subscribe(ctx context.Context, userID, authorID uuid.UUID, recipesLimit int) (*SubscriptionResponse, error)
	Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error
	ListSubscriptions(ctx context.Context, userID uuid.UUID, page, limit, recipesLimit int) (*SubscriptionListResponse, error)
}
