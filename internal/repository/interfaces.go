package repository

import (
	"context"

	"foodgram-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.User, int64, error)
}

// IngredientRepositoryInterface defines the interface for ingredient catalog operations
type IngredientRepositoryInterface interface {
	GetAll(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
}

// TagRepositoryInterface defines the interface for tag catalog operations
type TagRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error)
}

// RecipeRepositoryInterface defines the interface for the recipe aggregate
type RecipeRepositoryInterface interface {
	Create(ctx context.Context, recipe *models.Recipe, tagIDs []uuid.UUID, lines []models.RecipeIngredient) error
	Update(ctx context.Context, recipe *models.Recipe, tagIDs []uuid.UUID, lines []models.RecipeIngredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	GetAll(ctx context.Context, filter RecipeFilter, limit, offset int) ([]models.Recipe, int64, error)
	GetByAuthorID(ctx context.Context, authorID uuid.UUID, limit int) ([]models.Recipe, error)
	CountByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	GetShoppingCartLines(ctx context.Context, userID uuid.UUID) ([]models.RecipeIngredient, error)
}

// MembershipRepositoryInterface is a user-to-recipe membership set (favorites or shopping cart)
type MembershipRepositoryInterface interface {
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, recipeID uuid.UUID) error
	Remove(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	FilterRecipeIDs(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) ([]uuid.UUID, error)
}

// SubscriptionRepositoryInterface defines the interface for follower/author relations
type SubscriptionRepositoryInterface interface {
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	Create(ctx context.Context, subscription *models.Subscription) error
	Delete(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	GetAuthors(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	FilterAuthorIDs(ctx context.Context, userID uuid.UUID, authorIDs []uuid.UUID) ([]uuid.UUID, error)
}
