package repository

import (
	"context"

	"foodgram-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// membershipTable holds the queries shared by the user-to-recipe membership sets
type membershipTable struct {
	db     *gorm.DB
	model  func() interface{}
	newRow func(userID, recipeID uuid.UUID) interface{}
}

func (m membershipTable) exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(m.model()).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m membershipTable) add(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.db.WithContext(ctx).Create(m.newRow(userID, recipeID)).Error
}

func (m membershipTable) remove(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	result := m.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(m.model())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (m membershipTable) filterRecipeIDs(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if len(recipeIDs) == 0 {
		return ids, nil
	}
	err := m.db.WithContext(ctx).Model(m.model()).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FavoriteRepository handles database operations for favorites
type FavoriteRepository struct {
	table membershipTable
}

var _ MembershipRepositoryInterface = (*FavoriteRepository)(nil)

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{table: membershipTable{
		db:    db,
		model: func() interface{} { return &models.Favorite{} },
		newRow: func(userID, recipeID uuid.UUID) interface{} {
			return &models.Favorite{UserID: userID, RecipeID: recipeID}
		},
	}}
}

// Exists reports whether the user has favorited the recipe
func (r *FavoriteRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return r.table.exists(ctx, userID, recipeID)
}

// Add favorites the recipe for the user
func (r *FavoriteRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.table.add(ctx, userID, recipeID)
}

// Remove unfavorites the recipe. It returns false when there was nothing to remove.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return r.table.remove(ctx, userID, recipeID)
}

// FilterRecipeIDs returns the subset of recipeIDs the user has favorited
func (r *FavoriteRepository) FilterRecipeIDs(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) ([]uuid.UUID, error) {
	return r.table.filterRecipeIDs(ctx, userID, recipeIDs)
}

// ShoppingCartRepository handles database operations for shopping cart rows
type ShoppingCartRepository struct {
	table membershipTable
}

var _ MembershipRepositoryInterface = (*ShoppingCartRepository)(nil)

// NewShoppingCartRepository creates a new shopping cart repository
func NewShoppingCartRepository(db *gorm.DB) *ShoppingCartRepository {
	return &ShoppingCartRepository{table: membershipTable{
		db:    db,
		model: func() interface{} { return &models.ShoppingCartItem{} },
		newRow: func(userID, recipeID uuid.UUID) interface{} {
			return &models.ShoppingCartItem{UserID: userID, RecipeID: recipeID}
		},
	}}
}

// Exists reports whether the recipe is in the user's cart
func (r *ShoppingCartRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return r.table.exists(ctx, userID, recipeID)
}

// Add puts the recipe into the user's cart
func (r *ShoppingCartRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.table.add(ctx, userID, recipeID)
}

// Remove takes the recipe out of the cart. It returns false when it was not there.
func (r *ShoppingCartRepository) Remove(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return r.table.remove(ctx, userID, recipeID)
}

// FilterRecipeIDs returns the subset of recipeIDs in the user's cart
func (r *ShoppingCartRepository) FilterRecipeIDs(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) ([]uuid.UUID, error) {
	return r.table.filterRecipeIDs(ctx, userID, recipeIDs)
}
