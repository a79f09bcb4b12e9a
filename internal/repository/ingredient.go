package repository

import (
	"context"
	"strings"

	"foodgram-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientRepository handles database operations for the ingredient catalog
type IngredientRepository struct {
	db *gorm.DB
}

var _ IngredientRepositoryInterface = (*IngredientRepository)(nil)

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// GetAll lists ingredients ordered by name, optionally filtered by a case-insensitive name prefix
func (r *IngredientRepository) GetAll(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	query := r.db.WithContext(ctx).Model(&models.Ingredient{})
	if prefix := strings.TrimSpace(namePrefix); prefix != "" {
		query = query.Where("name ILIKE ?", escapeLike(prefix)+"%")
	}

	if err := query.Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetByID retrieves an ingredient by ID
func (r *IngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
