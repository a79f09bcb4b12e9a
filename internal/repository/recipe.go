package repository

import (
	"context"
	"time"

	"foodgram-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter narrows a recipe listing. Zero values disable a filter.
type RecipeFilter struct {
	AuthorID    *uuid.UUID
	TagSlugs    []string
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
}

// RecipeRepository handles database operations for the recipe aggregate
type RecipeRepository struct {
	db *gorm.DB
}

var _ RecipeRepositoryInterface = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists the recipe row, its tag set and its ingredient lines in one transaction
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe, tagIDs []uuid.UUID, lines []models.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := insertRecipeTags(tx, recipe.ID, tagIDs); err != nil {
			return err
		}
		return insertRecipeLines(tx, recipe.ID, lines)
	})
}

// Update writes the scalar fields of recipe. A nil tagIDs or lines slice leaves that
// part of the aggregate untouched; a non-nil one replaces it wholesale.
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe, tagIDs []uuid.UUID, lines []models.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"image":        recipe.Image,
			"cooking_time": recipe.CookingTime,
			"updated_at":   time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if tagIDs != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeTag{}).Error; err != nil {
				return err
			}
			if err := insertRecipeTags(tx, recipe.ID, tagIDs); err != nil {
				return err
			}
		}

		if lines != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := insertRecipeLines(tx, recipe.ID, lines); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a recipe together with its lines, tag links, favorites and cart rows
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.RecipeTag{},
			&models.RecipeIngredient{},
			&models.Favorite{},
			&models.ShoppingCartItem{},
		}
		for _, model := range dependents {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Recipe{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetByID retrieves a recipe with its author, tags and ordered ingredient lines
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := preloadAggregate(r.db.WithContext(ctx)).First(&recipe, "recipes.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetAll lists recipes newest first, applying filter, with pagination
func (r *RecipeRepository) GetAll(ctx context.Context, filter RecipeFilter, limit, offset int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	db := r.db.WithContext(ctx)

	// Get total count
	if err := r.applyFilter(db.Model(&models.Recipe{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.applyFilter(preloadAggregate(db), filter).
		Order("recipes.pub_date DESC").
		Limit(limit).Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// GetByAuthorID retrieves an author's newest recipes. limit <= 0 means no limit.
func (r *RecipeRepository) GetByAuthorID(ctx context.Context, authorID uuid.UUID, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("pub_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CountByAuthorIDs returns the number of recipes per author. Authors without recipes are absent.
func (r *RecipeRepository) CountByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AuthorID uuid.UUID
		Total    int64
	}
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}

// GetShoppingCartLines returns every ingredient line of every recipe in the user's cart
func (r *RecipeRepository) GetShoppingCartLines(ctx context.Context, userID uuid.UUID) ([]models.RecipeIngredient, error) {
	var lines []models.RecipeIngredient

	db := r.db.WithContext(ctx)
	carted := db.Model(&models.ShoppingCartItem{}).Select("recipe_id").Where("user_id = ?", userID)

	err := db.Preload("Ingredient").
		Where("recipe_id IN (?)", carted).
		Order("recipe_id, position ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *RecipeRepository) applyFilter(query *gorm.DB, filter RecipeFilter) *gorm.DB {
	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if filter.FavoritedBy != nil {
		favorited := r.db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", *filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", favorited)
	}
	if filter.InCartOf != nil {
		carted := r.db.Model(&models.ShoppingCartItem{}).Select("recipe_id").Where("user_id = ?", *filter.InCartOf)
		query = query.Where("recipes.id IN (?)", carted)
	}
	return query
}

func preloadAggregate(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Ingredients.Ingredient")
}

func insertRecipeTags(tx *gorm.DB, recipeID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, models.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}
	return tx.Create(&links).Error
}

func insertRecipeLines(tx *gorm.DB, recipeID uuid.UUID, lines []models.RecipeIngredient) error {
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].RecipeID = recipeID
		lines[i].Position = i
	}
	return tx.Omit(clause.Associations).Create(&lines).Error
}
