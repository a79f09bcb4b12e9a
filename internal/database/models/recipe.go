package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the aggregate root: it owns its ingredient lines and references tags.
type Recipe struct {
	BaseModel
	AuthorID    uuid.UUID          `json:"author_id" gorm:"type:uuid;not null;index"`
	Author      *User              `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string             `json:"name" gorm:"not null;size:200"`
	Text        string             `json:"text" gorm:"type:text;not null"`
	Image       string             `json:"image" gorm:"type:text"`
	CookingTime int                `json:"cooking_time" gorm:"not null;check:chk_recipes_cooking_time,cooking_time BETWEEN 1 AND 32000"`
	PubDate     time.Time          `json:"pub_date" gorm:"not null;index;autoCreateTime"`
	Tags        []Tag              `json:"tags,omitempty" gorm:"many2many:recipe_tags"`
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeTag is the join row between a recipe and one of its tags
type RecipeTag struct {
	RecipeID uuid.UUID `json:"recipe_id" gorm:"type:uuid;primaryKey"`
	TagID    uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for RecipeTag
func (RecipeTag) TableName() string {
	return "recipe_tags"
}

// RecipeIngredient is one (ingredient, amount) line of a recipe.
// Position keeps insertion order for reads.
type RecipeIngredient struct {
	BaseModel
	RecipeID     uuid.UUID   `json:"recipe_id" gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredients_pair"`
	IngredientID uuid.UUID   `json:"ingredient_id" gorm:"type:uuid;not null;uniqueIndex:idx_recipe_ingredients_pair;index"`
	Ingredient   *Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Amount       int         `json:"amount" gorm:"not null;check:chk_recipe_ingredients_amount,amount BETWEEN 1 AND 32000"`
	Position     int         `json:"position" gorm:"not null;default:0"`
}

// TableName returns the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
