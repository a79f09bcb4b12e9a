package service

import (
	"context"
	"errors"
	"fmt"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/metrics"
	"foodgram-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeService handles the recipe aggregate: validation, persistence and viewer annotations
type RecipeService struct {
	repo             repository.RecipeRepositoryInterface
	tagRepo          repository.TagRepositoryInterface
	ingredientRepo   repository.IngredientRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	favoriteRepo     repository.MembershipRepositoryInterface
	cartRepo         repository.MembershipRepositoryInterface
	subscriptionRepo repository.SubscriptionRepositoryInterface
	paginator        Paginator
	validator        *validator.Validate
}

var _ RecipeServiceInterface = (*RecipeService)(nil)

// RecipeDeps groups the repositories the recipe service reads from
type RecipeDeps struct {
	Recipes       repository.RecipeRepositoryInterface
	Tags          repository.TagRepositoryInterface
	Ingredients   repository.IngredientRepositoryInterface
	Users         repository.UserRepositoryInterface
	Favorites     repository.MembershipRepositoryInterface
	ShoppingCart  repository.MembershipRepositoryInterface
	Subscriptions repository.SubscriptionRepositoryInterface
}

// NewRecipeService creates a new recipe service
func NewRecipeService(deps RecipeDeps, paginator Paginator, validator *validator.Validate) *RecipeService {
	return &RecipeService{
		repo:             deps.Recipes,
		tagRepo:          deps.Tags,
		ingredientRepo:   deps.Ingredients,
		userRepo:         deps.Users,
		favoriteRepo:     deps.Favorites,
		cartRepo:         deps.ShoppingCart,
		subscriptionRepo: deps.Subscriptions,
		paginator:        paginator,
		validator:        validator,
	}
}

// IngredientAmount is one requested (ingredient, amount) line
type IngredientAmount struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Amount int       `json:"amount" validate:"required,min=1,max=32000"`
}

// CreateRecipeRequest represents the request to create a recipe
type CreateRecipeRequest struct {
	Tags        []uuid.UUID        `json:"tags" validate:"required,min=1,dive,required"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,dive"`
	Name        string             `json:"name" validate:"required,max=200"`
	Image       string             `json:"image" validate:"required"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"required,min=1,max=32000"`
}

// UpdateRecipeRequest represents a partial recipe update. A nil Tags or Ingredients
// slice leaves that part untouched; a present one replaces it and must not be empty.
type UpdateRecipeRequest struct {
	Tags        []uuid.UUID        `json:"tags,omitempty" validate:"omitempty,dive,required"`
	Ingredients []IngredientAmount `json:"ingredients,omitempty" validate:"omitempty,dive"`
	Name        *string            `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Image       *string            `json:"image,omitempty" validate:"omitempty,min=1"`
	Text        *string            `json:"text,omitempty" validate:"omitempty,min=1"`
	CookingTime *int               `json:"cooking_time,omitempty" validate:"omitempty,min=1,max=32000"`
}

// RecipeListQuery holds the listing filters and page
type RecipeListQuery struct {
	Page             int
	Limit            int
	AuthorID         *uuid.UUID
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
}

// CreateRecipe validates the payload, resolves every referenced tag and ingredient,
// and persists the recipe with its tag set and lines in one transaction.
func (s *RecipeService) CreateRecipe(ctx context.Context, authorID uuid.UUID, req *CreateRecipeRequest) (*RecipeResponse, error) {
	if len(req.Tags) == 0 {
		return nil, apperrors.ErrRecipeTagsRequired
	}
	if err := checkIngredientLines(req.Ingredients); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	tagIDs, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}
	lines, err := s.resolveLines(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.Create(ctx, recipe, tagIDs, lines); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	metrics.RecordRecipeCreated()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipe_id":   recipe.ID,
		"tags":        len(tagIDs),
		"ingredients": len(lines),
	}).Info("recipe created")

	return s.GetRecipe(ctx, recipe.ID, &authorID)
}

// UpdateRecipe applies a partial update. Only the author or an administrator may update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, requesterID, recipeID uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, requesterID, recipe); err != nil {
		return nil, err
	}

	if req.Tags != nil && len(req.Tags) == 0 {
		return nil, apperrors.ErrRecipeTagsRequired
	}
	if req.Ingredients != nil {
		if err := checkIngredientLines(req.Ingredients); err != nil {
			return nil, err
		}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Text != nil {
		recipe.Text = *req.Text
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}

	var tagIDs []uuid.UUID
	if req.Tags != nil {
		if tagIDs, err = s.resolveTags(ctx, req.Tags); err != nil {
			return nil, err
		}
	}
	var lines []models.RecipeIngredient
	if req.Ingredients != nil {
		if lines, err = s.resolveLines(ctx, req.Ingredients); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, recipe, tagIDs, lines); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	logger.WithContext(ctx).WithField("recipe_id", recipe.ID).Info("recipe updated")

	return s.GetRecipe(ctx, recipe.ID, &requesterID)
}

// DeleteRecipe removes a recipe and everything that references it
func (s *RecipeService) DeleteRecipe(ctx context.Context, requesterID, recipeID uuid.UUID) error {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, requesterID, recipe); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	logger.WithContext(ctx).WithField("recipe_id", recipeID).Info("recipe deleted")
	return nil
}

// GetRecipe retrieves a recipe annotated for the viewer (nil for anonymous)
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID uuid.UUID, viewerID *uuid.UUID) (*RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	flags, err := s.annotate(ctx, viewerID, []models.Recipe{*recipe})
	if err != nil {
		return nil, err
	}

	response := toRecipeResponse(recipe, flags)
	return &response, nil
}

// ListRecipes lists recipes newest first. The favorite and cart filters only apply to authenticated viewers.
func (s *RecipeService) ListRecipes(ctx context.Context, query *RecipeListQuery, viewerID *uuid.UUID) (*RecipeListResponse, error) {
	p, err := s.paginator.Normalize(query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	filter := repository.RecipeFilter{
		AuthorID: query.AuthorID,
		TagSlugs: query.TagSlugs,
	}
	if viewerID != nil {
		if query.IsFavorited {
			filter.FavoritedBy = viewerID
		}
		if query.IsInShoppingCart {
			filter.InCartOf = viewerID
		}
	}

	recipes, total, err := s.repo.GetAll(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	flags, err := s.annotate(ctx, viewerID, recipes)
	if err != nil {
		return nil, err
	}

	results := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		results = append(results, toRecipeResponse(&recipes[i], flags))
	}

	return &RecipeListResponse{Results: results, Count: total, Page: p.Number, Limit: p.Limit}, nil
}

func (s *RecipeService) getRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// authorize allows the recipe author and administrators
func (s *RecipeService) authorize(ctx context.Context, requesterID uuid.UUID, recipe *models.Recipe) error {
	if recipe.AuthorID == requesterID {
		return nil
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotRecipeAuthor
		}
		return fmt.Errorf("failed to load requester: %w", err)
	}
	if !requester.IsAdmin {
		logger.WithContext(ctx).WithField("recipe_id", recipe.ID).Warn("recipe modification denied")
		return apperrors.ErrNotRecipeAuthor
	}
	return nil
}

// resolveTags deduplicates the requested tag ids and checks that each exists
func (s *RecipeService) resolveTags(ctx context.Context, requested []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(requested))
	tagIDs := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if !seen[id] {
			seen[id] = true
			tagIDs = append(tagIDs, id)
		}
	}

	tags, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	if len(tags) != len(tagIDs) {
		return nil, apperrors.ErrRecipeUnknownTag
	}
	return tagIDs, nil
}

// resolveLines checks each requested ingredient and builds its line. Every line is
// resolved before anything is persisted, so one unknown ingredient fails the whole request.
func (s *RecipeService) resolveLines(ctx context.Context, requested []IngredientAmount) ([]models.RecipeIngredient, error) {
	lines := make([]models.RecipeIngredient, 0, len(requested))
	for _, item := range requested {
		ingredient, err := s.ingredientRepo.GetByID(ctx, item.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("ingredient %s: %w", item.ID, apperrors.ErrIngredientNotFound)
			}
			return nil, fmt.Errorf("failed to resolve ingredient %s: %w", item.ID, err)
		}

		lines = append(lines, models.RecipeIngredient{
			IngredientID: ingredient.ID,
			Ingredient:   ingredient,
			Amount:       item.Amount,
		})
	}
	return lines, nil
}

// annotate computes is_favorited, is_in_shopping_cart and author is_subscribed for a batch
func (s *RecipeService) annotate(ctx context.Context, viewerID *uuid.UUID, recipes []models.Recipe) (viewerFlags, error) {
	if viewerID == nil || len(recipes) == 0 {
		return viewerFlags{}, nil
	}

	recipeIDs := make([]uuid.UUID, 0, len(recipes))
	authorSeen := make(map[uuid.UUID]bool)
	authorIDs := make([]uuid.UUID, 0)
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		if !authorSeen[r.AuthorID] {
			authorSeen[r.AuthorID] = true
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	favorited, err := s.favoriteRepo.FilterRecipeIDs(ctx, *viewerID, recipeIDs)
	if err != nil {
		return viewerFlags{}, fmt.Errorf("failed to resolve favorites: %w", err)
	}
	inCart, err := s.cartRepo.FilterRecipeIDs(ctx, *viewerID, recipeIDs)
	if err != nil {
		return viewerFlags{}, fmt.Errorf("failed to resolve shopping cart: %w", err)
	}
	subscribed, err := s.subscriptionRepo.FilterAuthorIDs(ctx, *viewerID, authorIDs)
	if err != nil {
		return viewerFlags{}, fmt.Errorf("failed to resolve subscriptions: %w", err)
	}

	return viewerFlags{
		favorited:  idSet(favorited),
		inCart:     idSet(inCart),
		subscribed: idSet(subscribed),
	}, nil
}

// checkIngredientLines rejects an empty line list and repeated ingredient ids
func checkIngredientLines(lines []IngredientAmount) error {
	if len(lines) == 0 {
		return apperrors.ErrRecipeIngredientsRequired
	}
	seen := make(map[uuid.UUID]bool, len(lines))
	for _, line := range lines {
		if seen[line.ID] {
			return apperrors.ErrRecipeDuplicateIngredient
		}
		seen[line.ID] = true
	}
	return nil
}
