package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/metrics"
	"foodgram-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleOperation is one user-to-recipe membership set together with the errors
// reported when a toggle finds it already in, or already out of, the requested state.
type ToggleOperation interface {
	Relation() string
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	Create(ctx context.Context, userID, recipeID uuid.UUID) error
	Delete(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	ExistsError() error
	MissingError() error
}

// FavoriteToggle toggles a recipe in the user's favorites
type FavoriteToggle struct {
	repo repository.MembershipRepositoryInterface
}

var _ ToggleOperation = (*FavoriteToggle)(nil)

// NewFavoriteToggle creates the favorites toggle
func NewFavoriteToggle(repo repository.MembershipRepositoryInterface) *FavoriteToggle {
	return &FavoriteToggle{repo: repo}
}

func (t *FavoriteToggle) Relation() string { return "favorite" }

func (t *FavoriteToggle) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return t.repo.Exists(ctx, userID, recipeID)
}

func (t *FavoriteToggle) Create(ctx context.Context, userID, recipeID uuid.UUID) error {
	return t.repo.Add(ctx, userID, recipeID)
}

func (t *FavoriteToggle) Delete(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return t.repo.Remove(ctx, userID, recipeID)
}

func (t *FavoriteToggle) ExistsError() error  { return apperrors.ErrFavoriteExists }
func (t *FavoriteToggle) MissingError() error { return apperrors.ErrFavoriteNotFound }

// CartToggle toggles a recipe in the user's shopping cart
type CartToggle struct {
	repo repository.MembershipRepositoryInterface
}

var _ ToggleOperation = (*CartToggle)(nil)

// NewCartToggle creates the shopping cart toggle
func NewCartToggle(repo repository.MembershipRepositoryInterface) *CartToggle {
	return &CartToggle{repo: repo}
}

func (t *CartToggle) Relation() string { return "shopping_cart" }

func (t *CartToggle) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return t.repo.Exists(ctx, userID, recipeID)
}

func (t *CartToggle) Create(ctx context.Context, userID, recipeID uuid.UUID) error {
	return t.repo.Add(ctx, userID, recipeID)
}

func (t *CartToggle) Delete(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return t.repo.Remove(ctx, userID, recipeID)
}

func (t *CartToggle) ExistsError() error  { return apperrors.ErrShoppingCartItemExists }
func (t *CartToggle) MissingError() error { return apperrors.ErrShoppingCartItemNotFound }

// MembershipService runs add/remove against whichever ToggleOperation it is handed
type MembershipService struct {
	recipeRepo repository.RecipeRepositoryInterface
}

var _ MembershipServiceInterface = (*MembershipService)(nil)

// NewMembershipService creates a new membership service
func NewMembershipService(recipeRepo repository.RecipeRepositoryInterface) *MembershipService {
	return &MembershipService{recipeRepo: recipeRepo}
}

// Add moves the pair from absent to present. A present pair yields op.ExistsError().
func (s *MembershipService) Add(ctx context.Context, op ToggleOperation, userID, recipeID uuid.UUID) (*RecipeShortResponse, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	exists, err := op.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", op.Relation(), err)
	}
	if exists {
		return nil, op.ExistsError()
	}

	if err := op.Create(ctx, userID, recipeID); err != nil {
		// a concurrent request won the race for the unique index
		if repository.IsUniqueViolation(err) {
			return nil, op.ExistsError()
		}
		return nil, fmt.Errorf("failed to add %s: %w", op.Relation(), err)
	}

	metrics.RecordMembershipChange(op.Relation(), "add")
	logger.WithContext(ctx).WithField("recipe_id", recipeID).Infof("%s added", op.Relation())

	response := toRecipeShortResponse(recipe)
	return &response, nil
}

// Remove moves the pair from present to absent. An absent pair yields op.MissingError().
func (s *MembershipService) Remove(ctx context.Context, op ToggleOperation, userID, recipeID uuid.UUID) error {
	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to get recipe: %w", err)
	}

	removed, err := op.Delete(ctx, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", op.Relation(), err)
	}
	if !removed {
		return op.MissingError()
	}

	metrics.RecordMembershipChange(op.Relation(), "remove")
	logger.WithContext(ctx).WithField("recipe_id", recipeID).Infof("%s removed", op.Relation())
	return nil
}
