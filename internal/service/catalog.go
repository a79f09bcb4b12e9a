package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientService serves the read-only ingredient catalog
type IngredientService struct {
	repo repository.IngredientRepositoryInterface
}

var _ IngredientServiceInterface = (*IngredientService)(nil)

// NewIngredientService creates a new ingredient service
func NewIngredientService(repo repository.IngredientRepositoryInterface) *IngredientService {
	return &IngredientService{repo: repo}
}

// ListIngredients lists ingredients whose name starts with namePrefix (case-insensitive)
func (s *IngredientService) ListIngredients(ctx context.Context, namePrefix string) ([]IngredientResponse, error) {
	ingredients, err := s.repo.GetAll(ctx, namePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	logger.WithContext(ctx).Debugf("ingredient lookup %q matched %d rows", namePrefix, len(ingredients))

	results := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		results = append(results, toIngredientResponse(&ingredients[i]))
	}
	return results, nil
}

// GetIngredient retrieves one ingredient
func (s *IngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*IngredientResponse, error) {
	ingredient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	response := toIngredientResponse(ingredient)
	return &response, nil
}

// TagService serves the tag catalog
type TagService struct {
	repo repository.TagRepositoryInterface
}

var _ TagServiceInterface = (*TagService)(nil)

// NewTagService creates a new tag service
func NewTagService(repo repository.TagRepositoryInterface) *TagService {
	return &TagService{repo: repo}
}

// ListTags lists all tags
func (s *TagService) ListTags(ctx context.Context) ([]TagResponse, error) {
	tags, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	results := make([]TagResponse, 0, len(tags))
	for i := range tags {
		results = append(results, toTagResponse(&tags[i]))
	}
	return results, nil
}

// GetTag retrieves one tag
func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*TagResponse, error) {
	tag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	response := toTagResponse(tag)
	return &response, nil
}
