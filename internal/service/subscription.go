package service

import (
	"context"
	"errors"
	"fmt"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionService manages follower to author relations
type SubscriptionService struct {
	repo       repository.SubscriptionRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	recipeRepo repository.RecipeRepositoryInterface
	paginator  Paginator
}

var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(repo repository.SubscriptionRepositoryInterface, userRepo repository.UserRepositoryInterface, recipeRepo repository.RecipeRepositoryInterface, paginator Paginator) *SubscriptionService {
	return &SubscriptionService{
		repo:       repo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		paginator:  paginator,
	}
}

// Subscribe makes userID follow authorID. recipesLimit <= 0 returns all of the author's recipes.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, authorID uuid.UUID, recipesLimit int) (*SubscriptionResponse, error) {
	author, err := s.getAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if userID == authorID {
		return nil, apperrors.ErrSelfSubscription
	}

	exists, err := s.repo.Exists(ctx, userID, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return nil, apperrors.ErrSubscriptionExists
	}

	if err := s.repo.Create(ctx, &models.Subscription{UserID: userID, AuthorID: authorID}); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubscriptionExists
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	logger.WithContext(ctx).WithField("author_id", authorID).Info("subscribed to author")

	counts, err := s.recipeRepo.CountByAuthorIDs(ctx, []uuid.UUID{authorID})
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}
	return s.toSubscriptionResponse(ctx, author, counts[authorID], recipesLimit)
}

// Unsubscribe removes the relation. A missing relation is reported as NotFound.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error {
	if _, err := s.getAuthor(ctx, authorID); err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, userID, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if !removed {
		return apperrors.ErrSubscriptionNotFound
	}

	logger.WithContext(ctx).WithField("author_id", authorID).Info("unsubscribed from author")
	return nil
}

// ListSubscriptions pages through the authors userID follows with a preview of their recipes
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID, page, limit, recipesLimit int) (*SubscriptionListResponse, error) {
	p, err := s.paginator.Normalize(page, limit)
	if err != nil {
		return nil, err
	}

	authors, total, err := s.repo.GetAuthors(ctx, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	authorIDs := make([]uuid.UUID, 0, len(authors))
	for _, a := range authors {
		authorIDs = append(authorIDs, a.ID)
	}
	counts, err := s.recipeRepo.CountByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}

	results := make([]SubscriptionResponse, 0, len(authors))
	for i := range authors {
		item, err := s.toSubscriptionResponse(ctx, &authors[i], counts[authors[i].ID], recipesLimit)
		if err != nil {
			return nil, err
		}
		results = append(results, *item)
	}

	return &SubscriptionListResponse{Results: results, Count: total, Page: p.Number, Limit: p.Limit}, nil
}

func (s *SubscriptionService) getAuthor(ctx context.Context, authorID uuid.UUID) (*models.User, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}

func (s *SubscriptionService) toSubscriptionResponse(ctx context.Context, author *models.User, recipesCount int64, recipesLimit int) (*SubscriptionResponse, error) {
	recipes, err := s.recipeRepo.GetByAuthorID(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load author recipes: %w", err)
	}

	short := make([]RecipeShortResponse, 0, len(recipes))
	for i := range recipes {
		short = append(short, toRecipeShortResponse(&recipes[i]))
	}

	return &SubscriptionResponse{
		UserResponse: toUserResponse(author, true),
		Recipes:      short,
		RecipesCount: recipesCount,
	}, nil
}
