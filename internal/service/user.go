package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// UserService handles business logic for user profiles
type UserService struct {
	repo             repository.UserRepositoryInterface
	subscriptionRepo repository.SubscriptionRepositoryInterface
	paginator        Paginator
	validator        *validator.Validate
}

var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, subscriptionRepo repository.SubscriptionRepositoryInterface, paginator Paginator, validator *validator.Validate) *UserService {
	return &UserService{
		repo:             repo,
		subscriptionRepo: subscriptionRepo,
		paginator:        paginator,
		validator:        validator,
	}
}

// CreateUserRequest represents the request to register a user profile
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
}

// CreateUser registers a new user profile
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !usernamePattern.MatchString(req.Username) {
		return nil, apperrors.NewValidationError("username", "may contain only letters, digits and @/./+/-/_")
	}

	user := &models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("user registered")

	response := toUserResponse(user, false)
	return &response, nil
}

// GetUserByID retrieves a user profile, annotated for the viewer
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	subscribed, err := s.subscribedAuthors(ctx, viewerID, []uuid.UUID{user.ID})
	if err != nil {
		return nil, err
	}

	response := toUserResponse(user, subscribed[user.ID])
	return &response, nil
}

// ListUsers retrieves users with pagination, annotated for the viewer
func (s *UserService) ListUsers(ctx context.Context, viewerID *uuid.UUID, page, limit int) (*UserListResponse, error) {
	p, err := s.paginator.Normalize(page, limit)
	if err != nil {
		return nil, err
	}

	users, total, err := s.repo.GetAll(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := s.subscribedAuthors(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	results := make([]UserResponse, 0, len(users))
	for i := range users {
		results = append(results, toUserResponse(&users[i], subscribed[users[i].ID]))
	}

	return &UserListResponse{Results: results, Count: total, Page: p.Number, Limit: p.Limit}, nil
}

func (s *UserService) subscribedAuthors(ctx context.Context, viewerID *uuid.UUID, authorIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if viewerID == nil || len(authorIDs) == 0 {
		return nil, nil
	}
	ids, err := s.subscriptionRepo.FilterAuthorIDs(ctx, *viewerID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscriptions: %w", err)
	}
	return idSet(ids), nil
}
