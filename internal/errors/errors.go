package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this recipe"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrRecipeNotFound           = &NotFoundError{Entity: "recipe"}
	ErrIngredientNotFound       = &NotFoundError{Entity: "ingredient"}
	ErrTagNotFound              = &NotFoundError{Entity: "tag"}
	ErrFavoriteNotFound         = &NotFoundError{Entity: "favorite"}
	ErrShoppingCartItemNotFound = &NotFoundError{Entity: "shopping cart item"}
	ErrSubscriptionNotFound     = &NotFoundError{Entity: "subscription"}
)

// Already Exists Errors
var (
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email or username"}
	ErrFavoriteExists         = &AlreadyExistsError{Entity: "favorite", Context: "for this recipe"}
	ErrShoppingCartItemExists = &AlreadyExistsError{Entity: "shopping cart item", Context: "for this recipe"}
	ErrSubscriptionExists     = &AlreadyExistsError{Entity: "subscription", Context: "for this author"}
)

// Recipe aggregate validation errors
var (
	ErrRecipeTagsRequired        = &ValidationError{Field: "tags", Message: "at least one tag is required"}
	ErrRecipeIngredientsRequired = &ValidationError{Field: "ingredients", Message: "at least one ingredient is required"}
	ErrRecipeDuplicateIngredient = &ValidationError{Field: "ingredients", Message: "a recipe cannot contain the same ingredient twice"}
	ErrRecipeUnknownTag          = &ValidationError{Field: "tags", Message: "one or more tags do not exist"}
	ErrSelfSubscription          = &ValidationError{Field: "author", Message: "subscribing to yourself is not allowed"}
	ErrInvalidPaginationParams   = &ValidationError{Field: "pagination", Message: "page and limit must be positive integers"}
)

// Authentication and authorization errors
var (
	ErrAuthenticationRequired = &AuthenticationError{Message: "authentication credentials were not provided"}
	ErrNotRecipeAuthor        = &AuthorizationError{Message: "only the author or an administrator can modify this recipe"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
