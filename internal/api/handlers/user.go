package handlers

import (
	"net/http"

	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user profiles and subscriptions
type UserHandler struct {
	userService         service.UserServiceInterface
	subscriptionService service.SubscriptionServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, subscriptionService service.SubscriptionServiceInterface) *UserHandler {
	return &UserHandler{
		userService:         userService,
		subscriptionService: subscriptionService,
	}
}

// CreateUser handles POST /users
// @Summary Register a user profile
// @Description Create a user profile. Email and username must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email or username already taken"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.CreateUser(c, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /users
// @Summary List users
// @Description List user profiles ordered by username, annotated with is_subscribed for the caller
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Success 200 {object} service.UserListResponse "Successfully retrieved users"
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c, viewer(c), page, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c, id, viewer(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Me handles GET /users/me
// @Summary Current user
// @Description Get the profile of the authenticated caller
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No profile for this token"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c, userID, &userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Subscribe handles POST /users/:id/subscribe
// @Summary Subscribe to an author
// @Tags subscriptions
// @Produce json
// @Param id path string true "Author ID (UUID)"
// @Param recipes_limit query int false "Truncate the recipe preview to this many recipes"
// @Success 201 {object} service.SubscriptionResponse "Subscribed"
// @Failure 400 {object} ErrorResponse "Self-subscription or invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Author not found"
// @Failure 409 {object} ErrorResponse "Already subscribed"
// @Security BearerAuth
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	authorID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	limit, ok := recipesLimit(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.Subscribe(c, userID, authorID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Unsubscribe handles DELETE /users/:id/subscribe
// @Summary Unsubscribe from an author
// @Tags subscriptions
// @Param id path string true "Author ID (UUID)"
// @Success 204 "Unsubscribed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Author not found or not subscribed"
// @Security BearerAuth
// @Router /users/{id}/subscribe [delete]
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	authorID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.subscriptionService.Unsubscribe(c, userID, authorID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSubscriptions handles GET /users/subscriptions
// @Summary List followed authors
// @Description Authors the caller follows, each with a preview of their newest recipes and a total recipe count
// @Tags subscriptions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Param recipes_limit query int false "Truncate each recipe preview to this many recipes"
// @Success 200 {object} service.SubscriptionListResponse "Successfully retrieved subscriptions"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /users/subscriptions [get]
func (h *UserHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}
	rl, ok := recipesLimit(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.ListSubscriptions(c, userID, page, limit, rl)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
