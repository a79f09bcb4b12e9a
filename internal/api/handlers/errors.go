package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram-backend/internal/auth"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Field   string `json:"field,omitempty" example:"ingredients"`
	Details string `json:"details,omitempty"`
}

// handleError maps service errors onto HTTP statuses
func handleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		resp := ErrorResponse{Error: err.Error()}
		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			resp.Field = vErr.Field
		}
		c.JSON(http.StatusBadRequest, resp)
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithField("path", c.FullPath()).Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// pathUUID parses a uuid path parameter, writing a 400 on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name+": must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an optional integer query value; absent means 0
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "invalid "+name+": must be an integer")
		return 0, false
	}
	return v, true
}

// pageParams reads page and limit; normalization happens in the service
func pageParams(c *gin.Context) (page, limit int, ok bool) {
	if page, ok = queryInt(c, "page"); !ok {
		return 0, 0, false
	}
	if limit, ok = queryInt(c, "limit"); !ok {
		return 0, 0, false
	}
	return page, limit, true
}

// recipesLimit reads recipes_limit; absent or 0 means no truncation
func recipesLimit(c *gin.Context) (int, bool) {
	n, ok := queryInt(c, "recipes_limit")
	if !ok {
		return 0, false
	}
	if n < 0 {
		badRequest(c, "invalid recipes_limit: must not be negative")
		return 0, false
	}
	return n, true
}

// queryFlag accepts 1/true/yes as set
func queryFlag(c *gin.Context, name string) bool {
	switch c.Query(name) {
	case "1", "true", "True", "yes":
		return true
	}
	return false
}

// viewer returns the authenticated user id, or nil for anonymous callers
func viewer(c *gin.Context) *uuid.UUID {
	id, ok := auth.GetUserID(c)
	if !ok {
		return nil
	}
	return &id
}

// requireUser returns the authenticated user id or writes a 401
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		handleError(c, apperrors.ErrAuthenticationRequired)
		return uuid.Nil, false
	}
	return id, true
}
