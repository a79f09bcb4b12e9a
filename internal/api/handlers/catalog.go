package handlers

import (
	"net/http"
	"strings"

	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IngredientHandler handles HTTP requests for the ingredient catalog
type IngredientHandler struct {
	ingredientService service.IngredientServiceInterface
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(ingredientService service.IngredientServiceInterface) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// ListIngredients handles GET /ingredients
// @Summary List ingredients
// @Description List catalog ingredients ordered by name, optionally filtered by a case-insensitive name prefix
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} service.IngredientResponse "Successfully retrieved ingredients"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /ingredients [get]
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredientService.ListIngredients(c, strings.TrimSpace(c.Query("name")))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

// GetIngredient handles GET /ingredients/:id
// @Summary Get ingredient
// @Description Get a single catalog ingredient
// @Tags ingredients
// @Produce json
// @Param id path string true "Ingredient ID (UUID)"
// @Success 200 {object} service.IngredientResponse "Successfully retrieved ingredient"
// @Failure 400 {object} ErrorResponse "Invalid ingredient ID"
// @Failure 404 {object} ErrorResponse "Ingredient not found"
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ingredient, err := h.ingredientService.GetIngredient(c, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

// TagHandler handles HTTP requests for tags
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags handles GET /tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} service.TagResponse "Successfully retrieved tags"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// GetTag handles GET /tags/:id
// @Summary Get tag
// @Tags tags
// @Produce json
// @Param id path string true "Tag ID (UUID)"
// @Success 200 {object} service.TagResponse "Successfully retrieved tag"
// @Failure 400 {object} ErrorResponse "Invalid tag ID"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Router /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetTag(c, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}
