package handlers

import (
	"net/http"
	"strings"

	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const shoppingListFilename = "shopping-list.txt"

// RecipeHandler handles HTTP requests for recipes and the shopping list download
type RecipeHandler struct {
	recipeService       service.RecipeServiceInterface
	shoppingListService service.ShoppingListServiceInterface
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService service.RecipeServiceInterface, shoppingListService service.ShoppingListServiceInterface) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		shoppingListService: shoppingListService,
	}
}

// ListRecipes handles GET /recipes
// @Summary List recipes
// @Description List recipes newest first. is_favorited and is_in_shopping_cart only apply to authenticated callers.
// @Tags recipes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Param author query string false "Author ID (UUID)"
// @Param tags query []string false "Tag slugs, any-of" collectionFormat(multi)
// @Param is_favorited query int false "1 to show only the caller's favorites"
// @Param is_in_shopping_cart query int false "1 to show only recipes in the caller's cart"
// @Success 200 {object} service.RecipeListResponse "Successfully retrieved recipes"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	query := &service.RecipeListQuery{
		Page:             page,
		Limit:            limit,
		IsFavorited:      queryFlag(c, "is_favorited"),
		IsInShoppingCart: queryFlag(c, "is_in_shopping_cart"),
	}

	if raw := c.Query("author"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid author: must be a UUID")
			return
		}
		query.AuthorID = &authorID
	}

	// tags may repeat (?tags=a&tags=b) or be comma separated
	for _, v := range c.QueryArray("tags") {
		for _, slug := range strings.Split(v, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				query.TagSlugs = append(query.TagSlugs, slug)
			}
		}
	}

	recipes, err := h.recipeService.ListRecipes(c, query, viewer(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /recipes/:id
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 200 {object} service.RecipeResponse "Successfully retrieved recipe"
// @Failure 400 {object} ErrorResponse "Invalid recipe ID"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c, id, viewer(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe handles POST /recipes
// @Summary Create recipe
// @Description Create a recipe with at least one tag and at least one distinct ingredient line
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body service.CreateRecipeRequest true "Recipe data"
// @Success 201 {object} service.RecipeResponse "Successfully created recipe"
// @Failure 400 {object} ErrorResponse "Invalid recipe"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown ingredient"
// @Security BearerAuth
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe handles PATCH /recipes/:id
// @Summary Update recipe
// @Description Partially update a recipe. Provided tags or ingredients replace the existing set.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Param recipe body service.UpdateRecipeRequest true "Fields to change"
// @Success 200 {object} service.RecipeResponse "Successfully updated recipe"
// @Failure 400 {object} ErrorResponse "Invalid recipe"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c, userID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /recipes/:id
// @Summary Delete recipe
// @Tags recipes
// @Param id path string true "Recipe ID (UUID)"
// @Success 204 "Recipe deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Security BearerAuth
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c, userID, id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart handles GET /recipes/download_shopping_cart
// @Summary Download shopping list
// @Description Ingredients of every recipe in the caller's cart, summed per ingredient, as a text attachment
// @Tags shopping-cart
// @Produce plain
// @Success 200 {string} string "Shopping list"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /recipes/download_shopping_cart [get]
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	body, err := h.shoppingListService.Download(c, userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+shoppingListFilename)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

// MembershipHandler serves POST and DELETE for one membership set. The route table
// builds one handler per set, so the relation is fixed at wiring time.
type MembershipHandler struct {
	membershipService service.MembershipServiceInterface
	op                service.ToggleOperation
}

// NewMembershipHandler creates a membership handler bound to op
func NewMembershipHandler(membershipService service.MembershipServiceInterface, op service.ToggleOperation) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		op:                op,
	}
}

// Add handles POST /recipes/:id/favorite and POST /recipes/:id/shopping_cart
// @Summary Add recipe to favorites or shopping cart
// @Tags favorites, shopping-cart
// @Produce json
// @Param id path string true "Recipe ID (UUID)"
// @Success 201 {object} service.RecipeShortResponse "Added"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 409 {object} ErrorResponse "Already added"
// @Security BearerAuth
// @Router /recipes/{id}/favorite [post]
// @Router /recipes/{id}/shopping_cart [post]
func (h *MembershipHandler) Add(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.membershipService.Add(c, h.op, userID, recipeID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// Remove handles DELETE /recipes/:id/favorite and DELETE /recipes/:id/shopping_cart
// @Summary Remove recipe from favorites or shopping cart
// @Tags favorites, shopping-cart
// @Param id path string true "Recipe ID (UUID)"
// @Success 204 "Removed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Recipe not found or not added"
// @Security BearerAuth
// @Router /recipes/{id}/favorite [delete]
// @Router /recipes/{id}/shopping_cart [delete]
func (h *MembershipHandler) Remove(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	recipeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.membershipService.Remove(c, h.op, userID, recipeID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
