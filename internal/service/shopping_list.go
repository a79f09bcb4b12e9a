package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/metrics"
	"foodgram-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultShoppingListHeader is the first line of a rendered shopping list
const DefaultShoppingListHeader = "Shopping list from Foodgram:"

// ShoppingListItem is one aggregated ingredient total
type ShoppingListItem struct {
	IngredientID    uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// ShoppingListService sums the ingredient lines of every recipe in a user's cart
type ShoppingListService struct {
	recipeRepo repository.RecipeRepositoryInterface
	header     string
}

var _ ShoppingListServiceInterface = (*ShoppingListService)(nil)

// NewShoppingListService creates a new shopping list service. An empty header uses the default.
func NewShoppingListService(recipeRepo repository.RecipeRepositoryInterface, header string) *ShoppingListService {
	if header == "" {
		header = DefaultShoppingListHeader
	}
	return &ShoppingListService{recipeRepo: recipeRepo, header: header}
}

// Build groups the cart's lines by ingredient and sums their amounts, sorted by name
func (s *ShoppingListService) Build(ctx context.Context, userID uuid.UUID) ([]ShoppingListItem, error) {
	lines, err := s.recipeRepo.GetShoppingCartLines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping cart: %w", err)
	}

	totals := make(map[uuid.UUID]*ShoppingListItem)
	for _, line := range lines {
		item, ok := totals[line.IngredientID]
		if !ok {
			item = &ShoppingListItem{IngredientID: line.IngredientID}
			if line.Ingredient != nil {
				item.Name = line.Ingredient.Name
				item.MeasurementUnit = line.Ingredient.MeasurementUnit
			}
			totals[line.IngredientID] = item
		}
		item.Amount += line.Amount
	}

	items := make([]ShoppingListItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})

	return items, nil
}

// Download renders the aggregated list as a plain-text document
func (s *ShoppingListService) Download(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	items, err := s.Build(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics.RecordShoppingListDownload()
	logger.WithContext(ctx).Debugf("shopping list rendered with %d items", len(items))

	return []byte(RenderShoppingList(s.header, items)), nil
}

// RenderShoppingList writes the header, a blank line, then "<name>, <amount> <unit>" per item
func RenderShoppingList(header string, items []ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s, %d %s\n", item.Name, item.Amount, item.MeasurementUnit)
	}
	return b.String()
}
