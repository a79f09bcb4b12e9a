package service

import (
	"testing"

	apperrors "foodgram-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatorNormalize(t *testing.T) {
	p := NewPaginator(6, 100)

	testCases := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 6, 0},
		{"explicit", 3, 10, 3, 10, 20},
		{"limit capped", 1, 1000, 1, 100, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := p.Normalize(tc.page, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, page.Number)
			assert.Equal(t, tc.wantLimit, page.Limit)
			assert.Equal(t, tc.wantOffset, page.Offset())
		})
	}

	t.Run("negative rejected", func(t *testing.T) {
		_, err := p.Normalize(-1, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaginationParams)

		_, err = p.Normalize(1, -5)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaginationParams)
	})
}

func TestNewPaginatorBounds(t *testing.T) {
	p := NewPaginator(0, 0)
	assert.Equal(t, 6, p.DefaultSize)
	assert.Equal(t, 6, p.MaxSize)
}

func TestValidationError(t *testing.T) {
	v := validator.New()

	t.Run("names the nested field", func(t *testing.T) {
		err := validationError(v.Struct(&CreateRecipeRequest{
			Tags:        nil,
			Ingredients: []IngredientAmount{{Amount: 0}},
		}))

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Tags", vErr.Field)
		assert.Equal(t, "this field is required", vErr.Message)
	})

	t.Run("bound rules", func(t *testing.T) {
		type amount struct {
			Value int `validate:"min=1,max=32000"`
		}
		var vErr *apperrors.ValidationError

		require.ErrorAs(t, validationError(v.Struct(&amount{Value: 0})), &vErr)
		assert.Equal(t, "Value", vErr.Field)
		assert.Equal(t, "must be at least 1", vErr.Message)

		require.ErrorAs(t, validationError(v.Struct(&amount{Value: 40000})), &vErr)
		assert.Equal(t, "must be at most 32000", vErr.Message)
	})

	t.Run("non-validator error", func(t *testing.T) {
		err := validationError(assert.AnError)
		assert.True(t, apperrors.IsValidation(err))
	})
}
