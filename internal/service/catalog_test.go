package service_test

import (
	"context"
	"errors"
	"testing"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestIngredientService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIngredientRepositoryInterface(ctrl)
	svc := service.NewIngredientService(repo)
	factories := testutils.NewFactorySet()
	ctx := context.Background()

	t.Run("prefix search", func(t *testing.T) {
		flour := factories.Ingredient.Create()
		fennel := factories.Ingredient.WithNameAndUnit("fennel", "g")
		repo.EXPECT().GetAll(gomock.Any(), "f").Return([]models.Ingredient{*fennel, *flour}, nil)

		items, err := svc.ListIngredients(ctx, "f")

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "fennel", items[0].Name)
		assert.Equal(t, "g", items[1].MeasurementUnit)
	})

	t.Run("list error", func(t *testing.T) {
		repo.EXPECT().GetAll(gomock.Any(), "").Return(nil, errors.New("db down"))

		_, err := svc.ListIngredients(ctx, "")
		assert.Error(t, err)
	})

	t.Run("get not found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetIngredient(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrIngredientNotFound)
	})
}

func TestTagService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTagRepositoryInterface(ctrl)
	svc := service.NewTagService(repo)
	factories := testutils.NewFactorySet()
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		tag := factories.Tag.WithSlug("dinner")
		repo.EXPECT().GetAll(gomock.Any()).Return([]models.Tag{*tag}, nil)

		tags, err := svc.ListTags(ctx)

		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "dinner", tags[0].Slug)
		assert.Equal(t, "#E26C2D", tags[0].Color)
	})

	t.Run("get", func(t *testing.T) {
		tag := factories.Tag.Create()
		repo.EXPECT().GetByID(gomock.Any(), tag.ID).Return(tag, nil)

		resp, err := svc.GetTag(ctx, tag.ID)

		require.NoError(t, err)
		assert.Equal(t, tag.ID, resp.ID)
	})

	t.Run("get not found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetTag(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrTagNotFound)
	})
}
