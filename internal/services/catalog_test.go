package service_test

import (
	"errors"
	"fmt"
	"testing"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	repository "github.com/aaravmahajanofficial/cellsync-pos/internal/repositories"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/cellsync-pos/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var catalogItems = []models.CatalogItem{
	{ID: 1, Name: "iPhone 13 Pro", Price: models.Cents(699900), Available: 5},
	{ID: 2, Name: "Samsung Galaxy S21", Price: models.Cents(399900), Available: 3},
	{ID: 3, Name: "Capinha iPhone", Price: models.Cents(2990), Available: 50},
}

func TestCatalogSearch(t *testing.T) {
	catalog := service.NewCatalogService(repository.NewMemoryCatalog(catalogItems))

	tests := []struct {
		query   string
		wantIDs []int64
	}{
		{"", []int64{1, 2, 3}},
		{"iphone", []int64{1, 3}},
		{"  GALAXY ", []int64{2}},
		{"xiaomi", []int64{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("query %q", tt.query), func(t *testing.T) {
			items, err := catalog.Search(t.Context(), tt.query)
			require.NoError(t, err)

			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogGet(t *testing.T) {
	ctx := t.Context()

	t.Run("Not found", func(t *testing.T) {
		catalog := service.NewCatalogService(repository.NewMemoryCatalog(catalogItems))

		_, err := catalog.Get(ctx, 42)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})

	t.Run("Backend AppError passes through", func(t *testing.T) {
		repo := new(mocks.CatalogProvider)
		catalog := service.NewCatalogService(repo)

		repo.On("GetItem", mock.Anything, int64(1)).
			Return(nil, fmt.Errorf("getting product 1: %w", appErrors.TimeoutError("The server took too long to answer"))).Once()

		_, err := catalog.Get(ctx, 1)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeTimeout))
		repo.AssertExpectations(t)
	})

	t.Run("Plain error becomes internal", func(t *testing.T) {
		repo := new(mocks.CatalogProvider)
		catalog := service.NewCatalogService(repo)

		repo.On("ListItems", mock.Anything).Return(nil, errors.New("boom")).Once()

		_, err := catalog.List(ctx)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeInternal))
	})
}
