package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/stretchr/testify/mock"
)

// CatalogProvider is a testify mock of repository.CatalogProvider.
type CatalogProvider struct {
	mock.Mock
}

func (_m *CatalogProvider) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	ret := _m.Called(ctx)

	var r0 []models.CatalogItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CatalogItem)
	}

	return r0, ret.Error(1)
}

func (_m *CatalogProvider) GetItem(ctx context.Context, id int64) (*models.CatalogItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.CatalogItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CatalogItem)
	}

	return r0, ret.Error(1)
}

// ProductSource is a testify mock of repository.ProductSource.
type ProductSource struct {
	mock.Mock
}

func (_m *ProductSource) List(ctx context.Context) ([]models.CatalogItem, error) {
	ret := _m.Called(ctx)

	var r0 []models.CatalogItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CatalogItem)
	}

	return r0, ret.Error(1)
}

func (_m *ProductSource) Get(ctx context.Context, id int64) (*models.CatalogItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.CatalogItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CatalogItem)
	}

	return r0, ret.Error(1)
}
