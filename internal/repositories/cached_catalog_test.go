package repository_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/cache"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/config"
	repository "github.com/aaravmahajanofficial/cellsync-pos/internal/repositories"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/repositories/mocks"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCached(t *testing.T) (repository.CatalogProvider, *mocks.CatalogProvider, redismock.ClientMock) {
	t.Helper()

	client, redisMock := redismock.NewClientMock()
	next := new(mocks.CatalogProvider)
	c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: 5 * time.Minute}, "cellsync")

	return repository.NewCachedCatalog(next, c, time.Minute), next, redisMock
}

func TestCachedCatalogListItems(t *testing.T) {
	ctx := t.Context()
	data, err := json.Marshal(testItems)
	require.NoError(t, err)

	t.Run("Hit skips the provider", func(t *testing.T) {
		// Arrange
		catalog, next, redisMock := setupCached(t)

		redisMock.ExpectGet("cellsync:catalog:all").SetVal(string(data))

		// Act
		items, err := catalog.ListItems(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, testItems, items)
		next.AssertNotCalled(t, "ListItems", mock.Anything)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Miss fills the cache", func(t *testing.T) {
		// Arrange
		catalog, next, redisMock := setupCached(t)

		redisMock.ExpectGet("cellsync:catalog:all").SetErr(redis.Nil)
		next.On("ListItems", mock.Anything).Return(testItems, nil).Once()
		redisMock.ExpectSet("cellsync:catalog:all", data, time.Minute).SetVal("OK")

		// Act
		items, err := catalog.ListItems(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, testItems, items)
		next.AssertExpectations(t)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Redis down falls through", func(t *testing.T) {
		// Arrange
		catalog, next, redisMock := setupCached(t)

		redisMock.ExpectGet("cellsync:catalog:all").SetErr(errors.New("connection refused"))
		next.On("ListItems", mock.Anything).Return(testItems, nil).Once()
		redisMock.ExpectSet("cellsync:catalog:all", data, time.Minute).SetErr(errors.New("connection refused"))

		// Act
		items, err := catalog.ListItems(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, testItems, items)
		next.AssertExpectations(t)
	})

	t.Run("Provider error is returned and nothing cached", func(t *testing.T) {
		catalog, next, redisMock := setupCached(t)
		providerErr := errors.New("backend unavailable")

		redisMock.ExpectGet("cellsync:catalog:all").SetErr(redis.Nil)
		next.On("ListItems", mock.Anything).Return(nil, providerErr).Once()

		_, err := catalog.ListItems(ctx)

		assert.ErrorIs(t, err, providerErr)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestCachedCatalogGetItem(t *testing.T) {
	ctx := t.Context()
	item := testItems[0]
	data, err := json.Marshal(&item)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		catalog, next, redisMock := setupCached(t)

		redisMock.ExpectGet("cellsync:catalog:1").SetVal(string(data))

		got, err := catalog.GetItem(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, item, *got)
		next.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
	})

	t.Run("Miss", func(t *testing.T) {
		catalog, next, redisMock := setupCached(t)

		redisMock.ExpectGet("cellsync:catalog:1").SetErr(redis.Nil)
		next.On("GetItem", mock.Anything, int64(1)).Return(&item, nil).Once()
		redisMock.ExpectSet("cellsync:catalog:1", data, time.Minute).SetVal("OK")

		got, err := catalog.GetItem(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, item, *got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Not found is not cached", func(t *testing.T) {
		catalog, next, redisMock := setupCached(t)

		redisMock.ExpectGet("cellsync:catalog:7").SetErr(redis.Nil)
		next.On("GetItem", mock.Anything, int64(7)).Return(nil, repository.ErrItemNotFound).Once()

		_, err := catalog.GetItem(ctx, 7)

		assert.ErrorIs(t, err, repository.ErrItemNotFound)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
