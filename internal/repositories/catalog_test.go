package repository_test

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/client"
	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	repository "github.com/aaravmahajanofficial/cellsync-pos/internal/repositories"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/repositories/mocks"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/session"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testItems = []models.CatalogItem{
	{ID: 1, Name: "iPhone 13 Pro", Price: models.Cents(699900), Available: 5, Category: "Smartphone"},
	{ID: 2, Name: "Película de Vidro", Price: models.Cents(4990), Available: 0, Category: "Acessório"},
	{ID: 4, Name: "Capinha Transparente", Price: models.Cents(2990), Available: 50, Category: "Acessório"},
}

func TestMemoryCatalog(t *testing.T) {
	ctx := t.Context()
	catalog := repository.NewMemoryCatalog(append(testItems, models.CatalogItem{ID: 1, Name: "duplicate"}))

	t.Run("List keeps order and drops duplicates", func(t *testing.T) {
		items, err := catalog.ListItems(ctx)

		require.NoError(t, err)
		assert.Equal(t, testItems, items)
	})

	t.Run("List returns a copy", func(t *testing.T) {
		items, _ := catalog.ListItems(ctx)
		items[0].Name = "changed"

		again, _ := catalog.ListItems(ctx)
		assert.Equal(t, "iPhone 13 Pro", again[0].Name)
	})

	t.Run("Get existing", func(t *testing.T) {
		item, err := catalog.GetItem(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, testItems[2], *item)
	})

	t.Run("Get missing", func(t *testing.T) {
		item, err := catalog.GetItem(ctx, 99)

		assert.Nil(t, item)
		assert.ErrorIs(t, err, repository.ErrItemNotFound)
	})
}

func TestLoadCatalogFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("Valid file", func(t *testing.T) {
		path := write(t, `
items:
  - id: 1
    name: iPhone 13 Pro
    price: "6999.00"
    available: 5
    category: Smartphone
  - id: 4
    name: Capinha Transparente
    price: 29.9
    available: 50
`)

		catalog, err := repository.LoadCatalogFile(path)
		require.NoError(t, err)

		items, err := catalog.ListItems(t.Context())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, models.Cents(699900), items[0].Price)
		assert.Equal(t, models.Cents(2990), items[1].Price)
		assert.Equal(t, 50, items[1].Available)
	})

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Malformed YAML", "items: [", "parsing catalog file"},
		{"Missing id", "items:\n  - name: x\n    price: 1\n", "has no id"},
		{"Negative price", "items:\n  - id: 3\n    price: -1\n", "negative price"},
		{"Bad price", "items:\n  - id: 3\n    price: abc\n", "parsing catalog file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repository.LoadCatalogFile(write(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := repository.LoadCatalogFile(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestAPICatalog(t *testing.T) {
	ctx := t.Context()

	t.Run("List", func(t *testing.T) {
		// Arrange
		source := new(mocks.ProductSource)
		catalog := repository.NewAPICatalog(source)

		source.On("List", mock.Anything).Return(testItems, nil).Once()

		// Act
		items, err := catalog.ListItems(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, testItems, items)
		source.AssertExpectations(t)
	})

	t.Run("Get not found maps to ErrItemNotFound", func(t *testing.T) {
		source := new(mocks.ProductSource)
		catalog := repository.NewAPICatalog(source)

		source.On("Get", mock.Anything, int64(9)).Return(nil, appErrors.NotFoundError("Produto não encontrado")).Once()

		_, err := catalog.GetItem(ctx, 9)

		assert.ErrorIs(t, err, repository.ErrItemNotFound)
		source.AssertExpectations(t)
	})

	t.Run("Other errors are wrapped", func(t *testing.T) {
		source := new(mocks.ProductSource)
		catalog := repository.NewAPICatalog(source)
		networkErr := appErrors.NetworkError("Could not reach the server").WithError(errors.New("dial"))

		source.On("List", mock.Anything).Return(nil, networkErr).Once()

		_, err := catalog.ListItems(ctx)

		assert.ErrorIs(t, err, networkErr)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetwork))
	})
}

func TestAPICatalogOverHTTP(t *testing.T) {
	// Arrange
	backend := testutils.NewFakeBackend(t)
	backend.Reply("GET /produtos", http.StatusOK, testItems)
	backend.Fail("GET /produtos/{id}", appErrors.NotFoundError("Produto não encontrado"))

	store := session.NewMemoryStore()
	require.NoError(t, store.Save(t.Context(), "tok", "Ana"))

	api, err := client.New(client.Options{BaseURL: backend.URL}, store)
	require.NoError(t, err)

	catalog := repository.NewAPICatalog(api.Products)

	// Act
	items, listErr := catalog.ListItems(t.Context())
	_, getErr := catalog.GetItem(t.Context(), 9)

	// Assert
	require.NoError(t, listErr)
	assert.Equal(t, testItems, items)
	assert.ErrorIs(t, getErr, repository.ErrItemNotFound)

	requests := backend.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "Bearer tok", requests[0].Authorization)
	assert.NotEmpty(t, requests[0].RequestID)
	assert.Equal(t, "/produtos/9", requests[1].Path)
}
