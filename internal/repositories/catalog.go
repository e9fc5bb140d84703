package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrItemNotFound = errors.New("catalog item not found")

// CatalogProvider is the read-only source of sellable items.
type CatalogProvider interface {
	ListItems(ctx context.Context) ([]models.CatalogItem, error)
	GetItem(ctx context.Context, id int64) (*models.CatalogItem, error)
}

// ProductSource is the part of the API client the catalog needs.
type ProductSource interface {
	List(ctx context.Context) ([]models.CatalogItem, error)
	Get(ctx context.Context, id int64) (*models.CatalogItem, error)
}

type apiCatalog struct {
	products ProductSource
}

func NewAPICatalog(products ProductSource) CatalogProvider {
	return &apiCatalog{products: products}
}

func (r *apiCatalog) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	items, err := r.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return items, nil
}

func (r *apiCatalog) GetItem(ctx context.Context, id int64) (*models.CatalogItem, error) {
	item, err := r.products.Get(ctx, id)
	if err != nil {
		if appErrors.HasCode(err, appErrors.ErrCodeNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrItemNotFound, id)
		}

		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}

	return item, nil
}

type memoryCatalog struct {
	items []models.CatalogItem
	byID  map[int64]int
}

// NewMemoryCatalog serves a fixed list of items, kept in the given order. Later
// duplicates of an id are ignored.
func NewMemoryCatalog(items []models.CatalogItem) CatalogProvider {
	c := &memoryCatalog{byID: make(map[int64]int, len(items))}

	for _, item := range items {
		if _, ok := c.byID[item.ID]; ok {
			continue
		}

		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	return c
}

func (r *memoryCatalog) ListItems(_ context.Context) ([]models.CatalogItem, error) {
	out := make([]models.CatalogItem, len(r.items))
	copy(out, r.items)

	return out, nil
}

func (r *memoryCatalog) GetItem(_ context.Context, id int64) (*models.CatalogItem, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}

	item := r.items[idx]

	return &item, nil
}

// LoadCatalogFile reads a YAML catalog of the form
//
//	items:
//	  - id: 1
//	    name: iPhone 13 Pro
//	    price: "6999.00"
//	    available: 5
//	    category: Smartphone
func LoadCatalogFile(path string) (CatalogProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file models.CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	for i, item := range file.Items {
		if item.ID == 0 {
			return nil, fmt.Errorf("catalog file %s: item %d has no id", path, i)
		}

		if item.Price.IsNegative() || item.Available < 0 {
			return nil, fmt.Errorf("catalog file %s: item %d has negative price or stock", path, item.ID)
		}
	}

	return NewMemoryCatalog(file.Items), nil
}
