package service

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	repository "github.com/aaravmahajanofficial/cellsync-pos/internal/repositories"
)

type CatalogService interface {
	List(ctx context.Context) ([]models.CatalogItem, error)
	Get(ctx context.Context, id int64) (*models.CatalogItem, error)
	Search(ctx context.Context, query string) ([]models.CatalogItem, error)
}

type catalogService struct {
	repo repository.CatalogProvider
}

func NewCatalogService(repo repository.CatalogProvider) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) List(ctx context.Context) ([]models.CatalogItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, asAppError(err, "Failed to load products")
	}

	return items, nil
}

func (s *catalogService) Get(ctx context.Context, id int64) (*models.CatalogItem, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, asAppError(err, "Failed to load product")
	}

	return item, nil
}

// Search filters by a case-insensitive substring of the name. An empty query
// returns everything.
func (s *catalogService) Search(ctx context.Context, query string) ([]models.CatalogItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return filterBy(items, query, func(item models.CatalogItem) []string {
		return []string{item.Name}
	}), nil
}

// asAppError keeps AppErrors from lower layers intact and wraps anything else.
func asAppError(err error, message string) error {
	if _, ok := errors.IsAppError(err); ok {
		return err
	}

	return errors.InternalError(message).WithError(err)
}

// filterBy keeps the items where any field returned by fields contains query,
// ignoring case.
func filterBy[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	out := make([]T, 0, len(items))

	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), query) {
				out = append(out, item)
				break
			}
		}
	}

	return out
}
