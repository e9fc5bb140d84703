package service

import (
	"context"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
)

type InventoryAPI interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	Get(ctx context.Context, id int64) (*models.InventoryItem, error)
	Summary(ctx context.Context) (*models.InventorySummary, error)
}

type InventoryService interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	Search(ctx context.Context, query string) ([]models.InventoryItem, error)
	Get(ctx context.Context, id int64) (*models.InventoryItem, error)
	Summary(ctx context.Context) (*models.InventorySummary, error)
	Summarize(items []models.InventoryItem) models.InventorySummary
}

type inventoryService struct {
	api InventoryAPI
}

func NewInventoryService(api InventoryAPI) InventoryService {
	return &inventoryService{api: api}
}

func (s *inventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.api.List(ctx)
	if err != nil {
		return nil, asAppError(err, "Failed to load inventory")
	}

	return items, nil
}

// Search matches the name or the IMEI.
func (s *inventoryService) Search(ctx context.Context, query string) ([]models.InventoryItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return filterBy(items, query, func(i models.InventoryItem) []string {
		if i.IMEI != nil {
			return []string{i.Name, *i.IMEI}
		}

		return []string{i.Name}
	}), nil
}

func (s *inventoryService) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, asAppError(err, "Failed to load inventory item")
	}

	return item, nil
}

func (s *inventoryService) Summary(ctx context.Context) (*models.InventorySummary, error) {
	summary, err := s.api.Summary(ctx)
	if err != nil {
		return nil, asAppError(err, "Failed to load inventory summary")
	}

	return summary, nil
}

// Summarize counts locally; Low does not include items that are out of stock.
func (s *inventoryService) Summarize(items []models.InventoryItem) models.InventorySummary {
	summary := models.InventorySummary{Total: len(items)}

	for _, item := range items {
		switch item.StockStatus() {
		case models.StockLow:
			summary.Low++
		case models.StockOutOfStock:
			summary.OutOfStock++
		}
	}

	return summary
}
