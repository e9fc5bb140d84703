package service

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils"
)

type ServiceOrderAPI interface {
	List(ctx context.Context) ([]models.ServiceOrder, error)
	Get(ctx context.Context, id int64) (*models.ServiceOrder, error)
	Create(ctx context.Context, req *models.CreateServiceOrderRequest) (*models.ServiceOrder, error)
	Update(ctx context.Context, id int64, req *models.UpdateServiceOrderRequest) (*models.ServiceOrder, error)
}

type ServiceOrderService interface {
	List(ctx context.Context, filter models.ServiceOrderFilter) ([]models.ServiceOrder, error)
	Get(ctx context.Context, id int64) (*models.ServiceOrder, error)
	Stats(orders []models.ServiceOrder) models.ServiceOrderStats
	Create(ctx context.Context, req *models.CreateServiceOrderRequest) (*models.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id int64, status models.ServiceOrderStatus) (*models.ServiceOrder, error)
}

type serviceOrderService struct {
	api ServiceOrderAPI
}

func NewServiceOrderService(api ServiceOrderAPI) ServiceOrderService {
	return &serviceOrderService{api: api}
}

func (s *serviceOrderService) List(ctx context.Context, filter models.ServiceOrderFilter) ([]models.ServiceOrder, error) {
	orders, err := s.api.List(ctx)
	if err != nil {
		return nil, asAppError(err, "Failed to load service orders")
	}

	switch filter {
	case models.ServiceOrdersAll, "":
		return orders, nil
	case models.ServiceOrdersOpen:
		return filterOrders(orders, func(o models.ServiceOrder) bool { return o.Status.IsOpen() }), nil
	case models.ServiceOrdersCompleted:
		return filterOrders(orders, func(o models.ServiceOrder) bool { return o.Status == models.ServiceOrderCompleted }), nil
	default:
		return nil, errors.ValidationError(fmt.Sprintf("Unknown filter %q, use all, open or completed", filter))
	}
}

func filterOrders(orders []models.ServiceOrder, keep func(models.ServiceOrder) bool) []models.ServiceOrder {
	out := make([]models.ServiceOrder, 0, len(orders))

	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}

	return out
}

func (s *serviceOrderService) Get(ctx context.Context, id int64) (*models.ServiceOrder, error) {
	order, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, asAppError(err, "Failed to load service order")
	}

	return order, nil
}

func (s *serviceOrderService) Stats(orders []models.ServiceOrder) models.ServiceOrderStats {
	stats := models.ServiceOrderStats{Total: len(orders)}

	for _, o := range orders {
		switch {
		case o.Status.IsOpen():
			stats.Open++
		case o.Status == models.ServiceOrderCompleted:
			stats.Completed++
		}
	}

	return stats
}

func (s *serviceOrderService) Create(ctx context.Context, req *models.CreateServiceOrderRequest) (*models.ServiceOrder, error) {
	req.Customer = utils.SanitizeText(req.Customer)
	req.Device = utils.SanitizeText(req.Device)
	req.Problem = utils.SanitizeText(req.Problem)

	if req.Status == "" {
		req.Status = models.ServiceOrderOpen
	}

	if req.Priority == "" {
		req.Priority = models.PriorityNormal
	}

	order, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, asAppError(err, "Failed to create service order")
	}

	return order, nil
}

func (s *serviceOrderService) UpdateStatus(ctx context.Context, id int64, status models.ServiceOrderStatus) (*models.ServiceOrder, error) {
	order, err := s.api.Update(ctx, id, &models.UpdateServiceOrderRequest{Status: &status})
	if err != nil {
		return nil, asAppError(err, "Failed to update service order")
	}

	return order, nil
}
