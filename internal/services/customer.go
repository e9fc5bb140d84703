package service

import (
	"context"
	"strings"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils"
)

type CustomerAPI interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id int64) (*models.Customer, error)
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error)
}

type CustomerService interface {
	Search(ctx context.Context, query string) ([]models.Customer, error)
	Get(ctx context.Context, id int64) (*models.Customer, error)
	Stats(customers []models.Customer) models.CustomerStats
	Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error)
}

type customerService struct {
	api CustomerAPI
}

func NewCustomerService(api CustomerAPI) CustomerService {
	return &customerService{api: api}
}

// Search matches name and e-mail ignoring case, and the phone as typed.
func (s *customerService) Search(ctx context.Context, query string) ([]models.Customer, error) {
	customers, err := s.api.List(ctx)
	if err != nil {
		return nil, asAppError(err, "Failed to load customers")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return customers, nil
	}

	lower := strings.ToLower(query)
	out := make([]models.Customer, 0, len(customers))

	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}

	return out, nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, asAppError(err, "Failed to load customer")
	}

	return customer, nil
}

func (s *customerService) Stats(customers []models.Customer) models.CustomerStats {
	stats := models.CustomerStats{Total: len(customers)}

	for _, c := range customers {
		switch c.Tier {
		case models.TierPlatinum:
			stats.Platinum++
		case models.TierGold:
			stats.Gold++
		case models.TierSilver:
			stats.Silver++
		}
	}

	return stats
}

func (s *customerService) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	req.Name = utils.SanitizeText(req.Name)

	if req.Tier == "" {
		req.Tier = models.TierBronze
	}

	customer, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, asAppError(err, "Failed to create customer")
	}

	return customer, nil
}

func (s *customerService) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	req.Name = utils.SanitizePtr(req.Name)

	customer, err := s.api.Update(ctx, id, req)
	if err != nil {
		return nil, asAppError(err, "Failed to update customer")
	}

	return customer, nil
}
