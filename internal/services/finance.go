package service

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils"
)

type FinanceAPI interface {
	Summary(ctx context.Context) (*models.FinanceSummary, error)
	Entries(ctx context.Context, filter models.FinanceFilter) ([]models.FinanceEntry, error)
	CreateEntry(ctx context.Context, req *models.CreateFinanceEntryRequest) (*models.FinanceEntry, error)
}

type FinanceService interface {
	// List accepts "all" (or empty), "receita" or "despesa".
	List(ctx context.Context, kind string) ([]models.FinanceEntry, error)
	Summary(ctx context.Context) (*models.FinanceSummary, error)
	Summarize(entries []models.FinanceEntry) models.FinanceSummary
	Create(ctx context.Context, req *models.CreateFinanceEntryRequest) (*models.FinanceEntry, error)
}

type financeService struct {
	api FinanceAPI
}

func NewFinanceService(api FinanceAPI) FinanceService {
	return &financeService{api: api}
}

func (s *financeService) List(ctx context.Context, kind string) ([]models.FinanceEntry, error) {
	var filter models.FinanceFilter

	switch models.EntryKind(kind) {
	case "", "all":
	case models.EntryIncome, models.EntryExpense:
		filter.Kind = models.EntryKind(kind)
	default:
		return nil, errors.ValidationError(fmt.Sprintf("Unknown entry type %q, use all, receita or despesa", kind))
	}

	entries, err := s.api.Entries(ctx, filter)
	if err != nil {
		return nil, asAppError(err, "Failed to load finance entries")
	}

	return entries, nil
}

func (s *financeService) Summary(ctx context.Context) (*models.FinanceSummary, error) {
	summary, err := s.api.Summary(ctx)
	if err != nil {
		return nil, asAppError(err, "Failed to load finance summary")
	}

	return summary, nil
}

func (s *financeService) Summarize(entries []models.FinanceEntry) models.FinanceSummary {
	var summary models.FinanceSummary

	for _, e := range entries {
		switch e.Kind {
		case models.EntryIncome:
			summary.Income += e.Amount
		case models.EntryExpense:
			summary.Expenses += e.Amount
		}
	}

	summary.Balance = summary.Income - summary.Expenses

	return summary
}

func (s *financeService) Create(ctx context.Context, req *models.CreateFinanceEntryRequest) (*models.FinanceEntry, error) {
	req.Description = utils.SanitizeText(req.Description)
	req.Category = utils.SanitizeText(req.Category)

	entry, err := s.api.CreateEntry(ctx, req)
	if err != nil {
		return nil, asAppError(err, "Failed to create finance entry")
	}

	return entry, nil
}
