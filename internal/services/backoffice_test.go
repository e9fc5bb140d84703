package service_test

import (
	"testing"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	service "github.com/aaravmahajanofficial/cellsync-pos/internal/services"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestInventoryService(t *testing.T) {
	items := []models.InventoryItem{
		{ID: 1, Name: "iPhone 13 Pro", Quantity: 5, Minimum: 2, IMEI: strPtr("356938035643809")},
		{ID: 2, Name: "Carregador USB-C", Quantity: 2, Minimum: 5},
		{ID: 3, Name: "Película de Vidro", Quantity: 0, Minimum: 10},
		{ID: 4, Name: "Fone Bluetooth", Quantity: 3, Minimum: 3},
	}

	t.Run("Summarize", func(t *testing.T) {
		svc := service.NewInventoryService(new(mocks.InventoryAPI))

		summary := svc.Summarize(items)

		assert.Equal(t, models.InventorySummary{Total: 4, Low: 2, OutOfStock: 1}, summary)
	})

	t.Run("Search by name or IMEI", func(t *testing.T) {
		api := new(mocks.InventoryAPI)
		svc := service.NewInventoryService(api)

		api.On("List", mock.Anything).Return(items, nil).Twice()

		byName, err := svc.Search(t.Context(), "película")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, int64(3), byName[0].ID)

		byIMEI, err := svc.Search(t.Context(), "3569380")
		require.NoError(t, err)
		require.Len(t, byIMEI, 1)
		assert.Equal(t, int64(1), byIMEI[0].ID)
	})
}

func TestServiceOrderService(t *testing.T) {
	orders := []models.ServiceOrder{
		{ID: 1, Status: models.ServiceOrderOpen},
		{ID: 2, Status: models.ServiceOrderInProgress},
		{ID: 3, Status: models.ServiceOrderAwaitingPart},
		{ID: 4, Status: models.ServiceOrderCompleted},
		{ID: 5, Status: models.ServiceOrderCancelled},
	}

	ids := func(os []models.ServiceOrder) []int64 {
		out := make([]int64, 0, len(os))
		for _, o := range os {
			out = append(out, o.ID)
		}

		return out
	}

	tests := []struct {
		filter  models.ServiceOrderFilter
		wantIDs []int64
	}{
		{models.ServiceOrdersAll, []int64{1, 2, 3, 4, 5}},
		{models.ServiceOrdersOpen, []int64{1, 2, 3}},
		{models.ServiceOrdersCompleted, []int64{4}},
	}

	for _, tt := range tests {
		t.Run("Filter "+string(tt.filter), func(t *testing.T) {
			api := new(mocks.ServiceOrderAPI)
			svc := service.NewServiceOrderService(api)
			api.On("List", mock.Anything).Return(orders, nil).Once()

			got, err := svc.List(t.Context(), tt.filter)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}

	t.Run("Unknown filter", func(t *testing.T) {
		api := new(mocks.ServiceOrderAPI)
		svc := service.NewServiceOrderService(api)
		api.On("List", mock.Anything).Return(orders, nil).Once()

		_, err := svc.List(t.Context(), "late")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})

	t.Run("Stats", func(t *testing.T) {
		svc := service.NewServiceOrderService(new(mocks.ServiceOrderAPI))

		assert.Equal(t, models.ServiceOrderStats{Total: 5, Open: 3, Completed: 1}, svc.Stats(orders))
	})

	t.Run("Create applies defaults", func(t *testing.T) {
		// Arrange
		api := new(mocks.ServiceOrderAPI)
		svc := service.NewServiceOrderService(api)
		req := &models.CreateServiceOrderRequest{Customer: "Maria", Device: "iPhone 11", Problem: "<p>Tela quebrada</p>"}

		api.On("Create", mock.Anything, mock.MatchedBy(func(r *models.CreateServiceOrderRequest) bool {
			return r.Status == models.ServiceOrderOpen && r.Priority == models.PriorityNormal && r.Problem == "Tela quebrada"
		})).Return(&models.ServiceOrder{ID: 9, Status: models.ServiceOrderOpen}, nil).Once()

		// Act
		order, err := svc.Create(t.Context(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(9), order.ID)
		api.AssertExpectations(t)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		api := new(mocks.ServiceOrderAPI)
		svc := service.NewServiceOrderService(api)

		api.On("Update", mock.Anything, int64(4), mock.MatchedBy(func(r *models.UpdateServiceOrderRequest) bool {
			return r.Status != nil && *r.Status == models.ServiceOrderCompleted && r.Priority == nil
		})).Return(&models.ServiceOrder{ID: 4, Status: models.ServiceOrderCompleted}, nil).Once()

		order, err := svc.UpdateStatus(t.Context(), 4, models.ServiceOrderCompleted)

		require.NoError(t, err)
		assert.Equal(t, models.ServiceOrderCompleted, order.Status)
		api.AssertExpectations(t)
	})
}

func TestCustomerService(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Maria Silva", Phone: "(11) 98765-4321", Email: "maria@email.com", Tier: models.TierGold},
		{ID: 2, Name: "João Santos", Phone: "(11) 91234-5678", Email: "joao@email.com", Tier: models.TierSilver},
		{ID: 3, Name: "Ana Costa", Phone: "(21) 99876-5432", Email: "ANA@EMAIL.COM", Tier: models.TierPlatinum},
		{ID: 4, Name: "Pedro Lima", Phone: "(31) 97654-3210", Email: "pedro@email.com", Tier: models.TierGold},
		{ID: 5, Name: "Carla Dias", Phone: "(41) 90000-0000", Email: "", Tier: models.TierBronze},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"Empty", "", []int64{1, 2, 3, 4, 5}},
		{"Name ignoring case", "SILVA", []int64{1}},
		{"E-mail ignoring case", "ana@email", []int64{3}},
		{"Phone substring", "91234", []int64{2}},
		{"Area code", "(11)", []int64{1, 2}},
		{"No match", "zzz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mocks.CustomerAPI)
			svc := service.NewCustomerService(api)
			api.On("List", mock.Anything).Return(customers, nil).Once()

			got, err := svc.Search(t.Context(), tt.query)
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	t.Run("Create strips markup and defaults the tier", func(t *testing.T) {
		api := new(mocks.CustomerAPI)
		svc := service.NewCustomerService(api)

		api.On("Create", mock.Anything, mock.MatchedBy(func(r *models.CreateCustomerRequest) bool {
			return r.Name == "Ana Costa" && r.Tier == models.TierBronze
		})).Return(&models.Customer{ID: 6, Name: "Ana Costa"}, nil).Once()

		_, err := svc.Create(t.Context(), &models.CreateCustomerRequest{Name: "<b>Ana</b> Costa", Phone: "(21) 99876-5432"})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("Stats", func(t *testing.T) {
		svc := service.NewCustomerService(new(mocks.CustomerAPI))

		assert.Equal(t, models.CustomerStats{Total: 5, Platinum: 1, Gold: 2, Silver: 1}, svc.Stats(customers))
	})

	t.Run("Backend error passes through", func(t *testing.T) {
		api := new(mocks.CustomerAPI)
		svc := service.NewCustomerService(api)
		api.On("Create", mock.Anything, mock.Anything).Return(nil, appErrors.ValidationError("Telefone inválido")).Once()

		_, err := svc.Create(t.Context(), &models.CreateCustomerRequest{Name: "Zé", Phone: "x"})

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

func TestFinanceService(t *testing.T) {
	entries := []models.FinanceEntry{
		{ID: 1, Kind: models.EntryIncome, Amount: models.Cents(1550000)},
		{ID: 2, Kind: models.EntryExpense, Amount: models.Cents(350000)},
		{ID: 3, Kind: models.EntryExpense, Amount: models.Cents(120050)},
		{ID: 4, Kind: models.EntryIncome, Amount: models.Cents(899000)},
	}

	t.Run("Summarize", func(t *testing.T) {
		svc := service.NewFinanceService(new(mocks.FinanceAPI))

		summary := svc.Summarize(entries)

		assert.Equal(t, models.Cents(2449000), summary.Income)
		assert.Equal(t, models.Cents(470050), summary.Expenses)
		assert.Equal(t, models.Cents(1978950), summary.Balance)
	})

	t.Run("Negative balance", func(t *testing.T) {
		svc := service.NewFinanceService(new(mocks.FinanceAPI))

		summary := svc.Summarize(entries[1:3])

		assert.Equal(t, models.Cents(-470050), summary.Balance)
	})

	tests := []struct {
		kind string
		want models.FinanceFilter
	}{
		{"", models.FinanceFilter{}},
		{"all", models.FinanceFilter{}},
		{"receita", models.FinanceFilter{Kind: models.EntryIncome}},
		{"despesa", models.FinanceFilter{Kind: models.EntryExpense}},
	}

	for _, tt := range tests {
		t.Run("List "+tt.kind, func(t *testing.T) {
			api := new(mocks.FinanceAPI)
			svc := service.NewFinanceService(api)
			api.On("Entries", mock.Anything, tt.want).Return(entries, nil).Once()

			_, err := svc.List(t.Context(), tt.kind)

			require.NoError(t, err)
			api.AssertExpectations(t)
		})
	}

	t.Run("List unknown kind", func(t *testing.T) {
		svc := service.NewFinanceService(new(mocks.FinanceAPI))

		_, err := svc.List(t.Context(), "lucro")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

func TestDashboardService(t *testing.T) {
	stats := &models.DashboardStats{SalesToday: models.Cents(1245000), OpenServiceOrders: 8}

	t.Run("Activities failure keeps the stats", func(t *testing.T) {
		api := new(mocks.DashboardAPI)
		svc := service.NewDashboardService(api)

		api.On("Stats", mock.Anything).Return(stats, nil).Once()
		api.On("Activities", mock.Anything).Return(nil, appErrors.TimeoutError("slow")).Once()

		got, activities, err := svc.Overview(t.Context())

		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Nil(t, activities)
	})

	t.Run("Stats failure", func(t *testing.T) {
		api := new(mocks.DashboardAPI)
		svc := service.NewDashboardService(api)

		api.On("Stats", mock.Anything).Return(nil, appErrors.NetworkError("offline")).Once()

		_, _, err := svc.Overview(t.Context())

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNetwork))
		api.AssertNotCalled(t, "Activities", mock.Anything)
	})
}
