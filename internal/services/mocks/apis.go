package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/stretchr/testify/mock"
)

type SaleRecorder struct {
	mock.Mock
}

func (_m *SaleRecorder) RecordSale(ctx context.Context, receipt *models.Receipt) error {
	return _m.Called(ctx, receipt).Error(0)
}

type AuthAPI struct {
	mock.Mock
}

func (_m *AuthAPI) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LoginResponse)
	}

	return r0, ret.Error(1)
}

func (_m *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	ret := _m.Called(ctx)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	return r0, ret.Error(1)
}

func (_m *AuthAPI) Logout(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

type InventoryAPI struct {
	mock.Mock
}

func (_m *InventoryAPI) List(ctx context.Context) ([]models.InventoryItem, error) {
	ret := _m.Called(ctx)

	var r0 []models.InventoryItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.InventoryItem)
	}

	return r0, ret.Error(1)
}

func (_m *InventoryAPI) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.InventoryItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.InventoryItem)
	}

	return r0, ret.Error(1)
}

func (_m *InventoryAPI) Summary(ctx context.Context) (*models.InventorySummary, error) {
	ret := _m.Called(ctx)

	var r0 *models.InventorySummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.InventorySummary)
	}

	return r0, ret.Error(1)
}

type ServiceOrderAPI struct {
	mock.Mock
}

func (_m *ServiceOrderAPI) List(ctx context.Context) ([]models.ServiceOrder, error) {
	ret := _m.Called(ctx)

	var r0 []models.ServiceOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.ServiceOrder)
	}

	return r0, ret.Error(1)
}

func (_m *ServiceOrderAPI) Get(ctx context.Context, id int64) (*models.ServiceOrder, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.ServiceOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ServiceOrder)
	}

	return r0, ret.Error(1)
}

func (_m *ServiceOrderAPI) Create(ctx context.Context, req *models.CreateServiceOrderRequest) (*models.ServiceOrder, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.ServiceOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ServiceOrder)
	}

	return r0, ret.Error(1)
}

func (_m *ServiceOrderAPI) Update(ctx context.Context, id int64, req *models.UpdateServiceOrderRequest) (*models.ServiceOrder, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.ServiceOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ServiceOrder)
	}

	return r0, ret.Error(1)
}

type CustomerAPI struct {
	mock.Mock
}

func (_m *CustomerAPI) List(ctx context.Context) ([]models.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *CustomerAPI) Get(ctx context.Context, id int64) (*models.Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *CustomerAPI) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *CustomerAPI) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Customer)
	}

	return r0, ret.Error(1)
}

type FinanceAPI struct {
	mock.Mock
}

func (_m *FinanceAPI) Summary(ctx context.Context) (*models.FinanceSummary, error) {
	ret := _m.Called(ctx)

	var r0 *models.FinanceSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.FinanceSummary)
	}

	return r0, ret.Error(1)
}

func (_m *FinanceAPI) Entries(ctx context.Context, filter models.FinanceFilter) ([]models.FinanceEntry, error) {
	ret := _m.Called(ctx, filter)

	var r0 []models.FinanceEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.FinanceEntry)
	}

	return r0, ret.Error(1)
}

func (_m *FinanceAPI) CreateEntry(ctx context.Context, req *models.CreateFinanceEntryRequest) (*models.FinanceEntry, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.FinanceEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.FinanceEntry)
	}

	return r0, ret.Error(1)
}

type DashboardAPI struct {
	mock.Mock
}

func (_m *DashboardAPI) Stats(ctx context.Context) (*models.DashboardStats, error) {
	ret := _m.Called(ctx)

	var r0 *models.DashboardStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DashboardStats)
	}

	return r0, ret.Error(1)
}

func (_m *DashboardAPI) Activities(ctx context.Context) ([]models.Activity, error) {
	ret := _m.Called(ctx)

	var r0 []models.Activity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Activity)
	}

	return r0, ret.Error(1)
}
