package client

import (
	"context"
	"net/http"
	"net/url"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
)

type AuthAPI struct{ c *Client }

func (a *AuthAPI) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse

	if err := a.c.do(ctx, request{method: http.MethodPost, route: "/auth/login", path: "/auth/login", body: req}, &resp); err != nil {
		if appErrors.HasCode(err, appErrors.ErrCodeUnauthorized) {
			return nil, appErrors.UnauthorizedError("Invalid email or password").WithError(err)
		}

		return nil, err
	}

	if resp.Token == "" {
		return nil, appErrors.ThirdPartyError("Login response did not include a token")
	}

	return &resp, nil
}

func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var user models.User

	if err := a.c.do(ctx, request{method: http.MethodGet, route: "/auth/me", path: "/auth/me"}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, request{method: http.MethodPost, route: "/auth/logout", path: "/auth/logout"}, nil)
}

type DashboardAPI struct{ c *Client }

func (d *DashboardAPI) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	if err := d.c.do(ctx, request{method: http.MethodGet, route: "/dashboard/stats", path: "/dashboard/stats"}, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (d *DashboardAPI) Activities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity

	if err := d.c.do(ctx, request{method: http.MethodGet, route: "/dashboard/activities", path: "/dashboard/activities"}, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

type ProductsAPI struct{ c *Client }

func (p *ProductsAPI) List(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem

	if err := p.c.do(ctx, request{method: http.MethodGet, route: "/produtos", path: "/produtos"}, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (p *ProductsAPI) Get(ctx context.Context, id int64) (*models.CatalogItem, error) {
	var item models.CatalogItem

	if err := p.c.do(ctx, request{method: http.MethodGet, route: "/produtos/{id}", path: "/produtos/" + pathID(id)}, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (p *ProductsAPI) Search(ctx context.Context, query string) ([]models.CatalogItem, error) {
	var items []models.CatalogItem

	r := request{
		method: http.MethodGet,
		route:  "/produtos/search",
		path:   "/produtos/search",
		query:  url.Values{"q": {query}},
	}

	if err := p.c.do(ctx, r, &items); err != nil {
		return nil, err
	}

	return items, nil
}

type SalesAPI struct{ c *Client }

func (s *SalesAPI) Create(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error) {
	var sale models.Sale

	if err := s.c.do(ctx, request{method: http.MethodPost, route: "/vendas", path: "/vendas", body: req}, &sale); err != nil {
		return nil, err
	}

	return &sale, nil
}

// RecordSale sends a confirmed receipt to the backend.
func (s *SalesAPI) RecordSale(ctx context.Context, receipt *models.Receipt) error {
	_, err := s.Create(ctx, models.NewCreateSaleRequest(receipt))

	return err
}

func (s *SalesAPI) List(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale

	if err := s.c.do(ctx, request{method: http.MethodGet, route: "/vendas", path: "/vendas"}, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (s *SalesAPI) Get(ctx context.Context, id int64) (*models.Sale, error) {
	var sale models.Sale

	if err := s.c.do(ctx, request{method: http.MethodGet, route: "/vendas/{id}", path: "/vendas/" + pathID(id)}, &sale); err != nil {
		return nil, err
	}

	return &sale, nil
}

type ServiceOrdersAPI struct{ c *Client }

func (o *ServiceOrdersAPI) List(ctx context.Context) ([]models.ServiceOrder, error) {
	var orders []models.ServiceOrder

	if err := o.c.do(ctx, request{method: http.MethodGet, route: "/os", path: "/os"}, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *ServiceOrdersAPI) Get(ctx context.Context, id int64) (*models.ServiceOrder, error) {
	var order models.ServiceOrder

	if err := o.c.do(ctx, request{method: http.MethodGet, route: "/os/{id}", path: "/os/" + pathID(id)}, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *ServiceOrdersAPI) Create(ctx context.Context, req *models.CreateServiceOrderRequest) (*models.ServiceOrder, error) {
	var order models.ServiceOrder

	if err := o.c.do(ctx, request{method: http.MethodPost, route: "/os", path: "/os", body: req}, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *ServiceOrdersAPI) Update(ctx context.Context, id int64, req *models.UpdateServiceOrderRequest) (*models.ServiceOrder, error) {
	var order models.ServiceOrder

	if err := o.c.do(ctx, request{method: http.MethodPut, route: "/os/{id}", path: "/os/" + pathID(id), body: req}, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

type CustomersAPI struct{ c *Client }

func (cu *CustomersAPI) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer

	if err := cu.c.do(ctx, request{method: http.MethodGet, route: "/clientes", path: "/clientes"}, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

func (cu *CustomersAPI) Get(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer

	if err := cu.c.do(ctx, request{method: http.MethodGet, route: "/clientes/{id}", path: "/clientes/" + pathID(id)}, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (cu *CustomersAPI) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	var customer models.Customer

	if err := cu.c.do(ctx, request{method: http.MethodPost, route: "/clientes", path: "/clientes", body: req}, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (cu *CustomersAPI) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	var customer models.Customer

	if err := cu.c.do(ctx, request{method: http.MethodPut, route: "/clientes/{id}", path: "/clientes/" + pathID(id), body: req}, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

type FinanceAPI struct{ c *Client }

func (f *FinanceAPI) Summary(ctx context.Context) (*models.FinanceSummary, error) {
	var summary models.FinanceSummary

	if err := f.c.do(ctx, request{method: http.MethodGet, route: "/financeiro/summary", path: "/financeiro/summary"}, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (f *FinanceAPI) Entries(ctx context.Context, filter models.FinanceFilter) ([]models.FinanceEntry, error) {
	var entries []models.FinanceEntry

	query := url.Values{}
	if filter.Kind != "" {
		query.Set("tipo", string(filter.Kind))
	}

	if filter.From != "" {
		query.Set("de", filter.From)
	}

	if filter.To != "" {
		query.Set("ate", filter.To)
	}

	r := request{
		method: http.MethodGet,
		route:  "/financeiro/lancamentos",
		path:   "/financeiro/lancamentos",
		query:  query,
	}

	if err := f.c.do(ctx, r, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (f *FinanceAPI) CreateEntry(ctx context.Context, req *models.CreateFinanceEntryRequest) (*models.FinanceEntry, error) {
	var entry models.FinanceEntry

	if err := f.c.do(ctx, request{method: http.MethodPost, route: "/financeiro/lancamentos", path: "/financeiro/lancamentos", body: req}, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

type InventoryAPI struct{ c *Client }

func (i *InventoryAPI) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem

	if err := i.c.do(ctx, request{method: http.MethodGet, route: "/estoque", path: "/estoque"}, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (i *InventoryAPI) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var item models.InventoryItem

	if err := i.c.do(ctx, request{method: http.MethodGet, route: "/estoque/{id}", path: "/estoque/" + pathID(id)}, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (i *InventoryAPI) Summary(ctx context.Context) (*models.InventorySummary, error) {
	var summary models.InventorySummary

	if err := i.c.do(ctx, request{method: http.MethodGet, route: "/estoque/summary", path: "/estoque/summary"}, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
