package models

type DashboardStats struct {
	SalesToday        Money `json:"vendasHoje"`
	OpenServiceOrders int   `json:"osAbertas"`
	Products          int   `json:"produtos"`
	Customers         int   `json:"clientes"`
}

type Activity struct {
	ID          int64  `json:"id"`
	Kind        string `json:"tipo"`
	Description string `json:"descricao"`
	Date        string `json:"data"`
}
