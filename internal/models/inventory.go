package models

type StockStatus string

const (
	StockOK         StockStatus = "ok"
	StockLow        StockStatus = "low"
	StockOutOfStock StockStatus = "out_of_stock"
)

type InventoryItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade"`
	Minimum  int     `json:"minimo"`
	IMEI     *string `json:"imei"`
}

func (i InventoryItem) StockStatus() StockStatus {
	switch {
	case i.Quantity == 0:
		return StockOutOfStock
	case i.Quantity <= i.Minimum:
		return StockLow
	default:
		return StockOK
	}
}

type InventorySummary struct {
	Total      int `json:"total"`
	Low        int `json:"baixo"`
	OutOfStock int `json:"esgotados"`
}
