package models

type SaleItem struct {
	ProductID int64 `json:"produtoId" validate:"required"`
	Quantity  int   `json:"quantidade" validate:"required,min=1"`
	UnitPrice Money `json:"precoUnitario" validate:"min=0"`
}

type Sale struct {
	ID            int64         `json:"id"`
	Items         []SaleItem    `json:"itens"`
	Total         Money         `json:"total"`
	PaymentMethod PaymentMethod `json:"formaPagamento"`
	Tendered      Money         `json:"valorRecebido"`
	Change        Money         `json:"troco"`
	Date          string        `json:"data,omitempty"`
	ReceiptID     string        `json:"reciboId,omitempty"`
}

type CreateSaleRequest struct {
	Items         []SaleItem    `json:"itens" validate:"required,min=1,dive"`
	Total         Money         `json:"total" validate:"min=0"`
	PaymentMethod PaymentMethod `json:"formaPagamento" validate:"required,oneof=cash card instant_transfer"`
	Tendered      Money         `json:"valorRecebido"`
	Change        Money         `json:"troco" validate:"min=0"`
	ReceiptID     string        `json:"reciboId" validate:"required,uuid"`
}

func NewCreateSaleRequest(r *Receipt) *CreateSaleRequest {
	items := make([]SaleItem, 0, len(r.Lines))
	for _, l := range r.Lines {
		items = append(items, SaleItem{
			ProductID: l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	return &CreateSaleRequest{
		Items:         items,
		Total:         r.Total,
		PaymentMethod: r.Method,
		Tendered:      r.Tendered,
		Change:        r.Change,
		ReceiptID:     r.ID.String(),
	}
}
