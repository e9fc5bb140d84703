package models

type EntryKind string

const (
	EntryIncome  EntryKind = "receita"
	EntryExpense EntryKind = "despesa"
)

type FinanceEntry struct {
	ID          int64     `json:"id"`
	Kind        EntryKind `json:"tipo"`
	Description string    `json:"descricao"`
	Amount      Money     `json:"valor"`
	Date        string    `json:"data"`
	Category    string    `json:"categoria"`
}

type FinanceSummary struct {
	Income   Money `json:"receitas"`
	Expenses Money `json:"despesas"`
	Balance  Money `json:"saldo"`
}

// FinanceFilter is sent as query parameters; empty fields are omitted.
type FinanceFilter struct {
	Kind EntryKind `json:"tipo,omitempty" validate:"omitempty,oneof=receita despesa"`
	From string    `json:"de,omitempty"`
	To   string    `json:"ate,omitempty"`
}

type CreateFinanceEntryRequest struct {
	Kind        EntryKind `json:"tipo" validate:"required,oneof=receita despesa"`
	Description string    `json:"descricao" validate:"required,max=200"`
	Amount      Money     `json:"valor" validate:"gt=0"`
	Date        string    `json:"data" validate:"required"`
	Category    string    `json:"categoria" validate:"required"`
}
