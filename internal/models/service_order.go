package models

type ServiceOrderStatus string

const (
	ServiceOrderOpen         ServiceOrderStatus = "aberta"
	ServiceOrderInProgress   ServiceOrderStatus = "em_andamento"
	ServiceOrderAwaitingPart ServiceOrderStatus = "aguardando_peca"
	ServiceOrderCompleted    ServiceOrderStatus = "concluida"
	ServiceOrderCancelled    ServiceOrderStatus = "cancelada"
)

type ServiceOrderPriority string

const (
	PriorityUrgent ServiceOrderPriority = "urgente"
	PriorityHigh   ServiceOrderPriority = "alta"
	PriorityNormal ServiceOrderPriority = "normal"
	PriorityLow    ServiceOrderPriority = "baixa"
)

var serviceOrderLabels = map[ServiceOrderStatus]string{
	ServiceOrderOpen:         "Open",
	ServiceOrderInProgress:   "In progress",
	ServiceOrderAwaitingPart: "Awaiting part",
	ServiceOrderCompleted:    "Completed",
	ServiceOrderCancelled:    "Cancelled",
}

// IsOpen is true for every status that still needs work at the bench.
func (s ServiceOrderStatus) IsOpen() bool {
	return s == ServiceOrderOpen || s == ServiceOrderInProgress || s == ServiceOrderAwaitingPart
}

func (s ServiceOrderStatus) Label() string {
	if l, ok := serviceOrderLabels[s]; ok {
		return l
	}

	return string(s)
}

type ServiceOrder struct {
	ID       int64                `json:"id"`
	Customer string               `json:"cliente"`
	Device   string               `json:"aparelho"`
	Problem  string               `json:"problema"`
	Status   ServiceOrderStatus   `json:"status"`
	Date     string               `json:"data"`
	Priority ServiceOrderPriority `json:"prioridade"`
}

type ServiceOrderFilter string

const (
	ServiceOrdersAll       ServiceOrderFilter = "all"
	ServiceOrdersOpen      ServiceOrderFilter = "open"
	ServiceOrdersCompleted ServiceOrderFilter = "completed"
)

type ServiceOrderStats struct {
	Total     int `json:"total"`
	Open      int `json:"open"`
	Completed int `json:"completed"`
}

type CreateServiceOrderRequest struct {
	Customer string               `json:"cliente" validate:"required"`
	Device   string               `json:"aparelho" validate:"required"`
	Problem  string               `json:"problema" validate:"required"`
	Status   ServiceOrderStatus   `json:"status" validate:"required,oneof=aberta em_andamento aguardando_peca concluida cancelada"`
	Priority ServiceOrderPriority `json:"prioridade" validate:"required,oneof=urgente alta normal baixa"`
}

type UpdateServiceOrderRequest struct {
	Problem  *string               `json:"problema,omitempty"`
	Status   *ServiceOrderStatus   `json:"status,omitempty" validate:"omitempty,oneof=aberta em_andamento aguardando_peca concluida cancelada"`
	Priority *ServiceOrderPriority `json:"prioridade,omitempty" validate:"omitempty,oneof=urgente alta normal baixa"`
}
