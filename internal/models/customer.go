package models

type LoyaltyTier string

const (
	TierPlatinum LoyaltyTier = "platina"
	TierGold     LoyaltyTier = "ouro"
	TierSilver   LoyaltyTier = "prata"
	TierBronze   LoyaltyTier = "bronze"
)

type Customer struct {
	ID        int64       `json:"id"`
	Name      string      `json:"nome"`
	Phone     string      `json:"telefone"`
	Email     string      `json:"email"`
	Purchases int         `json:"compras"`
	Tier      LoyaltyTier `json:"fidelidade"`
}

type CustomerStats struct {
	Total    int `json:"total"`
	Platinum int `json:"platinum"`
	Gold     int `json:"gold"`
	Silver   int `json:"silver"`
}

type CreateCustomerRequest struct {
	Name  string      `json:"nome" validate:"required,min=2,max=120"`
	Phone string      `json:"telefone" validate:"required"`
	Email string      `json:"email" validate:"omitempty,email"`
	Tier  LoyaltyTier `json:"fidelidade,omitempty" validate:"omitempty,oneof=platina ouro prata bronze"`
}

type UpdateCustomerRequest struct {
	Name  *string      `json:"nome,omitempty" validate:"omitempty,min=2,max=120"`
	Phone *string      `json:"telefone,omitempty"`
	Email *string      `json:"email,omitempty" validate:"omitempty,email"`
	Tier  *LoyaltyTier `json:"fidelidade,omitempty" validate:"omitempty,oneof=platina ouro prata bronze"`
}
