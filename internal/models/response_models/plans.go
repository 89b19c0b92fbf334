package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingPlanResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	PriceMonthly   decimal.Decimal `json:"price_monthly"`
	PriceQuarterly decimal.Decimal `json:"price_quarterly"`
	PriceYearly    decimal.Decimal `json:"price_yearly"`
	IsActive       bool            `json:"is_active"`
}
