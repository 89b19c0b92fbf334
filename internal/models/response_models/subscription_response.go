package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionResponse struct {
	ID            uuid.UUID       `json:"id"`
	PlanName      string          `json:"plan_name"`
	Price         decimal.Decimal `json:"price"`
	Duration      string          `json:"duration"`
	StartedAt     int64           `json:"started_at"`
	ExpiresAt     int64           `json:"expires_at"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	AutoRenew     bool            `json:"auto_renew"`
}
