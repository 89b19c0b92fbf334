package response_models

import (
	"github.com/google/uuid"
)

type ShopResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
	LogoURL string    `json:"logo_url"`
	Plan    string    `json:"plan"`
	Status  string    `json:"status"`

	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}
