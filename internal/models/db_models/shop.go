package db_models

type ShopStatus string

const (
	ShopStatusActive    ShopStatus = "active"
	ShopStatusInactive  ShopStatus = "inactive"
	ShopStatusSuspended ShopStatus = "suspended"
)

// FreePlanName is what Shop.Plan falls back to when no subscription is active.
const FreePlanName = "Free"

type Shop struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"index"`
	Phone   string
	Address string
	LogoURL string

	// Denormalized copy of the active subscription's plan name.
	Plan   string     `gorm:"default:'Free'"`
	Status ShopStatus `gorm:"type:shop_status;index;default:'active'"`

	Users         []User
	Subscriptions []Subscription
}
