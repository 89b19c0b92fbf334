package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusExpired   SubscriptionStatus = "expired"
)

type DurationTier string

const (
	DurationMonthly   DurationTier = "monthly"
	DurationQuarterly DurationTier = "quarterly"
	DurationYearly    DurationTier = "yearly"
)

// Subscription is one paid term. Renewal inserts a new row and leaves the
// previous one at status=active, so uniqueness of the active row is not
// physically enforced; readers must take the latest expires_at among active
// rows as the current term.
type Subscription struct {
	BaseModel
	ShopID   uuid.UUID       `gorm:"index"`
	PlanName string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Duration DurationTier    `gorm:"type:duration_tier"`

	// Unix seconds
	StartedAt int64 `gorm:"not null"`
	ExpiresAt int64 `gorm:"not null;index"`

	Status        SubscriptionStatus `gorm:"type:subscription_status;index"`
	PaymentMethod string
	AutoRenew     bool `gorm:"default:false"`

	Shop Shop `gorm:"foreignKey:ShopID"`
}
