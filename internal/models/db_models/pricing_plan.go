package db_models

import (
	"github.com/shopspring/decimal"
)

// PricingPlan is the selectable catalog entry. Rows are owned by a separate
// catalog-management concern; this service only reads them.
type PricingPlan struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Description *string

	PriceMonthly   decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceQuarterly decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceYearly    decimal.Decimal `gorm:"type:numeric(12,2)"`

	IsActive bool `gorm:"default:true"`
}
