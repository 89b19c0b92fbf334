package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActionType string

const (
	ActionShopUpdate            ActionType = "shop_update"
	ActionSubscriptionUpdate    ActionType = "subscription_update"
	ActionSubscriptionCancelled ActionType = "subscription_cancelled"
	ActionShopStatusUpdate      ActionType = "shop_status_update"
	ActionBackupCreated         ActionType = "backup_created"
	ActionProfileUpdate         ActionType = "profile_update"
	ActionSecurity              ActionType = "security"
)

// AdminAction is the audit ledger. Rows are append-only: nothing in this
// codebase updates or deletes one after it is written, so there is no
// UpdatedAt and no soft delete.
type AdminAction struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AdminID    uuid.UUID      `gorm:"index"`
	ShopID     uuid.UUID      `gorm:"index"`
	ActionType ActionType     `gorm:"type:action_type;index"`
	Details    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt  int64
}

func (a *AdminAction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	return nil
}
