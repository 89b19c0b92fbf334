package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkeeper/internal/models/db_models"
)

// AuditLogger appends immutable AdminAction rows. Record must run on the same
// open transaction as the state change it documents, so a failed write aborts
// the whole operation — an unaudited mutation is worse than a rejected
// request. There are no retries.
type AuditLogger interface {
	Record(tx *gorm.DB, adminID, shopID uuid.UUID, actionType db_models.ActionType, details map[string]any) error
}

type auditLogger struct{}

func NewAuditLogger() AuditLogger {
	return &auditLogger{}
}

func (auditLogger) Record(tx *gorm.DB, adminID, shopID uuid.UUID, actionType db_models.ActionType, details map[string]any) error {

	payload, err := json.Marshal(details)
	if err != nil {
		return err
	}

	entry := db_models.AdminAction{
		AdminID:    adminID,
		ShopID:     shopID,
		ActionType: actionType,
		Details:    payload,
	}

	return tx.Create(&entry).Error
}
