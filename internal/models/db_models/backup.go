package db_models

import (
	"github.com/google/uuid"
)

type BackupStatus string

const (
	BackupStatusPending   BackupStatus = "pending"
	BackupStatusCompleted BackupStatus = "completed"
	BackupStatusFailed    BackupStatus = "failed"
)

// Backup tracks a requested export. File generation happens out of process;
// this service only creates the pending record.
type Backup struct {
	BaseModel
	ShopID      uuid.UUID    `gorm:"index"`
	RequestedBy uuid.UUID    `gorm:"index"`
	Status      BackupStatus `gorm:"type:backup_status;index;default:'pending'"`
	FileURL     string
}
