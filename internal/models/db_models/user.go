package db_models

import (
	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	BaseModel
	ShopID       uuid.UUID `gorm:"index"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string     `gorm:"default:'staff'"`
	Status       UserStatus `gorm:"type:user_status;index;default:'active'"`

	Shop Shop `gorm:"foreignKey:ShopID"`
}
