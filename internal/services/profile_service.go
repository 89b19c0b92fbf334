package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkeeper/internal/infra"
	"shopkeeper/internal/models/db_models"
	"shopkeeper/internal/models/request_models"
	"shopkeeper/pkg/utils"
)

type ProfileServiceInterface interface {
	UpdateProfile(ctx context.Context, shopID, adminID uuid.UUID, request request_models.UpdateProfileRequest) error
}

type ProfileService struct {
	db    *gorm.DB
	audit AuditLogger
}

func NewProfileService(db *gorm.DB, audit AuditLogger) ProfileServiceInterface {
	return &ProfileService{
		db:    db,
		audit: audit,
	}
}

// UpdateProfile edits the acting admin's own user row. A password change is
// logged as a security action, anything else as profile_update.
func (p *ProfileService) UpdateProfile(ctx context.Context, shopID, adminID uuid.UUID, request request_models.UpdateProfileRequest) error {

	return infra.RunAtomic(ctx, p.db, shopID, func(tx *gorm.DB, shop *db_models.Shop) error {

		var user db_models.User
		if err := tx.First(&user, "id = ? AND shop_id = ?", adminID, shop.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrUserNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if request.Name != "" {
			updates["name"] = request.Name
		}
		if request.Email != "" {
			updates["email"] = request.Email
		}

		actionType := db_models.ActionProfileUpdate
		action := "Profile updated"

		if request.NewPassword != "" {
			hash, err := utils.HashPassword(request.NewPassword)
			if err != nil {
				return err
			}
			updates["password_hash"] = hash
			actionType = db_models.ActionSecurity
			action = "Password changed"
		}

		if len(updates) > 0 {
			if err := tx.Model(&user).Updates(updates).Error; err != nil {
				return err
			}
		}

		return p.audit.Record(tx, adminID, shop.ID, actionType, map[string]any{
			"action": action,
		})
	})
}
