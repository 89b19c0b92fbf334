package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkeeper/internal/models/db_models"
)

type IAdminActionRepository interface {
	ListByShop(ctx context.Context, shopID uuid.UUID, page, pageSize int) ([]db_models.AdminAction, error)
}

type adminActionRepository struct {
	db *gorm.DB
}

func NewAdminActionRepository(db *gorm.DB) IAdminActionRepository {
	return &adminActionRepository{db: db}
}

func (a *adminActionRepository) ListByShop(ctx context.Context, shopID uuid.UUID, page, pageSize int) ([]db_models.AdminAction, error) {

	var actions []db_models.AdminAction
	err := a.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&actions).Error

	if err != nil {
		return nil, err
	}

	return actions, nil
}
