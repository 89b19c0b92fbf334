package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkeeper/internal/models/db_models"
)

type IUserRepository interface {
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]db_models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]db_models.User, error) {

	var users []db_models.User
	err := u.db.WithContext(ctx).Where("shop_id = ?", shopID).Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}
