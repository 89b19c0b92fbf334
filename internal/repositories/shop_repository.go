package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkeeper/internal/models/db_models"
)

type IShopRepository interface {
	FindById(ctx context.Context, shopID uuid.UUID) (*db_models.Shop, error)
}

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) IShopRepository {
	return &shopRepository{db: db}
}

func (s *shopRepository) FindById(ctx context.Context, shopID uuid.UUID) (*db_models.Shop, error) {

	var shop db_models.Shop
	err := s.db.WithContext(ctx).First(&shop, "id = ?", shopID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &shop, nil
}
