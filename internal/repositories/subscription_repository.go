package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkeeper/internal/models/db_models"
)

type ISubscriptionRepository interface {
	// GetCurrentActive returns the active subscription with the latest
	// expires_at, or nil if the shop has none. Multiple active rows can
	// exist after renewals; the latest one wins.
	GetCurrentActive(ctx context.Context, shopID uuid.UUID) (*db_models.Subscription, error)
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) GetCurrentActive(ctx context.Context, shopID uuid.UUID) (*db_models.Subscription, error) {

	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Where("shop_id = ? AND status = ?", shopID, db_models.SubStatusActive).
		Order("expires_at DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]db_models.Subscription, error) {

	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("started_at DESC").
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}
