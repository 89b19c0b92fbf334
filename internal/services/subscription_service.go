package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopkeeper/internal/infra"
	"shopkeeper/internal/models/db_models"
	"shopkeeper/internal/models/request_models"
	"shopkeeper/internal/models/response_models"
	"shopkeeper/internal/repositories"
	"shopkeeper/pkg/utils"
)

type SubscriptionServiceInterface interface {
	CreateSubscription(ctx context.Context, shopID, adminID uuid.UUID, request request_models.SubscribeRequest) (*db_models.Subscription, error)
	CancelSubscription(ctx context.Context, shopID, adminID uuid.UUID) error
	GetCurrentSubscription(ctx context.Context, shopID uuid.UUID) (*response_models.SubscriptionResponse, error)
}

type SubscriptionService struct {
	db               *gorm.DB
	subscriptionRepo repositories.ISubscriptionRepository
	audit            AuditLogger
}

func NewSubscriptionService(db *gorm.DB, subscriptionRepo repositories.ISubscriptionRepository, audit AuditLogger) SubscriptionServiceInterface {
	return &SubscriptionService{
		db:               db,
		subscriptionRepo: subscriptionRepo,
		audit:            audit,
	}
}

// priceForTier selects the plan price point for a duration tier. An unknown
// tier falls back to the monthly price rather than being rejected.
func priceForTier(plan *db_models.PricingPlan, tier db_models.DurationTier) decimal.Decimal {
	switch tier {
	case db_models.DurationQuarterly:
		return plan.PriceQuarterly
	case db_models.DurationYearly:
		return plan.PriceYearly
	default:
		return plan.PriceMonthly
	}
}

// termEnd adds the tier's calendar months to the start date, so month-length
// and leap-year differences land exactly where calendar addition puts them.
// Unknown tiers get a one-month term, matching the price fallback.
func termEnd(start time.Time, tier db_models.DurationTier) time.Time {
	switch tier {
	case db_models.DurationQuarterly:
		return start.AddDate(0, 3, 0)
	case db_models.DurationYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, shopID, adminID uuid.UUID, request request_models.SubscribeRequest) (*db_models.Subscription, error) {

	var created *db_models.Subscription

	err := infra.RunAtomic(ctx, s.db, shopID, func(tx *gorm.DB, shop *db_models.Shop) error {

		var plan db_models.PricingPlan
		if err := tx.Where("id = ? AND is_active = ?", request.PlanID, true).First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrPlanNotFound
			}
			return err
		}

		tier := db_models.DurationTier(request.Duration)
		price := priceForTier(&plan, tier)

		now := time.Now()
		start := now

		// The current-term read happens inside the transaction, under the
		// shop row lock, so it cannot race a concurrent subscribe/cancel.
		var current db_models.Subscription
		err := tx.Where("shop_id = ? AND status = ?", shop.ID, db_models.SubStatusActive).
			Order("expires_at DESC").
			First(&current).Error
		if err == nil {
			if current.ExpiresAt > now.Unix() {
				// Deferred renewal: the new term starts the day after the
				// running one expires. The old row keeps status=active and
				// is superseded by the later expires_at, not mutated.
				start = time.Unix(current.ExpiresAt, 0).AddDate(0, 0, 1)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		expires := termEnd(start, tier)

		sub := db_models.Subscription{
			ShopID:        shop.ID,
			PlanName:      plan.Name,
			Price:         price,
			Duration:      tier,
			StartedAt:     start.Unix(),
			ExpiresAt:     expires.Unix(),
			Status:        db_models.SubStatusActive,
			PaymentMethod: request.PaymentMethod,
			AutoRenew:     request.AutoRenew,
		}

		if err := tx.Create(&sub).Error; err != nil {
			return err
		}

		if err := tx.Model(shop).Update("plan", plan.Name).Error; err != nil {
			return err
		}

		created = &sub

		return s.audit.Record(tx, adminID, shop.ID, db_models.ActionSubscriptionUpdate, map[string]any{
			"action":     fmt.Sprintf("Subscribed to %s plan (%s)", plan.Name, request.Duration),
			"amount":     price,
			"expires_at": expires.Unix(),
		})
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *SubscriptionService) CancelSubscription(ctx context.Context, shopID, adminID uuid.UUID) error {

	return infra.RunAtomic(ctx, s.db, shopID, func(tx *gorm.DB, shop *db_models.Shop) error {

		// Bulk update: if renewals left more than one active row behind,
		// cancelling retires them all. Cancelling with none active is a
		// no-op that still succeeds and still logs.
		if err := tx.Model(&db_models.Subscription{}).
			Where("shop_id = ? AND status = ?", shop.ID, db_models.SubStatusActive).
			Update("status", db_models.SubStatusCancelled).Error; err != nil {
			return err
		}

		if err := tx.Model(shop).Update("plan", db_models.FreePlanName).Error; err != nil {
			return err
		}

		return s.audit.Record(tx, adminID, shop.ID, db_models.ActionSubscriptionCancelled, map[string]any{
			"action": "Subscription cancelled",
		})
	})
}

func (s *SubscriptionService) GetCurrentSubscription(ctx context.Context, shopID uuid.UUID) (*response_models.SubscriptionResponse, error) {

	sub, err := s.subscriptionRepo.GetCurrentActive(ctx, shopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if sub == nil {
		return nil, utils.ErrRecordNotFound
	}

	result := response_models.SubscriptionResponse{
		ID:            sub.ID,
		PlanName:      sub.PlanName,
		Price:         sub.Price,
		Duration:      string(sub.Duration),
		StartedAt:     sub.StartedAt,
		ExpiresAt:     sub.ExpiresAt,
		Status:        string(sub.Status),
		PaymentMethod: sub.PaymentMethod,
		AutoRenew:     sub.AutoRenew,
	}

	return &result, nil
}
