package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopkeeper/internal/models/db_models"
	"shopkeeper/internal/models/request_models"
	"shopkeeper/internal/repositories"
	"shopkeeper/pkg/utils"
)

func newSubscriptionService(db *gorm.DB) SubscriptionServiceInterface {
	return NewSubscriptionService(db, repositories.NewSubscriptionRepository(db), NewAuditLogger())
}

func TestCreateSubscriptionFreshShop(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	plan := seedPlan(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	svc := newSubscriptionService(db)

	sub, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID:        plan.ID.String(),
		Duration:      "monthly",
		PaymentMethod: "card",
		AutoRenew:     true,
	})
	require.NoError(t, err)

	now := time.Now()
	assert.InDelta(t, now.Unix(), sub.StartedAt, 5)
	assert.InDelta(t, now.AddDate(0, 1, 0).Unix(), sub.ExpiresAt, 5)
	assert.Equal(t, db_models.SubStatusActive, sub.Status)
	assert.Equal(t, "Premium", sub.PlanName)
	assert.True(t, decimal.NewFromInt(10).Equal(sub.Price))
	assert.Equal(t, "card", sub.PaymentMethod)
	assert.True(t, sub.AutoRenew)

	var reloaded db_models.Shop
	require.NoError(t, db.First(&reloaded, "id = ?", shop.ID).Error)
	assert.Equal(t, "Premium", reloaded.Plan)

	assert.EqualValues(t, 1, actionCount(t, db, shop.ID, db_models.ActionSubscriptionUpdate))
}

func TestCreateSubscriptionTierDates(t *testing.T) {
	cases := []struct {
		duration string
		months   int
		years    int
		price    int64
	}{
		{"monthly", 1, 0, 10},
		{"quarterly", 3, 0, 27},
		{"yearly", 0, 1, 96},
		// Unknown tiers fall back to the monthly price and a one-month term.
		{"weekly", 1, 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.duration, func(t *testing.T) {
			db := newTestDB(t)
			shop := seedShop(t, db)
			plan := seedPlan(t, db)
			admin := seedUser(t, db, shop.ID, "admin")
			svc := newSubscriptionService(db)

			sub, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
				PlanID:   plan.ID.String(),
				Duration: tc.duration,
			})
			require.NoError(t, err)

			expected := time.Unix(sub.StartedAt, 0).AddDate(tc.years, tc.months, 0)
			assert.Equal(t, expected.Unix(), sub.ExpiresAt)
			assert.True(t, decimal.NewFromInt(tc.price).Equal(sub.Price),
				"want %d, got %s", tc.price, sub.Price)
		})
	}
}

func TestCreateSubscriptionDeferredRenewal(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	plan := seedPlan(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	svc := newSubscriptionService(db)

	first, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID:   plan.ID.String(),
		Duration: "monthly",
	})
	require.NoError(t, err)

	second, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID:   plan.ID.String(),
		Duration: "yearly",
	})
	require.NoError(t, err)

	// The new term starts the day after the running one expires.
	wantStart := time.Unix(first.ExpiresAt, 0).AddDate(0, 0, 1)
	assert.Equal(t, wantStart.Unix(), second.StartedAt)
	assert.Equal(t, wantStart.AddDate(1, 0, 0).Unix(), second.ExpiresAt)

	// The superseded row is left at status=active, not mutated; the current
	// term is the one with the later expires_at.
	var old db_models.Subscription
	require.NoError(t, db.First(&old, "id = ?", first.ID).Error)
	assert.Equal(t, db_models.SubStatusActive, old.Status)

	current, err := repositories.NewSubscriptionRepository(db).GetCurrentActive(context.Background(), shop.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
}

func TestCreateSubscriptionPlanNotFound(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	svc := newSubscriptionService(db)

	_, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID:   uuid.NewString(),
		Duration: "monthly",
	})
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestCreateSubscriptionInactivePlan(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	plan := seedPlan(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	require.NoError(t, db.Model(plan).Update("is_active", false).Error)
	svc := newSubscriptionService(db)

	_, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID:   plan.ID.String(),
		Duration: "monthly",
	})
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestCreateSubscriptionShopNotFound(t *testing.T) {
	db := newTestDB(t)
	plan := seedPlan(t, db)
	svc := newSubscriptionService(db)

	_, err := svc.CreateSubscription(context.Background(), uuid.New(), uuid.New(), request_models.SubscribeRequest{
		PlanID:   plan.ID.String(),
		Duration: "monthly",
	})
	assert.ErrorIs(t, err, utils.ErrShopNotFound)
}

func TestCancelSubscriptionRetiresAllActiveRows(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	plan := seedPlan(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	svc := newSubscriptionService(db)

	// Two subscribes leave two active rows behind (renewal never retires the
	// old one); cancel must retire both.
	_, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID: plan.ID.String(), Duration: "monthly"})
	require.NoError(t, err)
	_, err = svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID: plan.ID.String(), Duration: "monthly"})
	require.NoError(t, err)

	require.NoError(t, svc.CancelSubscription(context.Background(), shop.ID, admin.ID))

	var active int64
	require.NoError(t, db.Model(&db_models.Subscription{}).
		Where("shop_id = ? AND status = ?", shop.ID, db_models.SubStatusActive).
		Count(&active).Error)
	assert.Zero(t, active)

	var cancelled int64
	require.NoError(t, db.Model(&db_models.Subscription{}).
		Where("shop_id = ? AND status = ?", shop.ID, db_models.SubStatusCancelled).
		Count(&cancelled).Error)
	assert.EqualValues(t, 2, cancelled)

	var reloaded db_models.Shop
	require.NoError(t, db.First(&reloaded, "id = ?", shop.ID).Error)
	assert.Equal(t, db_models.FreePlanName, reloaded.Plan)

	assert.EqualValues(t, 1, actionCount(t, db, shop.ID, db_models.ActionSubscriptionCancelled))
}

func TestCancelSubscriptionWithoutActiveIsNoOpButLogs(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	svc := newSubscriptionService(db)

	require.NoError(t, svc.CancelSubscription(context.Background(), shop.ID, admin.ID))
	require.NoError(t, svc.CancelSubscription(context.Background(), shop.ID, admin.ID))

	var reloaded db_models.Shop
	require.NoError(t, db.First(&reloaded, "id = ?", shop.ID).Error)
	assert.Equal(t, db_models.FreePlanName, reloaded.Plan)

	assert.EqualValues(t, 2, actionCount(t, db, shop.ID, db_models.ActionSubscriptionCancelled))
}

func TestCreateSubscriptionRollsBackOnLedgerFailure(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	plan := seedPlan(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	svc := NewSubscriptionService(db, repositories.NewSubscriptionRepository(db), failingAudit{})

	_, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID:   plan.ID.String(),
		Duration: "monthly",
	})
	require.Error(t, err)

	var subs int64
	require.NoError(t, db.Model(&db_models.Subscription{}).Where("shop_id = ?", shop.ID).Count(&subs).Error)
	assert.Zero(t, subs)

	var reloaded db_models.Shop
	require.NoError(t, db.First(&reloaded, "id = ?", shop.ID).Error)
	assert.Equal(t, db_models.FreePlanName, reloaded.Plan)

	var actions int64
	require.NoError(t, db.Model(&db_models.AdminAction{}).Where("shop_id = ?", shop.ID).Count(&actions).Error)
	assert.Zero(t, actions)
}

func TestGetCurrentSubscription(t *testing.T) {
	db := newTestDB(t)
	shop := seedShop(t, db)
	plan := seedPlan(t, db)
	admin := seedUser(t, db, shop.ID, "admin")
	svc := newSubscriptionService(db)

	_, err := svc.GetCurrentSubscription(context.Background(), shop.ID)
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)

	created, err := svc.CreateSubscription(context.Background(), shop.ID, admin.ID, request_models.SubscribeRequest{
		PlanID: plan.ID.String(), Duration: "quarterly"})
	require.NoError(t, err)

	current, err := svc.GetCurrentSubscription(context.Background(), shop.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, current.ID)
	assert.Equal(t, "quarterly", current.Duration)
	assert.True(t, decimal.NewFromInt(27).Equal(current.Price))
}
