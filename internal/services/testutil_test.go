package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopkeeper/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&db_models.Shop{},
		&db_models.User{},
		&db_models.PricingPlan{},
		&db_models.Subscription{},
		&db_models.AdminAction{},
		&db_models.Backup{},
	))

	return db
}

func seedShop(t *testing.T, db *gorm.DB) *db_models.Shop {
	t.Helper()

	shop := &db_models.Shop{
		Name:   "Corner Books",
		Email:  "owner@cornerbooks.test",
		Plan:   db_models.FreePlanName,
		Status: db_models.ShopStatusActive,
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func seedUser(t *testing.T, db *gorm.DB, shopID uuid.UUID, role string) *db_models.User {
	t.Helper()

	user := &db_models.User{
		ShopID: shopID,
		Name:   "Staff " + role,
		Email:  fmt.Sprintf("%s@cornerbooks.test", uuid.NewString()),
		Role:   role,
		Status: db_models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPlan(t *testing.T, db *gorm.DB) *db_models.PricingPlan {
	t.Helper()

	plan := &db_models.PricingPlan{
		Name:           "Premium",
		PriceMonthly:   decimal.NewFromInt(10),
		PriceQuarterly: decimal.NewFromInt(27),
		PriceYearly:    decimal.NewFromInt(96),
		IsActive:       true,
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func actionCount(t *testing.T, db *gorm.DB, shopID uuid.UUID, actionType db_models.ActionType) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&db_models.AdminAction{}).
		Where("shop_id = ? AND action_type = ?", shopID, actionType).
		Count(&count).Error)
	return count
}

// failingAudit simulates a ledger-write failure so tests can verify that the
// whole operation rolls back.
type failingAudit struct{}

func (failingAudit) Record(*gorm.DB, uuid.UUID, uuid.UUID, db_models.ActionType, map[string]any) error {
	return errors.New("ledger unavailable")
}
