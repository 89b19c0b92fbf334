package infra

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopkeeper/internal/models/db_models"
	"shopkeeper/pkg/utils"
)

// RunAtomic wraps one administrative operation in a transaction scoped to a
// single shop. The shop row is loaded with a FOR UPDATE lock on postgres, so
// two concurrent subscribe/cancel calls on the same shop serialize on the row
// instead of both reading "no active subscription" and both inserting one.
// fn performs one state mutation plus one ledger write; any error from fn
// rolls back everything, including the ledger entry.
func RunAtomic(ctx context.Context, db *gorm.DB, shopID uuid.UUID, fn func(tx *gorm.DB, shop *db_models.Shop) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var shop db_models.Shop
		if err := q.First(&shop, "id = ?", shopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrShopNotFound
			}
			return err
		}

		return fn(tx, &shop)
	})
}
