package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shopkeeper/internal/models/db_models"
)

type IPlanRepository interface {
	GetPlanInfoById(ctx context.Context, planID string) (*db_models.PricingPlan, error)
	GetSelectablePlans(ctx context.Context) ([]db_models.PricingPlan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p PlanRepository) GetPlanInfoById(ctx context.Context, planID string) (*db_models.PricingPlan, error) {

	var plan db_models.PricingPlan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p PlanRepository) GetSelectablePlans(ctx context.Context) ([]db_models.PricingPlan, error) {

	var plans []db_models.PricingPlan
	err := p.db.WithContext(ctx).Where("is_active = ?", true).Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}
