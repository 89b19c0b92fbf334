package services

import (
	"context"

	"shopkeeper/internal/models/response_models"
	"shopkeeper/internal/repositories"
	"shopkeeper/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlans(ctx context.Context) ([]response_models.PricingPlanResponse, error)
	GetPlanInfoById(ctx context.Context, planId string) (response_models.PricingPlanResponse, error)
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func (p *PlanService) GetPlans(ctx context.Context) ([]response_models.PricingPlanResponse, error) {

	plans, err := p.planRepo.GetSelectablePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.PricingPlanResponse, 0, len(plans))
	for _, plan := range plans {
		results = append(results, response_models.PricingPlanResponse{
			ID:             plan.ID,
			Name:           plan.Name,
			Description:    plan.Description,
			PriceMonthly:   plan.PriceMonthly,
			PriceQuarterly: plan.PriceQuarterly,
			PriceYearly:    plan.PriceYearly,
			IsActive:       plan.IsActive,
		})
	}

	return results, nil
}

func (p *PlanService) GetPlanInfoById(ctx context.Context, planId string) (response_models.PricingPlanResponse, error) {

	plan, err := p.planRepo.GetPlanInfoById(ctx, planId)
	if err != nil {
		return response_models.PricingPlanResponse{}, utils.ErrDatabaseError
	}

	if plan == nil {
		return response_models.PricingPlanResponse{}, utils.ErrPlanNotFound
	}

	result := response_models.PricingPlanResponse{
		ID:             plan.ID,
		Name:           plan.Name,
		Description:    plan.Description,
		PriceMonthly:   plan.PriceMonthly,
		PriceQuarterly: plan.PriceQuarterly,
		PriceYearly:    plan.PriceYearly,
		IsActive:       plan.IsActive,
	}

	return result, nil
}
