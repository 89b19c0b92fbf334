package controllers

import (
	"github.com/gin-gonic/gin"

	"shopkeeper/internal/services"
	"shopkeeper/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List selectable pricing plans
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {

	plans, err := p.planService.GetPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans retrieved successfully")
}

// GetPlanById godoc
// @Summary Get one pricing plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (p *PlanController) GetPlanById(c *gin.Context) {

	planID := c.Param("id")
	if _, err := utils.ToInternalKey(planID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := p.planService.GetPlanInfoById(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan retrieved successfully")
}
