package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopkeeper/internal/models/request_models"
	"shopkeeper/internal/services"
	"shopkeeper/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// Subscribe godoc
// @Summary Subscribe the shop to a pricing plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.SubscribeRequest true "Subscribe Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me/subscription [post]
func (s *SubscriptionController) Subscribe(c *gin.Context) {

	var request request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	shopID, adminID, ok := actingIdentity(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionService.CreateSubscription(c.Request.Context(), shopID, adminID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"subscription_id": sub.ID,
		"plan_name":       sub.PlanName,
		"price":           sub.Price,
		"started_at":      sub.StartedAt,
		"expires_at":      sub.ExpiresAt,
	}, "Subscription created successfully")
}

// Cancel godoc
// @Summary Cancel the shop's active subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me/subscription [delete]
func (s *SubscriptionController) Cancel(c *gin.Context) {

	shopID, adminID, ok := actingIdentity(c)
	if !ok {
		return
	}

	if err := s.subscriptionService.CancelSubscription(c.Request.Context(), shopID, adminID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription cancelled successfully")
}

// GetCurrent godoc
// @Summary Get the shop's current subscription
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me/subscription [get]
func (s *SubscriptionController) GetCurrent(c *gin.Context) {

	shopID, _, ok := actingIdentity(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionService.GetCurrentSubscription(c.Request.Context(), shopID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription retrieved successfully")
}
