package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopkeeper/internal/models/request_models"
	"shopkeeper/internal/services"
	"shopkeeper/pkg/utils"
)

type ShopController struct {
	shopService services.ShopServiceInterface
}

func NewShopController(shopService services.ShopServiceInterface) *ShopController {
	return &ShopController{
		shopService: shopService,
	}
}

// GetShop godoc
// @Summary Get the caller's shop with its current subscription
// @Tags Shops
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me [get]
func (s *ShopController) GetShop(c *gin.Context) {

	shopID, _, ok := actingIdentity(c)
	if !ok {
		return
	}

	shop, err := s.shopService.GetShop(c.Request.Context(), shopID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shop, "Shop retrieved successfully")
}

// UpdateShop godoc
// @Summary Update shop profile fields
// @Tags Shops
// @Accept json
// @Produce json
// @Param request body request_models.UpdateShopRequest true "Update Shop Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me [put]
func (s *ShopController) UpdateShop(c *gin.Context) {

	var request request_models.UpdateShopRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	shopID, adminID, ok := actingIdentity(c)
	if !ok {
		return
	}

	if err := s.shopService.UpdateShop(c.Request.Context(), shopID, adminID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Shop updated successfully")
}

// SetStatus godoc
// @Summary Change the shop status, deactivating its users when leaving active
// @Tags Shops
// @Accept json
// @Produce json
// @Param request body request_models.SetStatusRequest true "Set Status Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me/status [patch]
func (s *ShopController) SetStatus(c *gin.Context) {

	var request request_models.SetStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	shopID, adminID, ok := actingIdentity(c)
	if !ok {
		return
	}

	if err := s.shopService.SetStatus(c.Request.Context(), shopID, adminID, request.Status, request.Reason); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Shop status updated successfully")
}

// RequestBackup godoc
// @Summary Request a data backup for the shop
// @Tags Shops
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me/backups [post]
func (s *ShopController) RequestBackup(c *gin.Context) {

	shopID, adminID, ok := actingIdentity(c)
	if !ok {
		return
	}

	backup, err := s.shopService.RequestBackup(c.Request.Context(), shopID, adminID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"backup_id": backup.ID, "status": backup.Status}, "Backup requested successfully")
}

// ListActions godoc
// @Summary List the shop's audit log, newest first
// @Tags Shops
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me/actions [get]
func (s *ShopController) ListActions(c *gin.Context) {

	shopID, _, ok := actingIdentity(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	actions, err := s.shopService.ListActions(c.Request.Context(), shopID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, actions, "Actions retrieved successfully")
}

// ListUsers godoc
// @Summary List the shop's user accounts
// @Tags Shops
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shops/me/users [get]
func (s *ShopController) ListUsers(c *gin.Context) {

	shopID, _, ok := actingIdentity(c)
	if !ok {
		return
	}

	users, err := s.shopService.ListUsers(c.Request.Context(), shopID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users retrieved successfully")
}
