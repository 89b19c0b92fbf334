package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopkeeper/internal/models/request_models"
	"shopkeeper/internal/services"
	"shopkeeper/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// UpdateProfile godoc
// @Summary Update the acting admin's own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {

	var request request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	shopID, adminID, ok := actingIdentity(c)
	if !ok {
		return
	}

	if err := p.profileService.UpdateProfile(c.Request.Context(), shopID, adminID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}
