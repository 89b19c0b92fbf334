package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopkeeper/pkg/utils"
)

// actingIdentity pulls the shop and admin ids set by the JWT middleware and
// converts them to internal keys at the boundary. Returns false after
// responding if either is missing or malformed.
func actingIdentity(c *gin.Context) (shopID, adminID uuid.UUID, ok bool) {

	shopKey, err := utils.ToInternalKey(c.GetString("shop_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "shop_id is required")
		return uuid.Nil, uuid.Nil, false
	}

	adminKey, err := utils.ToInternalKey(c.GetString("admin_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "admin_id is required")
		return uuid.Nil, uuid.Nil, false
	}

	return uuid.UUID(shopKey), uuid.UUID(adminKey), true
}
