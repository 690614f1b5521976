package admin_controller

import (
	"net/http"

	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ListShops godoc
// @Summary List all shops
// @Description Includes inactive shops; filter with is_active and vendor_id
// @Tags Admin - Shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/shops [get]
func (ctl *Controller) ListShops(c *gin.Context) {
	page := utils.ParsePagination(c)
	shops, total, err := ctl.shops.List(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Shops retrieved", shops, page, total)
}

// UpdateShopStatus godoc
// @Summary Activate or suspend a shop
// @Tags Admin - Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Param body body models.ShopStatusRequest true "Status"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/shops/{id}/status [patch]
func (ctl *Controller) UpdateShopStatus(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	var req models.ShopStatusRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	shop, err := ctl.shops.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop status updated", shop))
}

func (ctl *Controller) DeleteShop(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(c)
	if err := ctl.shops.Delete(c.Request.Context(), actor, id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop deleted", nil))
}

func (ctl *Controller) RestoreShop(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(c)
	shop, err := ctl.shops.Restore(c.Request.Context(), actor, id)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop restored", shop))
}
