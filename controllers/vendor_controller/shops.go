package vendor_controller

import (
	"net/http"

	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ListShops godoc
// @Summary List my shops
// @Tags Vendor - Shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/vendor/shops [get]
func (ctl *Controller) ListShops(c *gin.Context) {
	actor, _ := middleware.ActorFromContext(c)
	page := utils.ParsePagination(c)

	shops, total, err := ctl.shops.List(c.Request.Context(), controllers.QueryFilters(c), page, services.ShopsOwnedBy(actor.ID))
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Shops retrieved", shops, page, total)
}

// CreateShop godoc
// @Summary Open a shop
// @Tags Vendor - Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateShopRequest true "Shop"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /api/v1/vendor/shops [post]
func (ctl *Controller) CreateShop(c *gin.Context) {
	var req models.CreateShopRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	shop, err := ctl.shops.Create(c.Request.Context(), actor.ID, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}

	c.Set(middleware.ResourceIDKey, shop.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Shop created", shop))
}

// GetShop godoc
// @Summary Get one of my shops
// @Tags Vendor - Shops
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/vendor/shops/{id} [get]
func (ctl *Controller) GetShop(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	shop, err := ctl.shops.Get(c.Request.Context(), id, services.ShopsOwnedBy(actor.ID))
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop retrieved", shop))
}

// UpdateShop godoc
// @Summary Update one of my shops
// @Tags Vendor - Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Param body body models.UpdateShopRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/vendor/shops/{id} [patch]
func (ctl *Controller) UpdateShop(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	var req models.UpdateShopRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	shop, err := ctl.shops.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop updated", shop))
}

// UpdateLocation godoc
// @Summary Move one of my shops
// @Tags Vendor - Shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Param body body models.LocationRequest true "New location"
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/vendor/shops/{id}/location [put]
func (ctl *Controller) UpdateLocation(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	var req models.LocationRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	shop, err := ctl.shops.UpdateLocation(c.Request.Context(), actor, id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop location updated", shop))
}

// DeleteShop godoc
// @Summary Close one of my shops
// @Description Soft delete; the shop can be restored
// @Tags Vendor - Shops
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/vendor/shops/{id} [delete]
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

// RestoreShop godoc
// @Summary Restore a closed shop
// @Tags Vendor - Shops
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/vendor/shops/{id}/restore [post]
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
