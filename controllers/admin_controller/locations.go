package admin_controller

import (
	"net/http"

	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) ListGovernorates(c *gin.Context) {
	page := utils.ParsePagination(c)
	governorates, total, err := ctl.locations.ListGovernorates(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Governorates retrieved", governorates, page, total)
}

func (ctl *Controller) CreateGovernorate(c *gin.Context) {
	var req models.GovernorateRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	governorate, err := ctl.locations.CreateGovernorate(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.Set(middleware.ResourceIDKey, governorate.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Governorate created", governorate))
}

func (ctl *Controller) UpdateGovernorate(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "governorate")
	if !ok {
		return
	}
	var req models.GovernorateRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	governorate, err := ctl.locations.UpdateGovernorate(c.Request.Context(), id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Governorate updated", governorate))
}

// DeleteGovernorate godoc
// @Summary Delete a governorate
// @Description Fails with 409 LOCATION_IN_USE while it has cities.
// @Tags Admin - Locations
// @Security BearerAuth
// @Param id path string true "Governorate ID"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/governorates/{id} [delete]
func (ctl *Controller) DeleteGovernorate(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "governorate")
	if !ok {
		return
	}
	if err := ctl.locations.DeleteGovernorate(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Governorate deleted successfully", nil))
}

func (ctl *Controller) ListCities(c *gin.Context) {
	page := utils.ParsePagination(c)
	cities, total, err := ctl.locations.ListCities(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Cities retrieved", cities, page, total)
}

func (ctl *Controller) CreateCity(c *gin.Context) {
	var req models.CityRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	city, err := ctl.locations.CreateCity(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.Set(middleware.ResourceIDKey, city.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "City created", city))
}

func (ctl *Controller) UpdateCity(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "city")
	if !ok {
		return
	}
	var req models.CityRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	city, err := ctl.locations.UpdateCity(c.Request.Context(), id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "City updated", city))
}

// DeleteCity godoc
// @Summary Delete a city
// @Description Fails with 409 LOCATION_IN_USE while shops are located in it.
// @Tags Admin - Locations
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/cities/{id} [delete]
func (ctl *Controller) DeleteCity(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "city")
	if !ok {
		return
	}
	if err := ctl.locations.DeleteCity(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "City deleted successfully", nil))
}
