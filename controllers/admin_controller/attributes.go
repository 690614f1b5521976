package admin_controller

import (
	"net/http"

	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ListAttributes godoc
// @Summary List attributes with their values
// @Tags Admin - Attributes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/attributes [get]
func (ctl *Controller) ListAttributes(c *gin.Context) {
	page := utils.ParsePagination(c)
	attributes, total, err := ctl.attributes.List(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Attributes retrieved", attributes, page, total)
}

func (ctl *Controller) GetAttribute(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "attribute")
	if !ok {
		return
	}
	attribute, err := ctl.attributes.Get(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Attribute retrieved", attribute))
}

func (ctl *Controller) CreateAttribute(c *gin.Context) {
	var req models.AttributeRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	attribute, err := ctl.attributes.Create(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.Set(middleware.ResourceIDKey, attribute.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Attribute created", attribute))
}

func (ctl *Controller) UpdateAttribute(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "attribute")
	if !ok {
		return
	}
	var req models.AttributeRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	attribute, err := ctl.attributes.Update(c.Request.Context(), id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Attribute updated", attribute))
}

// DeleteAttribute godoc
// @Summary Delete an attribute and its values
// @Description Fails with 409 ATTRIBUTE_IN_USE while any of its values is assigned to a product.
// @Tags Admin - Attributes
// @Security BearerAuth
// @Param id path string true "Attribute ID"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/attributes/{id} [delete]
func (ctl *Controller) DeleteAttribute(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "attribute")
	if !ok {
		return
	}
	if err := ctl.attributes.Delete(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Attribute deleted successfully", nil))
}

// ListValues lists the values of the attribute in the path.
func (ctl *Controller) ListValues(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "attribute")
	if !ok {
		return
	}
	params := controllers.QueryFilters(c)
	params["attribute_id"] = id.String()

	page := utils.ParsePagination(c)
	values, total, err := ctl.attributes.ListValues(c.Request.Context(), params, page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Attribute values retrieved", values, page, total)
}

// AddValue godoc
// @Summary Add a value to an attribute
// @Description Values are unique per attribute, ignoring case (409 DUPLICATE_ATTRIBUTE_VALUE).
// @Tags Admin - Attributes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attribute ID"
// @Param body body models.AttributeValueRequest true "Value"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/attributes/{id}/values [post]
func (ctl *Controller) AddValue(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "attribute")
	if !ok {
		return
	}
	var req models.AttributeValueRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	value, err := ctl.attributes.AddValue(c.Request.Context(), id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.Set(middleware.ResourceIDKey, value.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Attribute value created", value))
}

func (ctl *Controller) UpdateValue(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "attribute value")
	if !ok {
		return
	}
	var req models.AttributeValueRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	value, err := ctl.attributes.UpdateValue(c.Request.Context(), id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Attribute value updated", value))
}

func (ctl *Controller) DeleteValue(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "attribute value")
	if !ok {
		return
	}
	if err := ctl.attributes.DeleteValue(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Attribute value deleted successfully", nil))
}
