package admin_controller

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ListActivityLogs godoc
// @Summary Activity log
// @Description Mutations made by admins and vendors, newest first
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "User ID"
// @Param resource_type query string false "shop, product, category, subcategory, attribute, attribute_value, governorate, city"
// @Param resource_id query string false "Resource ID"
// @Param action query string false "e.g. deleted_category"
// @Param status query string false "success or failed"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(15)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/activity-logs [get]
func (ctl *Controller) ListActivityLogs(c *gin.Context) {
	page := utils.ParsePagination(c)
	logs, total, err := ctl.activity.List(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Activity logs retrieved", logs, page, total)
}
