package admin_controller

import (
	"net/http"

	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ListCategories godoc
// @Summary List categories
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name contains"
// @Param sort query string false "name, -name, created_at, -created_at"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/categories [get]
func (ctl *Controller) ListCategories(c *gin.Context) {
	page := utils.ParsePagination(c)
	categories, total, err := ctl.taxonomy.ListCategories(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Categories retrieved", categories, page, total)
}

// GetCategory godoc
// @Summary Get a category with its subcategories
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id} [get]
func (ctl *Controller) GetCategory(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "category")
	if !ok {
		return
	}
	category, err := ctl.taxonomy.GetCategory(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category retrieved", category))
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CategoryRequest true "Category"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/categories [post]
func (ctl *Controller) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	category, err := ctl.taxonomy.CreateCategory(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.Set(middleware.ResourceIDKey, category.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created", category))
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param body body models.CategoryRequest true "Category"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id} [patch]
func (ctl *Controller) UpdateCategory(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "category")
	if !ok {
		return
	}
	var req models.CategoryRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	category, err := ctl.taxonomy.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated", category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Deletes the category and its subcategories. Fails with 409 CATEGORY_IN_USE
// @Description while any product belongs to one of its subcategories.
// @Tags Admin - Categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/categories/{id} [delete]
func (ctl *Controller) DeleteCategory(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "category")
	if !ok {
		return
	}
	if err := ctl.taxonomy.DeleteCategory(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}

// ListSubcategories godoc
// @Summary List subcategories
// @Tags Admin - Subcategories
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Category ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/subcategories [get]
func (ctl *Controller) ListSubcategories(c *gin.Context) {
	page := utils.ParsePagination(c)
	subcategories, total, err := ctl.taxonomy.ListSubcategories(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Subcategories retrieved", subcategories, page, total)
}

func (ctl *Controller) GetSubcategory(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "subcategory")
	if !ok {
		return
	}
	subcategory, err := ctl.taxonomy.GetSubcategory(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subcategory retrieved", subcategory))
}

func (ctl *Controller) CreateSubcategory(c *gin.Context) {
	var req models.SubcategoryRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	subcategory, err := ctl.taxonomy.CreateSubcategory(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.Set(middleware.ResourceIDKey, subcategory.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Subcategory created", subcategory))
}

func (ctl *Controller) UpdateSubcategory(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "subcategory")
	if !ok {
		return
	}
	var req models.SubcategoryRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	subcategory, err := ctl.taxonomy.UpdateSubcategory(c.Request.Context(), id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subcategory updated", subcategory))
}

// DeleteSubcategory godoc
// @Summary Delete a subcategory
// @Description Fails with 409 SUBCATEGORY_IN_USE while it has products.
// @Tags Admin - Subcategories
// @Security BearerAuth
// @Param id path string true "Subcategory ID"
// @Success 200 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/admin/subcategories/{id} [delete]
func (ctl *Controller) DeleteSubcategory(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "subcategory")
	if !ok {
		return
	}
	if err := ctl.taxonomy.DeleteSubcategory(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subcategory deleted successfully", nil))
}
