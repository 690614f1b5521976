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

// ListProducts godoc
// @Summary List the products of one of my shops
// @Description Accepts the same filters as the storefront listing, plus is_active
// @Tags Vendor - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/vendor/shops/{id}/products [get]
func (ctl *Controller) ListProducts(c *gin.Context) {
	shopID, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(c)
	ctx := c.Request.Context()

	// Step 1: The shop must be ours
	if _, err := ctl.shops.Get(ctx, shopID, services.ShopsOwnedBy(actor.ID)); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}

	// Step 2: List
	page := utils.ParsePagination(c)
	products, total, err := ctl.products.List(ctx, controllers.QueryFilters(c), page, services.ProductsOfShop(shopID))
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Products retrieved", models.ProductResponses(products), page, total)
}

// CreateProduct godoc
// @Summary Add a product to one of my shops
// @Tags Vendor - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop ID"
// @Param body body models.CreateProductRequest true "Product"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /api/v1/vendor/shops/{id}/products [post]
func (ctl *Controller) CreateProduct(c *gin.Context) {
	shopID, ok := controllers.ParseID(c, "id", "shop")
	if !ok {
		return
	}
	var req models.CreateProductRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	product, err := ctl.products.Create(c.Request.Context(), actor, shopID, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}

	c.Set(middleware.ResourceIDKey, product.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product.ToResponse()))
}

// GetProduct godoc
// @Summary Get one of my products
// @Tags Vendor - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/vendor/products/{id} [get]
func (ctl *Controller) GetProduct(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	product, err := ctl.products.Get(c.Request.Context(), id, services.ProductsOwnedBy(actor.ID))
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved", product.ToResponse()))
}

// UpdateProduct godoc
// @Summary Update one of my products
// @Tags Vendor - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param body body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/vendor/products/{id} [patch]
func (ctl *Controller) UpdateProduct(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	var req models.UpdateProductRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	product, err := ctl.products.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated", product.ToResponse()))
}

// DeleteProduct godoc
// @Summary Delete one of my products
// @Tags Vendor - Products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /api/v1/vendor/products/{id} [delete]
func (ctl *Controller) DeleteProduct(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	if err := ctl.products.Delete(c.Request.Context(), actor, id); err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", nil))
}

// AdjustStock godoc
// @Summary Set, increment or decrement stock
// @Tags Vendor - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param body body models.StockRequest true "Stock operation"
// @Success 200 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /api/v1/vendor/products/{id}/stock [patch]
func (ctl *Controller) AdjustStock(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	var req models.StockRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	product, err := ctl.products.AdjustStock(c.Request.Context(), actor, id, req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock updated", product.ToResponse()))
}

// SetDiscount godoc
// @Summary Set the discount of one of my products
// @Tags Vendor - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param body body models.DiscountRequest true "Discount"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/vendor/products/{id}/discount [put]
func (ctl *Controller) SetDiscount(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	var req models.DiscountRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	product, err := ctl.products.SetDiscount(c.Request.Context(), actor, id, &req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount updated", product.ToResponse()))
}

// ClearDiscount godoc
// @Summary Remove the discount of one of my products
// @Tags Vendor - Products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/vendor/products/{id}/discount [delete]
func (ctl *Controller) ClearDiscount(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	product, err := ctl.products.SetDiscount(c.Request.Context(), actor, id, nil)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount removed", product.ToResponse()))
}

// SyncAttributes godoc
// @Summary Replace the attribute values of one of my products
// @Tags Vendor - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param body body models.ProductAttributesRequest true "Attribute value IDs; empty clears"
// @Success 200 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /api/v1/vendor/products/{id}/attributes [put]
func (ctl *Controller) SyncAttributes(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	var req models.ProductAttributesRequest
	if !controllers.BindJSON(c, &req) {
		return
	}
	actor, _ := middleware.ActorFromContext(c)

	product, err := ctl.products.SyncAttributes(c.Request.Context(), actor, id, req.AttributeValueIDs)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product attributes updated", product.ToResponse()))
}
