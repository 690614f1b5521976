package storefront_controller

import (
	"net/http"

	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controller serves the public storefront. Every listing is narrowed to
// active shops and their active products before request filters apply.
type Controller struct {
	shops      *services.ShopService
	products   *services.ProductService
	taxonomy   *services.TaxonomyService
	attributes *services.AttributeService
	locations  *services.LocationService
	log        *zap.Logger
}

func New(
	shops *services.ShopService,
	products *services.ProductService,
	taxonomy *services.TaxonomyService,
	attributes *services.AttributeService,
	locations *services.LocationService,
	log *zap.Logger,
) *Controller {
	return &Controller{
		shops:      shops,
		products:   products,
		taxonomy:   taxonomy,
		attributes: attributes,
		locations:  locations,
		log:        log,
	}
}

// ListShops godoc
// @Summary List shops
// @Description Active shops, filterable by search, governorate_id, city_id, area and near[lat]/near[lng]/near[radius]
// @Tags Storefront
// @Produce json
// @Param search query string false "Name or description contains"
// @Param city_id query string false "City ID"
// @Param governorate_id query string false "Governorate ID"
// @Param area query string false "Area contains"
// @Param near[lat] query number false "Latitude"
// @Param near[lng] query number false "Longitude"
// @Param near[radius] query number false "Radius in km" default(10)
// @Param sort query string false "name, -name, created_at, -created_at"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(15)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/shops [get]
func (ctl *Controller) ListShops(c *gin.Context) {
	page := utils.ParsePagination(c)
	shops, total, err := ctl.shops.List(c.Request.Context(), controllers.QueryFilters(c), page, services.ActiveShops)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Shops retrieved", shops, page, total)
}

// GetShop godoc
// @Summary Get a shop by slug
// @Tags Storefront
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/shops/{slug} [get]
func (ctl *Controller) GetShop(c *gin.Context) {
	shop, err := ctl.shops.GetBySlug(c.Request.Context(), c.Param("slug"), services.ActiveShops)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop retrieved", shop))
}

// ListShopProducts godoc
// @Summary List a shop's products
// @Tags Storefront
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/shops/{slug}/products [get]
func (ctl *Controller) ListShopProducts(c *gin.Context) {
	ctx := c.Request.Context()

	// Step 1: Resolve the shop
	shop, err := ctl.shops.GetBySlug(ctx, c.Param("slug"), services.ActiveShops)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}

	// Step 2: List its products
	page := utils.ParsePagination(c)
	products, total, err := ctl.products.List(ctx, controllers.QueryFilters(c), page,
		services.ActiveProducts, services.ProductsOfShop(shop.ID))
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Products retrieved", models.ProductResponses(products), page, total)
}

// ListProducts godoc
// @Summary List products
// @Description Active products of active shops. Attribute facets use attributes[<name>][]=<value>;
// @Description values within a facet are ORed, facets are ANDed.
// @Tags Storefront
// @Produce json
// @Param search query string false "Name or description contains"
// @Param category_id query string false "Category ID"
// @Param subcategory_id query string false "Subcategory ID"
// @Param shop_id query string false "Shop ID"
// @Param city_id query string false "City ID"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param in_stock query bool false "Only products in stock"
// @Param on_discount query bool false "Only discounted products"
// @Param sort query string false "name, price, created_at, stock_quantity; prefix - for descending"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(15)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/products [get]
func (ctl *Controller) ListProducts(c *gin.Context) {
	page := utils.ParsePagination(c)
	products, total, err := ctl.products.List(c.Request.Context(), controllers.QueryFilters(c), page, services.ActiveProducts)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Products retrieved", models.ProductResponses(products), page, total)
}

// GetProduct godoc
// @Summary Get a product
// @Tags Storefront
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/store/products/{id} [get]
func (ctl *Controller) GetProduct(c *gin.Context) {
	id, ok := controllers.ParseID(c, "id", "product")
	if !ok {
		return
	}
	product, err := ctl.products.Get(c.Request.Context(), id, services.ActiveProducts)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved", product.ToResponse()))
}

// ListCategories godoc
// @Summary Category tree
// @Description Every category with its subcategories and active product count
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/categories [get]
func (ctl *Controller) ListCategories(c *gin.Context) {
	tree, err := ctl.taxonomy.Tree(c.Request.Context())
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved", tree))
}

// ListAttributes godoc
// @Summary List attributes with their values
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/attributes [get]
func (ctl *Controller) ListAttributes(c *gin.Context) {
	page := utils.ParsePagination(c)
	attributes, total, err := ctl.attributes.List(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Attributes retrieved", attributes, page, total)
}

// ListGovernorates godoc
// @Summary List governorates
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/governorates [get]
func (ctl *Controller) ListGovernorates(c *gin.Context) {
	page := utils.ParsePagination(c)
	governorates, total, err := ctl.locations.ListGovernorates(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Governorates retrieved", governorates, page, total)
}

// ListCities godoc
// @Summary List cities
// @Tags Storefront
// @Produce json
// @Param governorate_id query string false "Governorate ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/store/cities [get]
func (ctl *Controller) ListCities(c *gin.Context) {
	page := utils.ParsePagination(c)
	cities, total, err := ctl.locations.ListCities(c.Request.Context(), controllers.QueryFilters(c), page)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	controllers.RespondPage(c, "Cities retrieved", cities, page, total)
}
