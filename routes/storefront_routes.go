package routes

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/storefront_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(rg *gin.RouterGroup, ctl *storefront_controller.Controller) {
	// Storefront routes (public, no auth required)
	store := rg.Group("/store")

	shops := store.Group("/shops")
	{
		shops.GET("", ctl.ListShops)
		shops.GET("/:slug", ctl.GetShop)
		shops.GET("/:slug/products", ctl.ListShopProducts)
	}

	products := store.Group("/products")
	{
		products.GET("", ctl.ListProducts)
		products.GET("/:id", ctl.GetProduct)
	}

	store.GET("/categories", ctl.ListCategories)
	store.GET("/attributes", ctl.ListAttributes)
	store.GET("/governorates", ctl.ListGovernorates)
	store.GET("/cities", ctl.ListCities)
}
