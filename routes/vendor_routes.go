package routes

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/vendor_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupVendorRoutes(rg *gin.RouterGroup, ctl *vendor_controller.Controller, authenticated, activity gin.HandlerFunc) {
	vendor := rg.Group("/vendor")
	vendor.Use(authenticated, middleware.RequireRole(models.RoleVendor), activity)

	shops := vendor.Group("/shops")
	{
		shops.GET("", ctl.ListShops)
		shops.POST("", ctl.CreateShop)
		shops.GET("/:id", ctl.GetShop)
		shops.PATCH("/:id", ctl.UpdateShop)
		shops.DELETE("/:id", ctl.DeleteShop)
		shops.POST("/:id/restore", ctl.RestoreShop)
		shops.PUT("/:id/location", ctl.UpdateLocation)

		shops.GET("/:id/products", ctl.ListProducts)
		shops.POST("/:id/products", ctl.CreateProduct)
	}

	products := vendor.Group("/products")
	{
		products.GET("/:id", ctl.GetProduct)
		products.PATCH("/:id", ctl.UpdateProduct)
		products.DELETE("/:id", ctl.DeleteProduct)
		products.PATCH("/:id/stock", ctl.AdjustStock)
		products.PUT("/:id/discount", ctl.SetDiscount)
		products.DELETE("/:id/discount", ctl.ClearDiscount)
		products.PUT("/:id/attributes", ctl.SyncAttributes)
	}
}
