package routes

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/admin_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(rg *gin.RouterGroup, ctl *admin_controller.Controller, authenticated, activity gin.HandlerFunc) {
	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	admin := rg.Group("/admin")
	admin.Use(authenticated, middleware.RequireRole(models.RoleAdmin), activity)

	categories := admin.Group("/categories")
	{
		categories.GET("", ctl.ListCategories)
		categories.POST("", ctl.CreateCategory)
		categories.GET("/:id", ctl.GetCategory)
		categories.PATCH("/:id", ctl.UpdateCategory)
		categories.DELETE("/:id", ctl.DeleteCategory)
	}

	subcategories := admin.Group("/subcategories")
	{
		subcategories.GET("", ctl.ListSubcategories)
		subcategories.POST("", ctl.CreateSubcategory)
		subcategories.GET("/:id", ctl.GetSubcategory)
		subcategories.PATCH("/:id", ctl.UpdateSubcategory)
		subcategories.DELETE("/:id", ctl.DeleteSubcategory)
	}

	attributes := admin.Group("/attributes")
	{
		attributes.GET("", ctl.ListAttributes)
		attributes.POST("", ctl.CreateAttribute)
		attributes.GET("/:id", ctl.GetAttribute)
		attributes.PATCH("/:id", ctl.UpdateAttribute)
		attributes.DELETE("/:id", ctl.DeleteAttribute)
		attributes.GET("/:id/values", ctl.ListValues)
		attributes.POST("/:id/values", ctl.AddValue)
	}
	admin.PATCH("/attribute-values/:id", ctl.UpdateValue)
	admin.DELETE("/attribute-values/:id", ctl.DeleteValue)

	governorates := admin.Group("/governorates")
	{
		governorates.GET("", ctl.ListGovernorates)
		governorates.POST("", ctl.CreateGovernorate)
		governorates.PATCH("/:id", ctl.UpdateGovernorate)
		governorates.DELETE("/:id", ctl.DeleteGovernorate)
	}

	cities := admin.Group("/cities")
	{
		cities.GET("", ctl.ListCities)
		cities.POST("", ctl.CreateCity)
		cities.PATCH("/:id", ctl.UpdateCity)
		cities.DELETE("/:id", ctl.DeleteCity)
	}

	shops := admin.Group("/shops")
	{
		shops.GET("", ctl.ListShops)
		shops.PATCH("/:id/status", ctl.UpdateShopStatus)
		shops.DELETE("/:id", ctl.DeleteShop)
		shops.POST("/:id/restore", ctl.RestoreShop)
	}

	admin.GET("/activity-logs", ctl.ListActivityLogs)
}
