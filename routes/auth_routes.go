package routes

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/auth_controller"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup, ctl *auth_controller.Controller, authenticated gin.HandlerFunc) {
	auth := rg.Group("/auth")

	auth.POST("/register", ctl.Register)
	auth.POST("/login", ctl.Login)
	auth.POST("/logout", ctl.Logout)
	auth.GET("/me", authenticated, ctl.Me)
}
