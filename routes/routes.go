package routes

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/config"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/admin_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/auth_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/storefront_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/vendor_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies is everything the route tree needs from main.
type Dependencies struct {
	Auth       *auth_controller.Controller
	Storefront *storefront_controller.Controller
	Vendor     *vendor_controller.Controller
	Admin      *admin_controller.Controller

	Tokens    middleware.TokenVerifier
	Activity  middleware.ActivityRecorder
	Counter   middleware.Counter
	RateLimit config.RateLimitConfig
	Log       *zap.Logger
}

// Setup mounts every /api/v1 route on router.
func Setup(router *gin.Engine, deps Dependencies) {
	api := router.Group("/api/v1")
	if deps.Counter != nil {
		api.Use(middleware.RateLimiter(deps.Counter, deps.RateLimit, deps.Log))
	}

	authenticated := middleware.Authenticate(deps.Tokens, deps.Log)

	SetupAuthRoutes(api, deps.Auth, authenticated)
	SetupStorefrontRoutes(api, deps.Storefront)
	SetupVendorRoutes(api, deps.Vendor, authenticated, middleware.ActivityLogger(deps.Activity, deps.Log))
	SetupAdminRoutes(api, deps.Admin, authenticated, middleware.ActivityLogger(deps.Activity, deps.Log))
}
