package auth_controller

import (
	"net/http"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Controller struct {
	auth         *services.AuthService
	secureCookie bool
	log          *zap.Logger
}

func New(auth *services.AuthService, secureCookie bool, log *zap.Logger) *Controller {
	return &Controller{auth: auth, secureCookie: secureCookie, log: log}
}

// Register godoc
// @Summary Register a vendor account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/auth/register [post]
func (ctl *Controller) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !controllers.BindJSON(c, &req) {
		return
	}

	resp, err := ctl.auth.Register(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}

	ctl.setAuthCookie(c, resp)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", resp))
}

// Login godoc
// @Summary Log in as vendor or admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if !controllers.BindJSON(c, &req) {
		return
	}

	resp, err := ctl.auth.Login(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}

	ctl.setAuthCookie(c, resp)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", resp))
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/auth/me [get]
func (ctl *Controller) Me(c *gin.Context) {
	actor, _ := middleware.ActorFromContext(c)
	user, err := ctl.auth.Me(c.Request.Context(), actor.ID)
	if err != nil {
		controllers.RespondError(c, ctl.log, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User retrieved", user))
}

// Logout clears the auth cookie. Bearer tokens stay valid until they expire.
func (ctl *Controller) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", ctl.secureCookie, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}

func (ctl *Controller) setAuthCookie(c *gin.Context, resp *models.AuthResponse) {
	maxAge := int(time.Until(resp.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, resp.Token, maxAge, "/", "", ctl.secureCookie, true)
}
