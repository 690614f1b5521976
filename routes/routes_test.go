package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type discardRecorder struct{}

func (discardRecorder) Record(context.Context, services.ActivityEntry) {}

func TestRouteGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService, err := services.NewJWTService("route-secret", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	Setup(router, Dependencies{
		Tokens:   jwtService,
		Activity: discardRecorder{},
		Log:      zap.NewNop(),
	})

	token := func(role models.Role) string {
		tok, _, err := jwtService.Generate(&models.User{ID: uuid.Must(uuid.NewV7()), Email: "x@dukkan.test", Role: role})
		require.NoError(t, err)
		return "Bearer " + tok
	}

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{"vendor routes need a token", http.MethodGet, "/api/v1/vendor/shops", "", http.StatusUnauthorized},
		{"admin routes need a token", http.MethodDelete, "/api/v1/admin/categories/" + uuid.NewString(), "", http.StatusUnauthorized},
		{"vendor cannot reach admin", http.MethodGet, "/api/v1/admin/activity-logs", token(models.RoleVendor), http.StatusForbidden},
		{"admin cannot reach vendor", http.MethodPost, "/api/v1/vendor/shops", token(models.RoleAdmin), http.StatusForbidden},
		{"me needs a token", http.MethodGet, "/api/v1/auth/me", "", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
