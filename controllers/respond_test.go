package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		models.RegisterValidations(v)
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"category in use", services.ErrCategoryInUse, http.StatusConflict, "CATEGORY_IN_USE"},
		{"custom message keeps code", services.ErrAttributeInUse.WithMessage("value in use"), http.StatusConflict, "ATTRIBUTE_IN_USE"},
		{"location access denied", services.ErrLocationAccessDenied, http.StatusForbidden, "LOCATION_ACCESS_DENIED"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"insufficient stock", services.ErrInsufficientStock, http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

			RespondError(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode(t, w)
			assert.True(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondError(c, zap.NewNop(), errors.New("pq: password authentication failed"))
	assert.NotContains(t, w.Body.String(), "password")
}

func bindRoute(obj func() any) *gin.Engine {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		target := obj()
		if !BindJSON(c, target) {
			return
		}
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestBindJSONDiscount(t *testing.T) {
	router := bindRoute(func() any { return &models.DiscountRequest{} })

	tests := []struct {
		name     string
		body     string
		want     int
		wantCode string
	}{
		{"valid percent", `{"type":"percent","value":25}`, http.StatusNoContent, ""},
		{"full percent", `{"type":"percent","value":100}`, http.StatusNoContent, ""},
		{"amount above hundred", `{"type":"amount","value":250}`, http.StatusNoContent, ""},
		{"percent above hundred", `{"type":"percent","value":150}`, http.StatusBadRequest, CodeValidation},
		{"zero value", `{"type":"amount","value":0}`, http.StatusBadRequest, CodeValidation},
		{"negative value", `{"type":"amount","value":-5}`, http.StatusBadRequest, CodeValidation},
		{"unknown type", `{"type":"bogo","value":5}`, http.StatusBadRequest, CodeValidation},
		{"missing type", `{"value":5}`, http.StatusBadRequest, CodeValidation},
		{"malformed json", `{"type":`, http.StatusBadRequest, CodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, w).Code)
			}
		})
	}
}

func TestBindJSONProductPrice(t *testing.T) {
	router := bindRoute(func() any { return &models.CreateProductRequest{} })
	subcategoryID := uuid.NewString()

	post := func(body string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, post(`{"subcategory_id":"`+subcategoryID+`","name":"Bread","price":12.5}`))
	assert.Equal(t, http.StatusNoContent, post(`{"subcategory_id":"`+subcategoryID+`","name":"Bread"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"subcategory_id":"`+subcategoryID+`","name":"Bread","price":-1}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"name":"Bread","price":1}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"subcategory_id":"`+subcategoryID+`","name":"Bread","discount":{"type":"percent","value":120}}`))
}

func TestParseID(t *testing.T) {
	router := gin.New()
	router.GET("/:id", func(c *gin.Context) {
		id, ok := ParseID(c, "id", "shop")
		if !ok {
			return
		}
		c.String(http.StatusOK, id.String())
	})

	id := uuid.NewString()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid shop ID", decode(t, w).Message)
}

func TestQueryFilters(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?min_price=5&near[lat]=30.1&attributes[color][]=red", nil)

	params := QueryFilters(c)
	assert.Equal(t, "5", params["min_price"])
	assert.Equal(t, map[string]any{"lat": "30.1"}, params["near"])
	assert.Equal(t, map[string]any{"color": []string{"red"}}, params["attributes"])
}
