// Package controllers holds the response helpers shared by the HTTP handler
// packages below it.
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ahmedellithy99/dukkan-backend-sub000/filters"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CodeValidation = "VALIDATION_FAILED"
	CodeBadRequest = "BAD_REQUEST"
	CodeInternal   = "INTERNAL_ERROR"
)

// RespondError writes err in the standard envelope. Domain errors keep their
// status and code; anything else is logged and reported as a 500.
func RespondError(c *gin.Context, log *zap.Logger, err error) {
	if de, ok := services.AsDomainError(err); ok {
		c.JSON(de.Status, models.ErrorWithCode(c, de.Code, de.Message))
		return
	}
	log.Error("request failed",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, models.ErrorWithCode(c, CodeInternal, "Internal server error"))
}

// BindJSON binds the body into obj, answering 400 itself when that fails.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, models.ErrorWithCode(c, CodeValidation, describeValidation(verrs)))
			return false
		}
		c.JSON(http.StatusBadRequest, models.ErrorWithCode(c, CodeBadRequest, "Invalid request body"))
		return false
	}
	return true
}

func describeValidation(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "gt", "gte", "lt", "lte", "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// ParseID reads a UUID path parameter, answering 400 itself when it is malformed.
func ParseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorWithCode(c, CodeBadRequest, "Invalid "+label+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// QueryFilters decodes the request's query string into filter parameters.
func QueryFilters(c *gin.Context) filters.Params {
	return filters.FromQuery(c.Request.URL.Query())
}

func RespondPage(c *gin.Context, message string, data any, page utils.PageRequest, total int64) {
	c.JSON(http.StatusOK, models.PaginatedResponse(c, message, data, page.Meta(total)))
}
