package utils

import (
	"strconv"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 15
	MaxPageSize     = 100
)

type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta builds the response pagination block for total rows.
func (p PageRequest) Meta(total int64) *models.Pagination {
	return models.NewPagination(p.Page, p.Limit, total)
}

// ParsePagination reads page and limit from the query string. Out-of-range
// values fall back to the defaults.
func ParsePagination(c *gin.Context) PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}

// Paginate counts query, then fetches one page of it. extra is applied to the
// fetch only (preloads, selects) so the count stays a plain COUNT(*).
func Paginate[T any](query *gorm.DB, page PageRequest, extra ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]T, 0)
	if total == 0 || int64(page.Offset()) >= total {
		return rows, total, nil
	}

	find := query.Session(&gorm.Session{})
	for _, fn := range extra {
		find = fn(find)
	}
	if err := find.Limit(page.Limit).Offset(page.Offset()).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
