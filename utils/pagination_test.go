package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  PageRequest
	}{
		{"", PageRequest{Page: 1, Limit: DefaultPageSize}},
		{"?page=3&limit=20", PageRequest{Page: 3, Limit: 20}},
		{"?page=-2&limit=500", PageRequest{Page: 1, Limit: DefaultPageSize}},
		{"?page=abc&limit=0", PageRequest{Page: 1, Limit: DefaultPageSize}},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/shops"+tt.query, nil)
		assert.Equal(t, tt.want, ParsePagination(c), tt.query)
	}
}

func TestPageMeta(t *testing.T) {
	p := PageRequest{Page: 2, Limit: 15}
	assert.Equal(t, 15, p.Offset())

	meta := p.Meta(31)
	assert.Equal(t, int64(31), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
