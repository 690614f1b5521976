package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDescribeClient(t *testing.T) {
	android := "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36"
	assert.Equal(t, ClientInfo{Device: "mobile", Browser: "Chrome", OS: "Android"}, DescribeClient(android))

	ipad := "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Safari/604.1"
	assert.Equal(t, ClientInfo{Device: "tablet", Browser: "Safari", OS: "iOS"}, DescribeClient(ipad))

	edge := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0 Safari/537.36 Edg/120.0"
	assert.Equal(t, ClientInfo{Device: "desktop", Browser: "Edge", OS: "Windows"}, DescribeClient(edge))

	assert.Equal(t, ClientInfo{Device: "desktop", Browser: "Other", OS: "Other"}, DescribeClient("curl/8.5.0"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "garbage")
	c.Request.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", GetClientIP(c))
}
