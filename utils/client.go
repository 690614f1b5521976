package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientInfo is a coarse description of the requesting client, stored with
// activity log entries.
type ClientInfo struct {
	Device  string `json:"device"`
	Browser string `json:"browser"`
	OS      string `json:"os"`
}

func DescribeClient(userAgent string) ClientInfo {
	ua := strings.ToLower(userAgent)
	return ClientInfo{
		Device:  parseDeviceType(ua),
		Browser: parseBrowser(ua),
		OS:      parseOS(ua),
	}
}

func parseDeviceType(ua string) string {
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone") {
		return "mobile"
	}
	return "desktop"
}

func parseBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "edg"):
		return "Edge"
	case strings.Contains(ua, "chrome"):
		return "Chrome"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "safari"):
		return "Safari"
	}
	return "Other"
}

// Android and iOS agents also mention Linux and Mac OS, so they are checked first.
func parseOS(ua string) string {
	switch {
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		return "iOS"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	}
	return "Other"
}

// GetClientIP prefers the first valid X-Forwarded-For address, then X-Real-IP.
func GetClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(ip) != nil {
			return ip
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}
	return c.ClientIP()
}
