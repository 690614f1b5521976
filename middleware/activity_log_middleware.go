package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResourceIDKey lets a create handler report the id it assigned, since the
// route has no :id for it yet.
const ResourceIDKey = "activityResourceID"

const recordTimeout = 5 * time.Second

// pathToResourceType maps route segments to resource types
var pathToResourceType = map[string]string{
	"shops":            models.ResourceTypeShop,
	"products":         models.ResourceTypeProduct,
	"categories":       models.ResourceTypeCategory,
	"subcategories":    models.ResourceTypeSubcategory,
	"attributes":       models.ResourceTypeAttribute,
	"values":           models.ResourceTypeAttributeValue,
	"attribute-values": models.ResourceTypeAttributeValue,
	"governorates":     models.ResourceTypeGovernorate,
	"cities":           models.ResourceTypeCity,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// segmentToActionVerb overrides the method verb for action sub-routes.
var segmentToActionVerb = map[string]string{
	"restore":    "restored",
	"status":     "moderated",
	"stock":      "adjusted_stock_of",
	"discount":   "discounted",
	"attributes": "tagged",
	"location":   "relocated",
}

// ActivityRecorder is satisfied by *services.ActivityLogService.
type ActivityRecorder interface {
	Record(ctx context.Context, entry services.ActivityEntry)
}

// ActivityLogger records every mutating request of an authenticated caller.
// It must run after Authenticate. Entries are written in the background so
// the response is not held up by the audit insert.
func ActivityLogger(recorder ActivityRecorder, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, isMutation := methodToActionVerb[c.Request.Method]
		if !isMutation {
			c.Next()
			return
		}

		c.Next()

		actor, ok := ActorFromContext(c)
		if !ok {
			log.Warn("activity logging without actor", zap.String("path", c.Request.URL.Path))
			return
		}

		route := describeRoute(c.FullPath())
		if route.resourceType == "" {
			log.Debug("no resource type for route", zap.String("route", c.FullPath()))
			return
		}
		if route.verb != "" {
			verb = route.verb
		}

		resourceID := c.GetString(ResourceIDKey)
		if resourceID == "" && route.idParam != "" {
			resourceID = c.Param(route.idParam)
		}

		status := c.Writer.Status()
		entry := services.ActivityEntry{
			Actor:        actor,
			Action:       verb + "_" + route.resourceType,
			ResourceType: route.resourceType,
			ResourceID:   resourceID,
			Status:       models.StatusSuccess,
			IPAddress:    utils.GetClientIP(c),
			UserAgent:    c.Request.UserAgent(),
			Metadata: map[string]any{
				"route":       c.FullPath(),
				"method":      c.Request.Method,
				"status_code": status,
				"email":       EmailFromContext(c),
				"client":      utils.DescribeClient(c.Request.UserAgent()),
			},
		}
		if status < 200 || status >= 300 {
			entry.Status = models.StatusFailed
			entry.ErrorMessage = "Request failed with status " + http.StatusText(status)
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			recorder.Record(ctx, entry)
		}()
	}
}

type routeInfo struct {
	resourceType string
	idParam      string
	verb         string
}

// describeRoute finds the resource a route acts on, e.g.
// "/api/v1/vendor/products/:id/stock" -> product, id, adjusted_stock_of.
func describeRoute(fullPath string) routeInfo {
	var info routeInfo
	parts := strings.Split(strings.Trim(fullPath, "/"), "/")

	// Action sub-route: /<resources>/:id/<action>
	if last := len(parts) - 1; last > 0 && isParam(parts[last-1]) {
		if verb, ok := segmentToActionVerb[parts[last]]; ok {
			info.verb = verb
			parts = parts[:last]
		}
	}

	next := ""
	for i := len(parts) - 1; i >= 0; i-- {
		if resourceType, ok := pathToResourceType[parts[i]]; ok {
			info.resourceType = resourceType
			if isParam(next) {
				info.idParam = next[1:]
			}
			return info
		}
		next = parts[i]
	}
	return info
}

func isParam(segment string) bool {
	return strings.HasPrefix(segment, ":")
}
