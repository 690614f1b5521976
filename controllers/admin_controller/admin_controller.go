package admin_controller

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"go.uber.org/zap"
)

// Controller serves the admin back office: taxonomy, attributes, locations,
// shop moderation and the activity log.
type Controller struct {
	taxonomy   *services.TaxonomyService
	attributes *services.AttributeService
	locations  *services.LocationService
	shops      *services.ShopService
	activity   *services.ActivityLogService
	log        *zap.Logger
}

func New(
	taxonomy *services.TaxonomyService,
	attributes *services.AttributeService,
	locations *services.LocationService,
	shops *services.ShopService,
	activity *services.ActivityLogService,
	log *zap.Logger,
) *Controller {
	return &Controller{
		taxonomy:   taxonomy,
		attributes: attributes,
		locations:  locations,
		shops:      shops,
		activity:   activity,
		log:        log,
	}
}
