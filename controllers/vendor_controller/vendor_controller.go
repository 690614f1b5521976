package vendor_controller

import (
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"go.uber.org/zap"
)

// Controller serves a vendor's own shops and products. Routes are mounted
// behind Authenticate and RequireRole(vendor).
type Controller struct {
	shops    *services.ShopService
	products *services.ProductService
	log      *zap.Logger
}

func New(shops *services.ShopService, products *services.ProductService, log *zap.Logger) *Controller {
	return &Controller{shops: shops, products: products, log: log}
}
