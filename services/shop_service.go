package services

import (
	"context"
	"errors"

	"github.com/ahmedellithy99/dukkan-backend-sub000/filters"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ShopService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewShopService(db *gorm.DB, log *zap.Logger) *ShopService {
	return &ShopService{db: db, log: log}
}

// ActiveShops restricts a shop query to what the storefront may show.
func ActiveShops(db *gorm.DB) *gorm.DB {
	return db.Where("shops.is_active = ?", true)
}

// ShopsOwnedBy restricts a shop query to one vendor.
func ShopsOwnedBy(vendorID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("shops.vendor_id = ?", vendorID)
	}
}

func preloadShopLocation(db *gorm.DB) *gorm.DB {
	return db.Preload("Location.City.Governorate")
}

// List returns one page of shops matching params, within scopes.
func (s *ShopService) List(ctx context.Context, params filters.Params, page utils.PageRequest, scopes ...func(*gorm.DB) *gorm.DB) ([]models.Shop, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Shop{})
	for _, scope := range scopes {
		query = scope(query)
	}

	f := filters.New(filters.Shops, params)
	query = filters.Shops.EnsureOrder(f.Apply(query))
	s.log.Debug("listing shops", zap.Strings("filters", f.Applied()))

	return utils.Paginate[models.Shop](query, page, preloadShopLocation)
}

func (s *ShopService) Get(ctx context.Context, id uuid.UUID, scopes ...func(*gorm.DB) *gorm.DB) (*models.Shop, error) {
	query := s.db.WithContext(ctx).Scopes(scopes...)
	var shop models.Shop
	if err := preloadShopLocation(query).First(&shop, "shops.id = ?", id).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &shop, nil
}

func (s *ShopService) GetBySlug(ctx context.Context, slug string, scopes ...func(*gorm.DB) *gorm.DB) (*models.Shop, error) {
	query := s.db.WithContext(ctx).Scopes(scopes...)
	var shop models.Shop
	if err := preloadShopLocation(query).First(&shop, "shops.slug = ?", slug).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &shop, nil
}

// Create stores the shop and its location together.
func (s *ShopService) Create(ctx context.Context, vendorID uuid.UUID, req models.CreateShopRequest) (*models.Shop, error) {
	shop := &models.Shop{
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Whatsapp:    req.Whatsapp,
		IsActive:    true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		location, err := newLocation(tx, req.Location)
		if err != nil {
			return err
		}
		if err := tx.Create(location).Error; err != nil {
			return err
		}

		slug, err := uniqueSlug(tx.Unscoped().Model(&models.Shop{}), req.Name, uuid.Nil)
		if err != nil {
			return err
		}
		shop.Slug = slug
		shop.LocationID = location.ID
		shop.Location = location
		return tx.Omit("Location").Create(shop).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	s.log.Info("shop created", zap.String("shop_id", shop.ID.String()), zap.String("slug", shop.Slug))
	return shop, nil
}

// Update changes the editable fields. A new name gets a new slug.
func (s *ShopService) Update(ctx context.Context, actor Actor, id uuid.UUID, req models.UpdateShopRequest) (*models.Shop, error) {
	var shop models.Shop
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findShopFor(tx, actor, id, &shop, ErrShopAccessDenied); err != nil {
			return err
		}

		updates := map[string]any{}
		if req.Name != nil && *req.Name != shop.Name {
			slug, err := uniqueSlug(tx.Unscoped().Model(&models.Shop{}), *req.Name, shop.ID)
			if err != nil {
				return err
			}
			updates["name"] = *req.Name
			updates["slug"] = slug
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Whatsapp != nil {
			updates["whatsapp"] = *req.Whatsapp
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&shop).Updates(updates).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, shop.ID)
}

// UpdateLocation moves a shop. Only the owner may do this.
func (s *ShopService) UpdateLocation(ctx context.Context, actor Actor, id uuid.UUID, req models.LocationRequest) (*models.Shop, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := findShopFor(tx, actor, id, &shop, ErrLocationAccessDenied); err != nil {
			return err
		}
		location, err := newLocation(tx, req)
		if err != nil {
			return err
		}
		return tx.Model(&models.Location{}).Where("id = ?", shop.LocationID).Updates(map[string]any{
			"city_id":   location.CityID,
			"area":      location.Area,
			"latitude":  location.Latitude,
			"longitude": location.Longitude,
		}).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, id)
}

// SetActive is the admin moderation switch.
func (s *ShopService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Shop, error) {
	res := s.db.WithContext(ctx).Model(&models.Shop{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the shop. Its products stay in place until it is restored.
func (s *ShopService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := findShopFor(tx, actor, id, &shop, ErrShopAccessDenied); err != nil {
			return err
		}
		return tx.Delete(&shop).Error
	})
	if err != nil {
		return translateStoreError(err)
	}
	s.log.Info("shop deleted", zap.String("shop_id", id.String()))
	return nil
}

func (s *ShopService) Restore(ctx context.Context, actor Actor, id uuid.UUID) (*models.Shop, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := findShopFor(tx.Unscoped(), actor, id, &shop, ErrShopAccessDenied); err != nil {
			return err
		}
		if !shop.DeletedAt.Valid {
			return nil
		}
		return tx.Unscoped().Model(&shop).Update("deleted_at", nil).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, id)
}

// findShopFor loads a shop and checks that actor may manage it, failing with
// denied otherwise. Admins manage every shop.
func findShopFor(tx *gorm.DB, actor Actor, id uuid.UUID, shop *models.Shop, denied *DomainError) error {
	if err := tx.First(shop, "id = ?", id).Error; err != nil {
		return err
	}
	if !actor.IsAdmin() && !shop.OwnedBy(actor.ID) {
		return denied
	}
	return nil
}

func newLocation(tx *gorm.DB, req models.LocationRequest) (*models.Location, error) {
	if err := ensureExists(tx, &models.City{}, req.CityID); err != nil {
		if errors.Is(err, ErrInvalidReference) {
			return nil, ErrInvalidReference.WithMessage("city does not exist")
		}
		return nil, err
	}
	location := &models.Location{CityID: req.CityID, Area: req.Area}
	if req.Latitude != nil {
		location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = *req.Longitude
	}
	return location, nil
}
