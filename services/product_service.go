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
	"gorm.io/gorm/clause"
)

type ProductService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewProductService(db *gorm.DB, log *zap.Logger) *ProductService {
	return &ProductService{db: db, log: log}
}

// ActiveProducts restricts a product query to active products of active, live shops.
func ActiveProducts(db *gorm.DB) *gorm.DB {
	return db.Where("products.is_active = ?", true).
		Where("EXISTS (SELECT 1 FROM shops WHERE shops.id = products.shop_id AND shops.is_active = ? AND shops.deleted_at IS NULL)", true)
}

// ProductsOfShop restricts a product query to one shop.
func ProductsOfShop(shopID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("products.shop_id = ?", shopID)
	}
}

// ProductsOwnedBy restricts a product query to the shops of one vendor.
func ProductsOwnedBy(vendorID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXISTS (SELECT 1 FROM shops WHERE shops.id = products.shop_id AND shops.vendor_id = ?)", vendorID)
	}
}

func preloadProductDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Shop", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "vendor_id", "location_id", "name", "slug", "is_active")
		}).
		Preload("Subcategory").
		Preload("AttributeValues.Attribute")
}

func (s *ProductService) List(ctx context.Context, params filters.Params, page utils.PageRequest, scopes ...func(*gorm.DB) *gorm.DB) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	for _, scope := range scopes {
		query = scope(query)
	}

	f := filters.New(filters.Products, params)
	query = filters.Products.EnsureOrder(f.Apply(query))
	s.log.Debug("listing products", zap.Strings("filters", f.Applied()))

	return utils.Paginate[models.Product](query, page, preloadProductDetails)
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID, scopes ...func(*gorm.DB) *gorm.DB) (*models.Product, error) {
	query := s.db.WithContext(ctx).Scopes(scopes...)
	var product models.Product
	if err := preloadProductDetails(query).First(&product, "products.id = ?", id).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &product, nil
}

func (s *ProductService) Create(ctx context.Context, actor Actor, shopID uuid.UUID, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ShopID:        shopID,
		SubcategoryID: req.SubcategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.SetDiscount(req.Discount)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := findShopFor(tx, actor, shopID, &shop, ErrShopAccessDenied); err != nil {
			return err
		}
		if err := ensureSubcategory(tx, req.SubcategoryID); err != nil {
			return err
		}
		values, err := loadAttributeValues(tx, req.AttributeValueIDs)
		if err != nil {
			return err
		}

		slug, err := uniqueSlug(tx.Model(&models.Product{}).Where("shop_id = ?", shopID), req.Name, uuid.Nil)
		if err != nil {
			return err
		}
		product.Slug = slug
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}
		if len(values) > 0 {
			return tx.Model(product).Association("AttributeValues").Append(values)
		}
		return nil
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	s.log.Info("product created", zap.String("product_id", product.ID.String()), zap.String("shop_id", shopID.String()))
	return s.Get(ctx, product.ID)
}

func (s *ProductService) Update(ctx context.Context, actor Actor, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := findProductFor(tx, actor, id, &product); err != nil {
			return err
		}

		updates := map[string]any{}
		if req.Name != nil && *req.Name != product.Name {
			slug, err := uniqueSlug(tx.Model(&models.Product{}).Where("shop_id = ?", product.ShopID), *req.Name, product.ID)
			if err != nil {
				return err
			}
			updates["name"] = *req.Name
			updates["slug"] = slug
		}
		if req.SubcategoryID != nil && *req.SubcategoryID != product.SubcategoryID {
			if err := ensureSubcategory(tx, *req.SubcategoryID); err != nil {
				return err
			}
			updates["subcategory_id"] = *req.SubcategoryID
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&product).Updates(updates).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, id)
}

// Delete removes the product and its attribute links.
func (s *ProductService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := findProductFor(tx, actor, id, &product); err != nil {
			return err
		}
		return tx.Select("AttributeValues").Delete(&product).Error
	})
	if err != nil {
		return translateStoreError(err)
	}
	s.log.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

// AdjustStock sets, increments or decrements the stock quantity. Concurrent
// adjustments are last-write-wins.
func (s *ProductService) AdjustStock(ctx context.Context, actor Actor, id uuid.UUID, req models.StockRequest) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := findProductFor(tx, actor, id, &product); err != nil {
			return err
		}

		switch req.Operation {
		case models.StockSet:
			product.StockQuantity = req.Quantity
		case models.StockIncrement:
			product.IncrementStock(req.Quantity)
		case models.StockDecrement:
			if !product.DecrementStock(req.Quantity) {
				return ErrInsufficientStock
			}
		default:
			return errors.New("unknown stock operation")
		}
		return tx.Model(&product).Update("stock_quantity", product.StockQuantity).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, id)
}

// SetDiscount replaces the discount; a nil request clears it.
func (s *ProductService) SetDiscount(ctx context.Context, actor Actor, id uuid.UUID, req *models.DiscountRequest) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := findProductFor(tx, actor, id, &product); err != nil {
			return err
		}
		product.SetDiscount(req)
		return tx.Model(&product).Select("discount_type", "discount_value").Updates(&product).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, id)
}

// SyncAttributes replaces the product's attribute values.
func (s *ProductService) SyncAttributes(ctx context.Context, actor Actor, id uuid.UUID, valueIDs []uuid.UUID) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := findProductFor(tx, actor, id, &product); err != nil {
			return err
		}
		values, err := loadAttributeValues(tx, valueIDs)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return tx.Model(&product).Association("AttributeValues").Clear()
		}
		return tx.Model(&product).Association("AttributeValues").Replace(values)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, id)
}

// findProductFor loads a product of a live shop and checks that actor owns it.
func findProductFor(tx *gorm.DB, actor Actor, id uuid.UUID, product *models.Product) error {
	if err := tx.Preload("Shop").First(product, "id = ?", id).Error; err != nil {
		return err
	}
	if product.Shop == nil {
		return ErrNotFound
	}
	if !actor.IsAdmin() && !product.Shop.OwnedBy(actor.ID) {
		return ErrProductAccessDenied
	}
	return nil
}

func ensureSubcategory(tx *gorm.DB, id uuid.UUID) error {
	err := ensureExists(tx, &models.Subcategory{}, id)
	if errors.Is(err, ErrInvalidReference) {
		return ErrInvalidReference.WithMessage("subcategory does not exist")
	}
	return err
}
