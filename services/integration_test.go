package services

import (
	"context"
	"os"
	"testing"

	"github.com/ahmedellithy99/dukkan-backend-sub000/config"
	"github.com/ahmedellithy99/dukkan-backend-sub000/filters"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens TEST_DATABASE_URL and returns a transaction that is rolled back
// when the test ends.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

type fixture struct {
	ctx        context.Context
	vendor     Actor
	shop       *models.Shop
	category   *models.Category
	sub        *models.Subcategory
	city       *models.City
	shops      *ShopService
	products   *ProductService
	taxonomy   *TaxonomyService
	attributes *AttributeService
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	ctx := context.Background()
	log := zap.NewNop()

	f := &fixture{
		ctx:        ctx,
		shops:      NewShopService(db, log),
		products:   NewProductService(db, log),
		taxonomy:   NewTaxonomyService(db, log),
		attributes: NewAttributeService(db, log),
	}
	locations := NewLocationService(db, log)

	governorate, err := locations.CreateGovernorate(ctx, models.GovernorateRequest{Name: "Cairo " + uuid.NewString()[:8]})
	require.NoError(t, err)
	f.city, err = locations.CreateCity(ctx, models.CityRequest{GovernorateID: governorate.ID, Name: "Nasr City"})
	require.NoError(t, err)

	vendor := &models.User{Name: "Vendor", Email: uuid.NewString() + "@dukkan.test", PasswordHash: "x", Role: models.RoleVendor}
	require.NoError(t, db.Create(vendor).Error)
	f.vendor = Actor{ID: vendor.ID, Role: models.RoleVendor}

	f.shop = f.createShop(t, "Corner Bakery", 30.0444, 31.2357)

	f.category, err = f.taxonomy.CreateCategory(ctx, models.CategoryRequest{Name: "Food " + uuid.NewString()[:8]})
	require.NoError(t, err)
	f.sub, err = f.taxonomy.CreateSubcategory(ctx, models.SubcategoryRequest{CategoryID: f.category.ID, Name: "Bakery"})
	require.NoError(t, err)
	return f
}

func (f *fixture) createShop(t *testing.T, name string, lat, lng float64) *models.Shop {
	t.Helper()
	shop, err := f.shops.Create(f.ctx, f.vendor.ID, models.CreateShopRequest{
		Name:     name,
		Location: models.LocationRequest{CityID: f.city.ID, Area: "7th District", Latitude: &lat, Longitude: &lng},
	})
	require.NoError(t, err)
	return shop
}

func (f *fixture) createProduct(t *testing.T, name, price string, valueIDs ...uuid.UUID) *models.Product {
	t.Helper()
	p := decimal.RequireFromString(price)
	product, err := f.products.Create(f.ctx, f.vendor, f.shop.ID, models.CreateProductRequest{
		SubcategoryID:     f.sub.ID,
		Name:              name,
		Price:             &p,
		StockQuantity:     10,
		AttributeValueIDs: valueIDs,
	})
	require.NoError(t, err)
	return product
}

func TestCategoryDeletionGuard(t *testing.T) {
	f := newFixture(t, testDB(t))

	product := f.createProduct(t, "Sourdough", "45")

	err := f.taxonomy.DeleteCategory(f.ctx, f.category.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)
	err = f.taxonomy.DeleteSubcategory(f.ctx, f.sub.ID)
	assert.ErrorIs(t, err, ErrSubcategoryInUse)

	require.NoError(t, f.products.Delete(f.ctx, f.vendor, product.ID))
	require.NoError(t, f.taxonomy.DeleteCategory(f.ctx, f.category.ID))

	_, err = f.taxonomy.GetCategory(f.ctx, f.category.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.taxonomy.GetSubcategory(f.ctx, f.sub.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceRangeFilter(t *testing.T) {
	f := newFixture(t, testDB(t))
	for _, price := range []string{"10", "50", "99", "150"} {
		f.createProduct(t, "Item "+price, price)
	}

	products, total, err := f.products.List(f.ctx,
		filters.Params{"min_price": "50", "max_price": "100", "sort": "price"},
		utils.PageRequest{Page: 1, Limit: 15},
		ProductsOfShop(f.shop.ID),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	prices := make([]string, len(products))
	for i, p := range products {
		prices[i] = p.Price.String()
	}
	assert.Equal(t, []string{"50", "99"}, prices)
}

func TestFacetFilter(t *testing.T) {
	f := newFixture(t, testDB(t))

	color, err := f.attributes.Create(f.ctx, models.AttributeRequest{Name: "Color"})
	require.NoError(t, err)
	size, err := f.attributes.Create(f.ctx, models.AttributeRequest{Name: "Size"})
	require.NoError(t, err)
	red, err := f.attributes.AddValue(f.ctx, color.ID, models.AttributeValueRequest{Value: "Red"})
	require.NoError(t, err)
	blue, err := f.attributes.AddValue(f.ctx, color.ID, models.AttributeValueRequest{Value: "Blue"})
	require.NoError(t, err)
	large, err := f.attributes.AddValue(f.ctx, size.ID, models.AttributeValueRequest{Value: "Large"})
	require.NoError(t, err)

	_, err = f.attributes.AddValue(f.ctx, color.ID, models.AttributeValueRequest{Value: "red"})
	assert.ErrorIs(t, err, ErrDuplicateAttributeValue)

	f.createProduct(t, "P1", "10", red.ID)
	f.createProduct(t, "P2", "10", blue.ID)
	f.createProduct(t, "P3", "10", red.ID, large.ID)

	names := func(params filters.Params) []string {
		products, _, err := f.products.List(f.ctx, params, utils.PageRequest{Page: 1, Limit: 15}, ProductsOfShop(f.shop.ID))
		require.NoError(t, err)
		out := make([]string, len(products))
		for i, p := range products {
			out[i] = p.Name
		}
		return out
	}

	assert.Equal(t, []string{"P3"}, names(filters.Params{
		"attributes": map[string]any{"color": []string{"red"}, "size": []string{"large"}},
	}))
	assert.ElementsMatch(t, []string{"P1", "P2", "P3"}, names(filters.Params{
		"attributes": map[string]any{"Color": []string{"red", "Blue"}},
	}))

	err = f.attributes.DeleteValue(f.ctx, large.ID)
	assert.ErrorIs(t, err, ErrAttributeInUse)
}

func TestNearFilter(t *testing.T) {
	f := newFixture(t, testDB(t))
	far := f.createShop(t, "Alexandria Bakery", 31.2001, 29.9187)

	shops, _, err := f.shops.List(f.ctx,
		filters.Params{"near": map[string]any{"lat": "30.05", "lng": "31.24", "radius": "5"}},
		utils.PageRequest{Page: 1, Limit: 15},
		ShopsOwnedBy(f.vendor.ID),
	)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, f.shop.ID, shops[0].ID)

	shops, _, err = f.shops.List(f.ctx,
		filters.Params{"near": map[string]any{"lat": "30.05", "lng": "31.24", "radius": "500"}},
		utils.PageRequest{Page: 1, Limit: 15},
		ShopsOwnedBy(f.vendor.ID),
	)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, f.shop.ID, shops[0].ID)
	assert.Equal(t, far.ID, shops[1].ID)
}

func TestShopLifecycle(t *testing.T) {
	f := newFixture(t, testDB(t))

	twin := f.createShop(t, "Corner Bakery", 30.1, 31.3)
	assert.Equal(t, "corner-bakery", f.shop.Slug)
	assert.Equal(t, "corner-bakery-2", twin.Slug)

	stranger := Actor{ID: uuid.Must(uuid.NewV7()), Role: models.RoleVendor}
	lat, lng := 30.2, 31.4
	_, err := f.shops.UpdateLocation(f.ctx, stranger, f.shop.ID, models.LocationRequest{CityID: f.city.ID, Latitude: &lat, Longitude: &lng})
	assert.ErrorIs(t, err, ErrLocationAccessDenied)

	moved, err := f.shops.UpdateLocation(f.ctx, f.vendor, f.shop.ID, models.LocationRequest{CityID: f.city.ID, Area: "Maadi", Latitude: &lat, Longitude: &lng})
	require.NoError(t, err)
	assert.Equal(t, "Maadi", moved.Location.Area)

	require.NoError(t, f.shops.Delete(f.ctx, f.vendor, twin.ID))
	_, err = f.shops.Get(f.ctx, twin.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	restored, err := f.shops.Restore(f.ctx, f.vendor, twin.ID)
	require.NoError(t, err)
	assert.False(t, restored.DeletedAt.Valid)
}

func TestStockAndDiscount(t *testing.T) {
	f := newFixture(t, testDB(t))
	product := f.createProduct(t, "Croissant", "20")

	_, err := f.products.AdjustStock(f.ctx, f.vendor, product.ID, models.StockRequest{Operation: models.StockDecrement, Quantity: 11})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	updated, err := f.products.AdjustStock(f.ctx, f.vendor, product.ID, models.StockRequest{Operation: models.StockDecrement, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.StockQuantity)
	assert.True(t, updated.IsLowStock())

	updated, err = f.products.SetDiscount(f.ctx, f.vendor, product.ID, &models.DiscountRequest{Type: models.DiscountPercent, Value: decimal.NewFromInt(25)})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(*updated.DiscountedPrice()))

	onDiscount, _, err := f.products.List(f.ctx, filters.Params{"on_discount": "true"}, utils.PageRequest{Page: 1, Limit: 15}, ProductsOfShop(f.shop.ID))
	require.NoError(t, err)
	assert.Len(t, onDiscount, 1)

	updated, err = f.products.SetDiscount(f.ctx, f.vendor, product.ID, nil)
	require.NoError(t, err)
	assert.False(t, updated.HasDiscount())

	stranger := Actor{ID: uuid.Must(uuid.NewV7()), Role: models.RoleVendor}
	_, err = f.products.AdjustStock(f.ctx, stranger, product.ID, models.StockRequest{Operation: models.StockIncrement, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductAccessDenied)

	twin := f.createProduct(t, "Croissant", "22")
	assert.Equal(t, "croissant-2", twin.Slug)
}
