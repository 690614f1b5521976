package filters

import (
	"net/url"
	"strings"
	"testing"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func render[T any](db *gorm.DB, spec *Spec, params Params) (string, []any) {
	var rows []T
	stmt := Apply(db.Model(new(T)), spec, params).Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

type resourceCase struct {
	spec   *Spec
	render func(*gorm.DB, *Spec, Params) (string, []any)
}

var resources = []resourceCase{
	{Shops, render[models.Shop]},
	{Products, render[models.Product]},
	{Categories, render[models.Category]},
	{Subcategories, render[models.Subcategory]},
	{Attributes, render[models.Attribute]},
	{AttributeValues, render[models.AttributeValue]},
	{Governorates, render[models.Governorate]},
	{Cities, render[models.City]},
	{ActivityLogs, render[models.ActivityLog]},
}

func TestFromQuery(t *testing.T) {
	values, err := url.ParseQuery(
		"search=bread&attributes[color][]=red&attributes[color][]=blue&attributes[size]=large" +
			"&near[lat]=30&near[lng]=31.2&tags=a&tags=b&ids[]=1&[broken]=x")
	require.NoError(t, err)

	assert.Equal(t, Params{
		"search": "bread",
		"attributes": map[string]any{
			"color": []string{"red", "blue"},
			"size":  "large",
		},
		"near": map[string]any{"lat": "30", "lng": "31.2"},
		"tags": []string{"a", "b"},
		"ids":  []string{"1"},
	}, FromQuery(values))
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  any
		valid bool
	}{
		{"nil", nil, nil, false},
		{"empty string", "", "", false},
		{"string", "x", "x", true},
		{"empty list", []string{"", ""}, []string{}, false},
		{"mixed list", []string{"", "red"}, []string{"red"}, true},
		{"any list", []any{nil, "", "a"}, []any{"a"}, true},
		{"empty map", map[string]any{"color": []string{""}}, map[string]any{}, false},
		{"map", map[string]any{"color": []string{"", "red"}, "size": ""}, map[string]any{"color": []string{"red"}}, true},
		{"number", 30.5, 30.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Clean(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, Meaningful(tt.in))
		})
	}
}

func TestUnknownParamsAreIgnored(t *testing.T) {
	db := dryRunDB(t)
	for _, rc := range resources {
		t.Run(rc.spec.Resource(), func(t *testing.T) {
			baseSQL, baseVars := rc.render(db, rc.spec, Params{})
			sql, vars := rc.render(db, rc.spec, Params{
				"deleted_at":  "2020-01-01",
				"password":    "x' OR 1=1 --",
				"order":       "-id",
				"vendor_id ":  uuid.NewString(),
				"attributes2": map[string]any{"color": []string{"red"}},
			})
			assert.Equal(t, baseSQL, sql)
			assert.Equal(t, baseVars, vars)
		})
	}
}

func TestEmptyValuesAreNoOps(t *testing.T) {
	db := dryRunDB(t)
	empties := []any{nil, "", []string{}, []string{"", ""}, []any{nil, ""}, map[string]any{"color": []string{""}}}

	for _, rc := range resources {
		baseSQL, baseVars := rc.render(db, rc.spec, Params{})
		for _, param := range rc.spec.Whitelist() {
			for _, empty := range empties {
				sql, vars := rc.render(db, rc.spec, Params{param: empty})
				assert.Equal(t, baseSQL, sql, "%s %s=%#v", rc.spec.Resource(), param, empty)
				assert.Equal(t, baseVars, vars, "%s %s=%#v", rc.spec.Resource(), param, empty)
			}
		}
	}
}

func TestSort(t *testing.T) {
	db := dryRunDB(t)

	sql, _ := render[models.Product](db, Products, Params{"sort": "name"})
	assert.Contains(t, sql, `ORDER BY "products"."name"`)
	assert.NotContains(t, sql, "DESC")

	sql, _ = render[models.Product](db, Products, Params{"sort": "-name"})
	assert.Contains(t, sql, `ORDER BY "products"."name" DESC`)

	sql, _ = render[models.Product](db, Products, Params{"sort": "bogus_field"})
	assert.Contains(t, sql, `ORDER BY "products"."created_at" DESC`)

	sql, _ = render[models.Product](db, Products, Params{"sort": "-id; DROP TABLE products"})
	assert.Contains(t, sql, `ORDER BY "products"."created_at" DESC`)
	assert.NotContains(t, sql, "DROP")

	sql, _ = render[models.Category](db, Categories, Params{"sort": "bogus_field"})
	assert.Contains(t, sql, `ORDER BY "categories"."name"`)
	assert.NotContains(t, sql, "DESC")
}

func TestEnsureOrder(t *testing.T) {
	db := dryRunDB(t)

	var rows []models.Product
	query := Apply(db.Model(&models.Product{}), Products, Params{"search": "bread"})
	assert.False(t, Ordered(query))
	stmt := Products.EnsureOrder(query).Find(&rows).Statement
	assert.Contains(t, stmt.SQL.String(), `ORDER BY "products"."created_at" DESC`)

	query = Apply(db.Model(&models.Product{}), Products, Params{"sort": "price"})
	assert.True(t, Ordered(query))
	stmt = Products.EnsureOrder(query).Find(&rows).Statement
	assert.Contains(t, stmt.SQL.String(), `ORDER BY "products"."price"`)
	assert.NotContains(t, stmt.SQL.String(), "created_at")
}

func TestPriceRange(t *testing.T) {
	db := dryRunDB(t)

	sql, vars := render[models.Product](db, Products, Params{"min_price": "50", "max_price": "100"})
	assert.Contains(t, sql, "products.price >= $1 AND products.price <= $2")
	assert.Equal(t, []any{50.0, 100.0}, vars)

	sql, vars = render[models.Product](db, Products, Params{"max_price": "cheap"})
	assert.NotContains(t, sql, "price")
	assert.Empty(t, vars)
}

func TestStockAndDiscountFlags(t *testing.T) {
	db := dryRunDB(t)

	sql, _ := render[models.Product](db, Products, Params{"in_stock": "1"})
	assert.Contains(t, sql, "products.stock_quantity > 0")

	sql, _ = render[models.Product](db, Products, Params{"in_stock": "false"})
	assert.Contains(t, sql, "products.stock_quantity <= 0")

	sql, _ = render[models.Product](db, Products, Params{"on_discount": "true"})
	assert.Contains(t, sql, "products.discount_type IS NOT NULL AND products.discount_value IS NOT NULL")

	sql, _ = render[models.Product](db, Products, Params{"on_discount": "0"})
	assert.Contains(t, sql, "products.discount_type IS NULL OR products.discount_value IS NULL")

	sql, vars := render[models.Product](db, Products, Params{"is_active": "yes"})
	assert.Contains(t, sql, "products.is_active = $1")
	assert.Equal(t, []any{true}, vars)

	base, _ := render[models.Product](db, Products, Params{})
	sql, _ = render[models.Product](db, Products, Params{"is_active": "maybe", "in_stock": "sometimes"})
	assert.Equal(t, base, sql)
}

func TestForeignKeys(t *testing.T) {
	db := dryRunDB(t)
	id := uuid.Must(uuid.NewV7())

	sql, vars := render[models.Product](db, Products, Params{"shop_id": id.String()})
	assert.Contains(t, sql, "products.shop_id = $1")
	assert.Equal(t, []any{id}, vars)

	sql, vars = render[models.Product](db, Products, Params{"category_id": id.String()})
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM subcategories WHERE subcategories.id = products.subcategory_id")
	assert.Equal(t, []any{id}, vars)

	sql, vars = render[models.Shop](db, Shops, Params{"governorate_id": id.String()})
	assert.Contains(t, sql, "cities.governorate_id = $1")
	assert.Equal(t, []any{id}, vars)

	base, _ := render[models.Product](db, Products, Params{})
	sql, vars = render[models.Product](db, Products, Params{"shop_id": "not-a-uuid", "category_id": "42"})
	assert.Equal(t, base, sql)
	assert.Empty(t, vars)
}

func TestSearchAndArea(t *testing.T) {
	db := dryRunDB(t)

	sql, vars := render[models.Shop](db, Shops, Params{"search": "50%_off"})
	assert.Contains(t, sql, "shops.name ILIKE $1 OR shops.description ILIKE $2")
	assert.Equal(t, []any{`%50\%\_off%`, `%50\%\_off%`}, vars)

	sql, vars = render[models.Shop](db, Shops, Params{"area": "Maadi"})
	assert.Contains(t, sql, "locations.area ILIKE $1")
	assert.Equal(t, []any{"%Maadi%"}, vars)
}

func TestFacets(t *testing.T) {
	db := dryRunDB(t)

	sql, vars := render[models.Product](db, Products, Params{
		"attributes": map[string]any{
			"size":  "large",
			"color": []string{"red", "blue"},
		},
	})
	assert.Equal(t, 2, strings.Count(sql, "EXISTS (SELECT 1 FROM product_attribute_values"))
	assert.Contains(t, sql, "av.slug IN ($3,$4) OR av.value IN ($5,$6)")
	assert.Equal(t, []any{"color", "color", "red", "blue", "red", "blue", "size", "size", "large", "large"}, vars)

	base, _ := render[models.Product](db, Products, Params{})
	sql, _ = render[models.Product](db, Products, Params{"attributes": "red"})
	assert.Equal(t, base, sql)
}

func TestNear(t *testing.T) {
	db := dryRunDB(t)

	sql, vars := render[models.Shop](db, Shops, Params{"near": map[string]any{"lat": "30.05", "lng": "31.2"}})
	assert.Contains(t, sql, "asin(sqrt(")
	assert.Contains(t, sql, "FROM locations WHERE locations.id = shops.location_id) <= $1")
	assert.Contains(t, sql, "ORDER BY (SELECT 12742 * asin(")
	assert.Equal(t, []any{DefaultRadiusKm}, vars)

	_, vars = render[models.Product](db, Products, Params{"near": map[string]any{"lat": 30.05, "lng": 31.2, "radius": "2.5"}})
	assert.Equal(t, []any{2.5}, vars)

	_, vars = render[models.Product](db, Products, Params{"near": map[string]any{"lat": "30", "lng": "31", "radius": "-4"}})
	assert.Equal(t, []any{DefaultRadiusKm}, vars)
}

func TestNearMalformedIsNoOp(t *testing.T) {
	db := dryRunDB(t)
	base, baseVars := render[models.Shop](db, Shops, Params{})

	malformed := []any{
		map[string]any{"lat": "30.0"},
		map[string]any{"lng": "31.0"},
		map[string]any{"lat": "north", "lng": "31"},
		map[string]any{"lat": "95", "lng": "31"},
		map[string]any{"lat": "NaN", "lng": "31"},
		"30,31",
	}
	for _, near := range malformed {
		sql, vars := render[models.Shop](db, Shops, Params{"near": near})
		assert.Equal(t, base, sql, "%#v", near)
		assert.Equal(t, baseVars, vars, "%#v", near)
	}
}

func TestWhitelistOrderDrivesApplication(t *testing.T) {
	db := dryRunDB(t)

	f := New(Products, Params{
		"sort":   "price",
		"near":   map[string]any{"lat": "30", "lng": "31"},
		"search": "bread",
		"bogus":  "1",
	})
	var rows []models.Product
	sql := f.Apply(db.Model(&models.Product{})).Find(&rows).Statement.SQL.String()

	assert.Equal(t, []string{"search", "near", "sort"}, f.Applied())
	distance := strings.Index(sql, "ORDER BY (SELECT")
	price := strings.Index(sql, `"products"."price"`)
	require.NotEqual(t, -1, distance)
	require.NotEqual(t, -1, price)
	assert.Less(t, distance, price)
}

func TestScope(t *testing.T) {
	db := dryRunDB(t)

	var rows []models.Category
	sql := db.Model(&models.Category{}).
		Scopes(Scope(Categories, Params{"search": "food"})).
		Find(&rows).Statement.SQL.String()
	assert.Contains(t, sql, "categories.name ILIKE $1")
}

func TestNewSpecPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSpec("x", nil, Rule{"search", Search("name")}, Rule{"search", Search("name")})
	})
	assert.Panics(t, func() {
		NewSpec("x", nil, Rule{"search", nil})
	})
}
