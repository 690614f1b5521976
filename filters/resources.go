package filters

const (
	shopLocation = "FROM locations WHERE locations.id = shops.location_id"

	productLocation = "FROM shops JOIN locations ON locations.id = shops.location_id " +
		"WHERE shops.id = products.shop_id AND shops.deleted_at IS NULL"
)

var (
	shopOrder    = Ordering{Desc("created_at")}
	productOrder = Ordering{Desc("created_at")}
	nameOrder    = Ordering{Asc("name")}
	valueOrder   = Ordering{Asc("value")}
)

var Shops = NewSpec("shops", shopOrder,
	Rule{"search", Search("shops.name", "shops.description")},
	Rule{"vendor_id", UUIDEquals("shops.vendor_id")},
	Rule{"is_active", Boolean("shops.is_active")},
	Rule{"governorate_id", UUIDExists(
		"SELECT 1 FROM locations JOIN cities ON cities.id = locations.city_id " +
			"WHERE locations.id = shops.location_id AND cities.governorate_id = ?")},
	Rule{"city_id", UUIDExists(
		"SELECT 1 FROM locations WHERE locations.id = shops.location_id AND locations.city_id = ?")},
	Rule{"area", ContainsFold(
		"SELECT 1 FROM locations WHERE locations.id = shops.location_id AND locations.area ILIKE ?")},
	Rule{"near", Near(shopLocation)},
	Rule{"sort", Sort(shopOrder, "name", "created_at")},
)

var Products = NewSpec("products", productOrder,
	Rule{"search", Search("products.name", "products.description")},
	Rule{"shop_id", UUIDEquals("products.shop_id")},
	Rule{"subcategory_id", UUIDEquals("products.subcategory_id")},
	Rule{"category_id", UUIDExists(
		"SELECT 1 FROM subcategories WHERE subcategories.id = products.subcategory_id " +
			"AND subcategories.category_id = ?")},
	Rule{"min_price", MinValue("products.price")},
	Rule{"max_price", MaxValue("products.price")},
	Rule{"in_stock", Positive("products.stock_quantity")},
	Rule{"on_discount", BothSet("products.discount_type", "products.discount_value")},
	Rule{"is_active", Boolean("products.is_active")},
	Rule{"attributes", Facets("products.id")},
	Rule{"city_id", UUIDExists(
		"SELECT 1 FROM shops JOIN locations ON locations.id = shops.location_id " +
			"WHERE shops.id = products.shop_id AND locations.city_id = ?")},
	Rule{"near", Near(productLocation)},
	Rule{"sort", Sort(productOrder, "name", "price", "created_at", "stock_quantity")},
)

var Categories = NewSpec("categories", nameOrder,
	Rule{"search", Search("categories.name")},
	Rule{"sort", Sort(nameOrder, "name", "created_at")},
)

var Subcategories = NewSpec("subcategories", nameOrder,
	Rule{"search", Search("subcategories.name")},
	Rule{"category_id", UUIDEquals("subcategories.category_id")},
	Rule{"sort", Sort(nameOrder, "name", "created_at")},
)

var Attributes = NewSpec("attributes", nameOrder,
	Rule{"search", Search("attributes.name", "attributes.slug")},
	Rule{"sort", Sort(nameOrder, "name", "created_at")},
)

var AttributeValues = NewSpec("attribute_values", valueOrder,
	Rule{"search", Search("attribute_values.value", "attribute_values.slug")},
	Rule{"attribute_id", UUIDEquals("attribute_values.attribute_id")},
	Rule{"sort", Sort(valueOrder, "value", "created_at")},
)

var Governorates = NewSpec("governorates", nameOrder,
	Rule{"search", Search("governorates.name")},
	Rule{"sort", Sort(nameOrder, "name")},
)

var Cities = NewSpec("cities", nameOrder,
	Rule{"search", Search("cities.name")},
	Rule{"governorate_id", UUIDEquals("cities.governorate_id")},
	Rule{"sort", Sort(nameOrder, "name")},
)

var ActivityLogs = NewSpec("activity_logs", Ordering{Desc("created_at")},
	Rule{"user_id", UUIDEquals("activity_logs.user_id")},
	Rule{"resource_type", Equals("activity_logs.resource_type")},
	Rule{"resource_id", Equals("activity_logs.resource_id")},
	Rule{"action", Equals("activity_logs.action")},
	Rule{"status", Equals("activity_logs.status")},
	Rule{"sort", Sort(Ordering{Desc("created_at")}, "created_at")},
)
