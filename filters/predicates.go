package filters

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultRadiusKm is the near radius used when none, or an invalid one, is given.
const DefaultRadiusKm = 10.0

const earthRadiusKm = 6371.0

// Search matches the value as a case-insensitive substring of any column.
func Search(columns ...string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		term, ok := stringValue(value)
		term = strings.TrimSpace(term)
		if !ok || term == "" {
			return db
		}
		pattern := containsPattern(term)

		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			conds[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

// Sort orders by "field" ascending or "-field" descending. Fields outside
// sortable fall back to def.
func Sort(def Ordering, sortable ...string) Handler {
	allowed := make(map[string]struct{}, len(sortable))
	for _, f := range sortable {
		allowed[f] = struct{}{}
	}
	return func(db *gorm.DB, value any) *gorm.DB {
		raw, _ := stringValue(value)
		raw = strings.TrimSpace(raw)
		field := strings.TrimPrefix(raw, "-")
		if _, ok := allowed[field]; !ok {
			return def.Apply(db)
		}
		if raw != field {
			return db.Order(Desc(field))
		}
		return db.Order(Asc(field))
	}
}

// Equals matches column against the value as text.
func Equals(column string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		s, ok := stringValue(value)
		if !ok {
			return db
		}
		return db.Where(column+" = ?", strings.TrimSpace(s))
	}
}

// UUIDEquals matches column against the value parsed as a UUID.
func UUIDEquals(column string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		id, ok := uuidValue(value)
		if !ok {
			return db
		}
		return db.Where(column+" = ?", id)
	}
}

// UUIDExists requires the correlated subquery to return a row for the UUID value.
// The subquery takes the UUID as its only placeholder.
func UUIDExists(subquery string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		id, ok := uuidValue(value)
		if !ok {
			return db
		}
		return db.Where("EXISTS ("+subquery+")", id)
	}
}

// ContainsFold requires the correlated subquery to return a row for an ILIKE
// pattern built from the value. The subquery takes the pattern as its only placeholder.
func ContainsFold(subquery string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		term, ok := stringValue(value)
		term = strings.TrimSpace(term)
		if !ok || term == "" {
			return db
		}
		return db.Where("EXISTS ("+subquery+")", containsPattern(term))
	}
}

// MinValue is an inclusive lower bound.
func MinValue(column string) Handler {
	return bound(column, ">=")
}

// MaxValue is an inclusive upper bound.
func MaxValue(column string) Handler {
	return bound(column, "<=")
}

func bound(column, op string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		f, ok := floatValue(value)
		if !ok {
			return db
		}
		return db.Where(column+" "+op+" ?", f)
	}
}

// Positive keeps rows with column > 0 for a truthy value and column <= 0 otherwise.
func Positive(column string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		want, ok := boolValue(value)
		if !ok {
			return db
		}
		if want {
			return db.Where(column + " > 0")
		}
		return db.Where(column + " <= 0")
	}
}

// BothSet keeps rows where both columns are non-null for a truthy value, and
// rows where either is null otherwise.
func BothSet(a, b string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		want, ok := boolValue(value)
		if !ok {
			return db
		}
		if want {
			return db.Where(a + " IS NOT NULL AND " + b + " IS NOT NULL")
		}
		return db.Where(a + " IS NULL OR " + b + " IS NULL")
	}
}

// Boolean is equality on a boolean column.
func Boolean(column string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		b, ok := boolValue(value)
		if !ok {
			return db
		}
		return db.Where(column+" = ?", b)
	}
}

// Near keeps rows whose location lies within radius km of (lat, lng) and orders
// them nearest first. source is the FROM ... WHERE tail that correlates the
// row with its "locations" row.
func Near(source string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		m, ok := asMap(value)
		if !ok {
			return db
		}
		lat, okLat := floatValue(m["lat"])
		lng, okLng := floatValue(m["lng"])
		if !okLat || !okLng || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return db
		}
		radius, ok := floatValue(m["radius"])
		if !ok || radius <= 0 {
			radius = DefaultRadiusKm
		}

		distance := "(SELECT " + haversine(lat, lng) + " " + source + ")"
		return db.
			Where(distance+" <= ?", radius).
			Order(clause.OrderByColumn{Column: clause.Column{Name: distance, Raw: true}})
	}
}

// haversine returns the great-circle distance in km from (lat, lng) to
// locations.latitude/longitude. The coordinates are parsed floats and are
// inlined so the expression can also be used as an ORDER BY column.
func haversine(lat, lng float64) string {
	la := strconv.FormatFloat(lat, 'f', -1, 64)
	ln := strconv.FormatFloat(lng, 'f', -1, 64)
	return strconv.FormatFloat(2*earthRadiusKm, 'f', -1, 64) + " * asin(sqrt(LEAST(1.0, " +
		"power(sin(radians(locations.latitude - " + la + ") / 2), 2) + " +
		"cos(radians(" + la + ")) * cos(radians(locations.latitude)) * " +
		"power(sin(radians(locations.longitude - " + ln + ") / 2), 2))))"
}

// Facets filters by product attributes: a map of attribute name or slug to the values
// wanted. Every facet must match (AND); any value within a facet may match (OR).
// owner is the column the product_attribute_values rows point at.
func Facets(owner string) Handler {
	return func(db *gorm.DB, value any) *gorm.DB {
		facets, ok := asMap(value)
		if !ok {
			return db
		}

		names := make([]string, 0, len(facets))
		for name := range facets {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			values, ok := toStrings(facets[name])
			if !ok || len(values) == 0 {
				continue
			}
			db = db.Where(
				"EXISTS (SELECT 1 FROM product_attribute_values pav "+
					"JOIN attribute_values av ON av.id = pav.attribute_value_id "+
					"JOIN attributes a ON a.id = av.attribute_id "+
					"WHERE pav.product_id = "+owner+" "+
					"AND (a.slug = ? OR lower(a.name) = lower(?)) "+
					"AND (av.slug IN ? OR av.value IN ?))",
				name, name, values, values,
			)
		}
		return db
	}
}

func uuidValue(value any) (uuid.UUID, bool) {
	s, ok := stringValue(value)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
