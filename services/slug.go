package services

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// uniqueSlug slugifies source and appends -2, -3, ... until the slug is free
// among the rows selected by query. query must already be bound to a model;
// exclude skips the row being renamed.
func uniqueSlug(query *gorm.DB, source string, exclude uuid.UUID) (string, error) {
	base := slug.Make(source)
	if base == "" {
		base = "item"
	}

	q := query.Where("slug = ? OR slug LIKE ?", base, base+"-%")
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}

	var taken []string
	if err := q.Pluck("slug", &taken).Error; err != nil {
		return "", err
	}
	return nextSlug(base, taken), nil
}

func nextSlug(base string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}
	if _, ok := used[base]; !ok {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}
