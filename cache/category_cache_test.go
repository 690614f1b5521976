package category_cache

import (
	"testing"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/stretchr/testify/assert"
)

func TestTreeExpiresAndInvalidates(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tree := New(TTL)
	tree.now = func() time.Time { return current }

	_, _, ok := tree.Get()
	assert.False(t, ok)

	tree.Set([]models.Category{{Name: "Food"}}, map[string]int64{"food": 3})
	cats, counts, ok := tree.Get()
	assert.True(t, ok)
	assert.Len(t, cats, 1)
	assert.Equal(t, int64(3), counts["food"])

	current = current.Add(TTL - time.Second)
	_, _, ok = tree.Get()
	assert.True(t, ok)

	current = current.Add(time.Second)
	_, _, ok = tree.Get()
	assert.False(t, ok)

	tree.Set(nil, nil)
	_, _, ok = tree.Get()
	assert.True(t, ok, "an empty tree is still a cached tree")

	tree.Invalidate()
	_, _, ok = tree.Get()
	assert.False(t, ok)
}

func TestNewFallsBackToDefaultTTL(t *testing.T) {
	assert.Equal(t, TTL, New(0).ttl)
	assert.Equal(t, time.Minute, New(time.Minute).ttl)
}
