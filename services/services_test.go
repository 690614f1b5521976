package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNextSlug(t *testing.T) {
	assert.Equal(t, "bakery", nextSlug("bakery", nil))
	assert.Equal(t, "bakery", nextSlug("bakery", []string{"bakery-2"}))
	assert.Equal(t, "bakery-2", nextSlug("bakery", []string{"bakery"}))
	assert.Equal(t, "bakery-4", nextSlug("bakery", []string{"bakery", "bakery-2", "bakery-3", "bakery-shop"}))
}

func TestDomainErrorMatching(t *testing.T) {
	custom := ErrAttributeInUse.WithMessage("value is in use")
	assert.ErrorIs(t, custom, ErrAttributeInUse)
	assert.NotErrorIs(t, custom, ErrCategoryInUse)

	wrapped := fmt.Errorf("delete category: %w", ErrCategoryInUse)
	de, ok := AsDomainError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "CATEGORY_IN_USE", de.Code)
	assert.Equal(t, 409, de.Status)

	_, ok = AsDomainError(errors.New("boom"))
	assert.False(t, ok)

	assert.Equal(t, 403, ErrLocationAccessDenied.Status)
	assert.Equal(t, "SUBCATEGORY_IN_USE", ErrSubcategoryInUse.Code)
}

func TestTranslateStoreError(t *testing.T) {
	assert.NoError(t, translateStoreError(nil))
	assert.ErrorIs(t, translateStoreError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translateStoreError(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)), ErrDuplicate)
	assert.ErrorIs(t, translateStoreError(gorm.ErrForeignKeyViolated), ErrInvalidReference)
	assert.ErrorIs(t, translateStoreError(ErrCategoryInUse), ErrCategoryInUse)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateStoreError(other))
}

func TestJWTRoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	user := &models.User{ID: uuid.Must(uuid.NewV7()), Email: "vendor@dukkan.test", Role: models.RoleVendor}
	token, expiresAt, err := svc.Generate(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleVendor, claims.Role)

	actor, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.ID)
	assert.False(t, actor.IsAdmin())
}

func TestJWTRejectsTamperedAndExpired(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Minute)
	require.NoError(t, err)
	user := &models.User{ID: uuid.Must(uuid.NewV7()), Email: "admin@dukkan.test", Role: models.RoleAdmin}

	token, _, err := svc.Generate(user)
	require.NoError(t, err)

	other, err := NewJWTService("another-secret", time.Minute)
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.Error(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = svc.Verify(token)
	assert.Error(t, err)

	_, err = NewJWTService("", time.Minute)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "correct horse"))
	assert.False(t, VerifyPassword(hash, "wrong horse"))
}
