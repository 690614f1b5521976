package services

import (
	"context"

	"github.com/ahmedellithy99/dukkan-backend-sub000/filters"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor is the authenticated user a service call is made on behalf of.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// exists runs SELECT EXISTS (subquery).
func exists(tx *gorm.DB, subquery string, args ...any) (bool, error) {
	var found bool
	err := tx.Raw("SELECT EXISTS ("+subquery+")", args...).Scan(&found).Error
	return found, err
}

// ensureExists returns ErrInvalidReference when no row of model has the given id.
func ensureExists(tx *gorm.DB, model any, id uuid.UUID) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrInvalidReference
	}
	return nil
}

// loadAttributeValues fetches the values for ids and fails with
// ErrInvalidReference when any id is unknown.
func loadAttributeValues(tx *gorm.DB, ids []uuid.UUID) ([]models.AttributeValue, error) {
	if len(ids) == 0 {
		return []models.AttributeValue{}, nil
	}
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var values []models.AttributeValue
	if err := tx.Where("id IN ?", ids).Find(&values).Error; err != nil {
		return nil, err
	}
	if len(values) != len(unique) {
		return nil, ErrInvalidReference.WithMessage("one or more attribute values do not exist")
	}
	return values, nil
}

// listResource is the filtered, paginated listing shared by the taxonomy and
// location services.
func listResource[T any](ctx context.Context, db *gorm.DB, spec *filters.Spec, params filters.Params, page utils.PageRequest, extra ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	query := filters.Apply(db.WithContext(ctx).Model(new(T)), spec, params)
	return utils.Paginate[T](spec.EnsureOrder(query), page, extra...)
}
