package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmedellithy99/dukkan-backend-sub000/filters"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttributeService manages facets and their values.
type AttributeService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAttributeService(db *gorm.DB, log *zap.Logger) *AttributeService {
	return &AttributeService{db: db, log: log}
}

func preloadValues(db *gorm.DB) *gorm.DB {
	return db.Preload("Values", func(db *gorm.DB) *gorm.DB {
		return db.Order("attribute_values.value")
	})
}

func (s *AttributeService) List(ctx context.Context, params filters.Params, page utils.PageRequest) ([]models.Attribute, int64, error) {
	return listResource[models.Attribute](ctx, s.db, filters.Attributes, params, page, preloadValues)
}

func (s *AttributeService) Get(ctx context.Context, id uuid.UUID) (*models.Attribute, error) {
	var attribute models.Attribute
	if err := preloadValues(s.db.WithContext(ctx)).First(&attribute, "id = ?", id).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &attribute, nil
}

func (s *AttributeService) Create(ctx context.Context, req models.AttributeRequest) (*models.Attribute, error) {
	attribute := &models.Attribute{Name: strings.TrimSpace(req.Name)}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug, err := uniqueSlug(tx.Model(&models.Attribute{}), attribute.Name, uuid.Nil)
		if err != nil {
			return err
		}
		attribute.Slug = slug
		return tx.Create(attribute).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return attribute, nil
}

func (s *AttributeService) Update(ctx context.Context, id uuid.UUID, req models.AttributeRequest) (*models.Attribute, error) {
	name := strings.TrimSpace(req.Name)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attribute models.Attribute
		if err := tx.First(&attribute, "id = ?", id).Error; err != nil {
			return err
		}
		if name == attribute.Name {
			return nil
		}
		slug, err := uniqueSlug(tx.Model(&models.Attribute{}), name, attribute.ID)
		if err != nil {
			return err
		}
		return tx.Model(&attribute).Updates(map[string]any{"name": name, "slug": slug}).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return s.Get(ctx, id)
}

// Delete fails with ErrAttributeInUse while any product carries one of its values.
func (s *AttributeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attribute models.Attribute
		if err := tx.First(&attribute, "id = ?", id).Error; err != nil {
			return err
		}
		inUse, err := exists(tx,
			"SELECT 1 FROM product_attribute_values pav JOIN attribute_values av ON av.id = pav.attribute_value_id "+
				"WHERE av.attribute_id = ?", id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrAttributeInUse
		}
		if err := tx.Where("attribute_id = ?", id).Delete(&models.AttributeValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&attribute).Error
	})
	return translateStoreError(err)
}

func (s *AttributeService) ListValues(ctx context.Context, params filters.Params, page utils.PageRequest) ([]models.AttributeValue, int64, error) {
	return listResource[models.AttributeValue](ctx, s.db, filters.AttributeValues, params, page)
}

// AddValue fails with ErrDuplicateAttributeValue when the attribute already has value.
func (s *AttributeService) AddValue(ctx context.Context, attributeID uuid.UUID, req models.AttributeValueRequest) (*models.AttributeValue, error) {
	value := &models.AttributeValue{AttributeID: attributeID, Value: strings.TrimSpace(req.Value)}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Attribute{}, "id = ?", attributeID).Error; err != nil {
			return err
		}
		if err := ensureValueFree(tx, attributeID, value.Value, uuid.Nil); err != nil {
			return err
		}
		slug, err := uniqueSlug(tx.Model(&models.AttributeValue{}).Where("attribute_id = ?", attributeID), value.Value, uuid.Nil)
		if err != nil {
			return err
		}
		value.Slug = slug
		return tx.Create(value).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrDuplicateAttributeValue
	}
	if err != nil {
		return nil, translateStoreError(err)
	}
	return value, nil
}

func (s *AttributeService) UpdateValue(ctx context.Context, id uuid.UUID, req models.AttributeValueRequest) (*models.AttributeValue, error) {
	var value models.AttributeValue
	newValue := strings.TrimSpace(req.Value)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&value, "id = ?", id).Error; err != nil {
			return err
		}
		if newValue == value.Value {
			return nil
		}
		if err := ensureValueFree(tx, value.AttributeID, newValue, value.ID); err != nil {
			return err
		}
		slug, err := uniqueSlug(tx.Model(&models.AttributeValue{}).Where("attribute_id = ?", value.AttributeID), newValue, value.ID)
		if err != nil {
			return err
		}
		return tx.Model(&value).Updates(map[string]any{"value": newValue, "slug": slug}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrDuplicateAttributeValue
	}
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &value, nil
}

// DeleteValue fails with ErrAttributeInUse while products carry the value.
func (s *AttributeService) DeleteValue(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var value models.AttributeValue
		if err := tx.First(&value, "id = ?", id).Error; err != nil {
			return err
		}
		inUse, err := exists(tx, "SELECT 1 FROM product_attribute_values WHERE attribute_value_id = ?", id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrAttributeInUse.WithMessage("attribute value is assigned to products and cannot be deleted")
		}
		return tx.Delete(&value).Error
	})
	return translateStoreError(err)
}

func ensureValueFree(tx *gorm.DB, attributeID uuid.UUID, value string, exclude uuid.UUID) error {
	q := tx.Model(&models.AttributeValue{}).Where("attribute_id = ? AND lower(value) = lower(?)", attributeID, value)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateAttributeValue
	}
	return nil
}
