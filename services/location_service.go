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
)

// LocationService manages governorates and cities.
type LocationService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLocationService(db *gorm.DB, log *zap.Logger) *LocationService {
	return &LocationService{db: db, log: log}
}

func (s *LocationService) ListGovernorates(ctx context.Context, params filters.Params, page utils.PageRequest) ([]models.Governorate, int64, error) {
	return listResource[models.Governorate](ctx, s.db, filters.Governorates, params, page)
}

func (s *LocationService) CreateGovernorate(ctx context.Context, req models.GovernorateRequest) (*models.Governorate, error) {
	governorate := &models.Governorate{Name: req.Name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug, err := uniqueSlug(tx.Model(&models.Governorate{}), req.Name, uuid.Nil)
		if err != nil {
			return err
		}
		governorate.Slug = slug
		return tx.Create(governorate).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return governorate, nil
}

func (s *LocationService) UpdateGovernorate(ctx context.Context, id uuid.UUID, req models.GovernorateRequest) (*models.Governorate, error) {
	var governorate models.Governorate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&governorate, "id = ?", id).Error; err != nil {
			return err
		}
		if req.Name == governorate.Name {
			return nil
		}
		slug, err := uniqueSlug(tx.Model(&models.Governorate{}), req.Name, governorate.ID)
		if err != nil {
			return err
		}
		return tx.Model(&governorate).Updates(map[string]any{"name": req.Name, "slug": slug}).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &governorate, nil
}

// DeleteGovernorate removes a governorate and its cities. It fails with
// ErrLocationInUse while any shop is located in one of those cities.
func (s *LocationService) DeleteGovernorate(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var governorate models.Governorate
		if err := tx.First(&governorate, "id = ?", id).Error; err != nil {
			return err
		}
		inUse, err := exists(tx,
			"SELECT 1 FROM locations JOIN cities ON cities.id = locations.city_id WHERE cities.governorate_id = ?", id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrLocationInUse
		}
		if err := tx.Where("governorate_id = ?", id).Delete(&models.City{}).Error; err != nil {
			return err
		}
		return tx.Delete(&governorate).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		err = ErrLocationInUse
	}
	return translateStoreError(err)
}

func (s *LocationService) ListCities(ctx context.Context, params filters.Params, page utils.PageRequest) ([]models.City, int64, error) {
	return listResource[models.City](ctx, s.db, filters.Cities, params, page, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Governorate")
	})
}

func (s *LocationService) CreateCity(ctx context.Context, req models.CityRequest) (*models.City, error) {
	city := &models.City{GovernorateID: req.GovernorateID, Name: req.Name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Governorate{}, req.GovernorateID); err != nil {
			return err
		}
		slug, err := uniqueSlug(tx.Model(&models.City{}).Where("governorate_id = ?", req.GovernorateID), req.Name, uuid.Nil)
		if err != nil {
			return err
		}
		city.Slug = slug
		return tx.Create(city).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return city, nil
}

func (s *LocationService) UpdateCity(ctx context.Context, id uuid.UUID, req models.CityRequest) (*models.City, error) {
	var city models.City
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&city, "id = ?", id).Error; err != nil {
			return err
		}
		if req.Name == city.Name && req.GovernorateID == city.GovernorateID {
			return nil
		}
		if req.GovernorateID != city.GovernorateID {
			if err := ensureExists(tx, &models.Governorate{}, req.GovernorateID); err != nil {
				return err
			}
		}
		slug, err := uniqueSlug(tx.Model(&models.City{}).Where("governorate_id = ?", req.GovernorateID), req.Name, city.ID)
		if err != nil {
			return err
		}
		return tx.Model(&city).Updates(map[string]any{
			"name":           req.Name,
			"slug":           slug,
			"governorate_id": req.GovernorateID,
		}).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &city, nil
}

// DeleteCity fails with ErrLocationInUse while shops are located in it.
func (s *LocationService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var city models.City
		if err := tx.First(&city, "id = ?", id).Error; err != nil {
			return err
		}
		inUse, err := exists(tx, "SELECT 1 FROM locations WHERE locations.city_id = ?", id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrLocationInUse
		}
		return tx.Delete(&city).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		err = ErrLocationInUse
	}
	return translateStoreError(err)
}
