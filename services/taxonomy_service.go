package services

import (
	"context"
	"errors"

	category_cache "github.com/ahmedellithy99/dukkan-backend-sub000/cache"
	"github.com/ahmedellithy99/dukkan-backend-sub000/filters"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaxonomyService manages categories and subcategories.
type TaxonomyService struct {
	db   *gorm.DB
	log  *zap.Logger
	tree *category_cache.Tree
}

func NewTaxonomyService(db *gorm.DB, log *zap.Logger) *TaxonomyService {
	return &TaxonomyService{db: db, log: log, tree: category_cache.New(category_cache.TTL)}
}

type CategoryNode struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

func (s *TaxonomyService) ListCategories(ctx context.Context, params filters.Params, page utils.PageRequest) ([]models.Category, int64, error) {
	return listResource[models.Category](ctx, s.db, filters.Categories, params, page)
}

// Tree returns every category with its subcategories and active product count.
// Results are cached until a taxonomy write or the TTL.
func (s *TaxonomyService) Tree(ctx context.Context) ([]CategoryNode, error) {
	categories, counts, ok := s.tree.Get()
	if !ok {
		var err error
		categories, counts, err = s.loadTree(ctx)
		if err != nil {
			return nil, err
		}
		s.tree.Set(categories, counts)
	}

	nodes := make([]CategoryNode, len(categories))
	for i, c := range categories {
		nodes[i] = CategoryNode{Category: c, ProductCount: counts[c.ID.String()]}
	}
	return nodes, nil
}

func (s *TaxonomyService) loadTree(ctx context.Context) ([]models.Category, map[string]int64, error) {
	db := s.db.WithContext(ctx)

	var categories []models.Category
	err := db.Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
		return db.Order("subcategories.name")
	}).Order("categories.name").Find(&categories).Error
	if err != nil {
		return nil, nil, err
	}

	var rows []struct {
		CategoryID uuid.UUID
		Count      int64
	}
	err = db.Model(&models.Product{}).
		Scopes(ActiveProducts).
		Select("subcategories.category_id AS category_id, COUNT(products.id) AS count").
		Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
		Group("subcategories.category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID.String()] = r.Count
	}
	return categories, counts, nil
}

func (s *TaxonomyService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Preload("Subcategories").First(&category, "id = ?", id).Error
	if err != nil {
		return nil, translateStoreError(err)
	}
	return &category, nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug, err := uniqueSlug(tx.Model(&models.Category{}), req.Name, uuid.Nil)
		if err != nil {
			return err
		}
		category.Slug = slug
		return tx.Create(category).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	s.tree.Invalidate()
	return category, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}
		if req.Name == category.Name {
			return nil
		}
		slug, err := uniqueSlug(tx.Model(&models.Category{}), req.Name, category.ID)
		if err != nil {
			return err
		}
		return tx.Model(&category).Updates(map[string]any{"name": req.Name, "slug": slug}).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	s.tree.Invalidate()
	return &category, nil
}

// DeleteCategory removes a category and its subcategories. It fails with
// ErrCategoryInUse while any product sits in one of those subcategories.
func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}

		inUse, err := exists(tx,
			"SELECT 1 FROM products JOIN subcategories ON subcategories.id = products.subcategory_id "+
				"WHERE subcategories.category_id = ?", id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrCategoryInUse
		}

		if err := tx.Where("category_id = ?", id).Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		// a product was added between the check and the delete
		err = ErrCategoryInUse
	}
	if err != nil {
		return translateStoreError(err)
	}

	s.tree.Invalidate()
	s.log.Info("category deleted", zap.String("category_id", id.String()))
	return nil
}

func (s *TaxonomyService) ListSubcategories(ctx context.Context, params filters.Params, page utils.PageRequest) ([]models.Subcategory, int64, error) {
	return listResource[models.Subcategory](ctx, s.db, filters.Subcategories, params, page)
}

func (s *TaxonomyService) GetSubcategory(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	var sub models.Subcategory
	if err := s.db.WithContext(ctx).Preload("Category").First(&sub, "id = ?", id).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &sub, nil
}

func (s *TaxonomyService) CreateSubcategory(ctx context.Context, req models.SubcategoryRequest) (*models.Subcategory, error) {
	sub := &models.Subcategory{CategoryID: req.CategoryID, Name: req.Name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Category{}, req.CategoryID); err != nil {
			return err
		}
		slug, err := uniqueSlug(tx.Model(&models.Subcategory{}).Where("category_id = ?", req.CategoryID), req.Name, uuid.Nil)
		if err != nil {
			return err
		}
		sub.Slug = slug
		return tx.Create(sub).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	s.tree.Invalidate()
	return sub, nil
}

// UpdateSubcategory renames a subcategory or moves it to another category.
func (s *TaxonomyService) UpdateSubcategory(ctx context.Context, id uuid.UUID, req models.SubcategoryRequest) (*models.Subcategory, error) {
	var sub models.Subcategory
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "id = ?", id).Error; err != nil {
			return err
		}
		if req.Name == sub.Name && req.CategoryID == sub.CategoryID {
			return nil
		}
		if req.CategoryID != sub.CategoryID {
			if err := ensureExists(tx, &models.Category{}, req.CategoryID); err != nil {
				return err
			}
		}
		slug, err := uniqueSlug(tx.Model(&models.Subcategory{}).Where("category_id = ?", req.CategoryID), req.Name, sub.ID)
		if err != nil {
			return err
		}
		return tx.Model(&sub).Updates(map[string]any{
			"name":        req.Name,
			"slug":        slug,
			"category_id": req.CategoryID,
		}).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	s.tree.Invalidate()
	return &sub, nil
}

// DeleteSubcategory fails with ErrSubcategoryInUse while it has products.
func (s *TaxonomyService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub models.Subcategory
		if err := tx.First(&sub, "id = ?", id).Error; err != nil {
			return err
		}
		inUse, err := exists(tx, "SELECT 1 FROM products WHERE products.subcategory_id = ?", id)
		if err != nil {
			return err
		}
		if inUse {
			return ErrSubcategoryInUse
		}
		return tx.Delete(&sub).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		err = ErrSubcategoryInUse
	}
	if err != nil {
		return translateStoreError(err)
	}
	s.tree.Invalidate()
	return nil
}
