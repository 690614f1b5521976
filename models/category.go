package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Slug      string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Subcategories []Subcategory `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type Subcategory struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;uniqueIndex:idx_subcategories_category_slug"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Slug       string    `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_subcategories_category_slug"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255" example:"Food"`
}

type SubcategoryRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Name       string    `json:"name" binding:"required,min=2,max=255" example:"Bakery"`
}
