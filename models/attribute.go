package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attribute is a filterable facet such as "Color" or "Size".
type Attribute struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Values []AttributeValue `json:"values,omitempty" gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

func (Attribute) TableName() string {
	return "attributes"
}

func (a *Attribute) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type AttributeValue struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AttributeID uuid.UUID `json:"attribute_id" gorm:"type:uuid;not null;uniqueIndex:idx_attribute_values_attribute_value"`
	Value       string    `json:"value" gorm:"type:varchar(255);not null;uniqueIndex:idx_attribute_values_attribute_value"`
	Slug        string    `json:"slug" gorm:"type:varchar(255);not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Attribute *Attribute `json:"attribute,omitempty" gorm:"foreignKey:AttributeID;references:ID"`
}

func (AttributeValue) TableName() string {
	return "attribute_values"
}

func (v *AttributeValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type AttributeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Color"`
}

type AttributeValueRequest struct {
	Value string `json:"value" binding:"required,min=1,max=255" example:"Red"`
}
