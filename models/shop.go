package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop is a vendor storefront. Shops are soft-deleted and can be restored.
type Shop struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID      `json:"vendor_id" gorm:"type:uuid;not null;index"`
	LocationID  uuid.UUID      `json:"location_id" gorm:"type:uuid;not null;uniqueIndex"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null;index"`
	Slug        string         `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Phone       string         `json:"phone" gorm:"type:varchar(50)"`
	Whatsapp    string         `json:"whatsapp" gorm:"type:varchar(50)"`
	IsActive    bool           `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	Vendor   *User     `json:"vendor,omitempty" gorm:"foreignKey:VendorID;references:ID"`
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;references:ID"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:ShopID"`
}

func (Shop) TableName() string {
	return "shops"
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// OwnedBy reports whether the shop belongs to the given vendor.
func (s *Shop) OwnedBy(vendorID uuid.UUID) bool {
	return s.VendorID == vendorID
}

type CreateShopRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=255" example:"Corner Bakery"`
	Description string          `json:"description" binding:"max=5000"`
	Phone       string          `json:"phone" binding:"max=50" example:"+201000000000"`
	Whatsapp    string          `json:"whatsapp" binding:"max=50"`
	Location    LocationRequest `json:"location" binding:"required"`
}

type UpdateShopRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Whatsapp    *string `json:"whatsapp" binding:"omitempty,max=50"`
}

type ShopStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
