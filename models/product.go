package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount"
)

// Product belongs to one shop and one subcategory. Products are hard-deleted.
type Product struct {
	ID            uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	ShopID        uuid.UUID        `json:"shop_id" gorm:"type:uuid;not null;uniqueIndex:idx_products_shop_slug"`
	SubcategoryID uuid.UUID        `json:"subcategory_id" gorm:"type:uuid;not null;index"`
	Name          string           `json:"name" gorm:"type:varchar(255);not null;index"`
	Slug          string           `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_products_shop_slug"`
	Description   string           `json:"description" gorm:"type:text"`
	Price         *decimal.Decimal `json:"price" gorm:"type:numeric(10,2);check:price >= 0;index"`
	DiscountType  *DiscountType    `json:"discount_type" gorm:"type:varchar(10);check:discount_type IN ('percent', 'amount')"`
	DiscountValue *decimal.Decimal `json:"discount_value" gorm:"type:numeric(10,2);check:discount_value >= 0"`
	StockQuantity int              `json:"stock_quantity" gorm:"not null;default:0"`
	IsActive      bool             `json:"is_active" gorm:"not null;index"`
	CreatedAt     time.Time        `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Shop            *Shop            `json:"shop,omitempty" gorm:"foreignKey:ShopID;references:ID;constraint:OnDelete:CASCADE"`
	Subcategory     *Subcategory     `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID;references:ID;constraint:OnDelete:RESTRICT"`
	AttributeValues []AttributeValue `json:"attribute_values,omitempty" gorm:"many2many:product_attribute_values;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ProductResponse adds the derived pricing and stock state to a product.
type ProductResponse struct {
	Product
	DiscountedPrice *decimal.Decimal `json:"discounted_price"`
	SavingsAmount   *decimal.Decimal `json:"savings_amount"`
	HasDiscount     bool             `json:"has_discount"`
	InStock         bool             `json:"in_stock"`
	LowStock        bool             `json:"low_stock"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		Product:         *p,
		DiscountedPrice: p.DiscountedPrice(),
		SavingsAmount:   p.SavingsAmount(),
		HasDiscount:     p.HasDiscount(),
		InStock:         p.IsInStock(),
		LowStock:        p.IsLowStock(),
	}
}

func ProductResponses(products []Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = products[i].ToResponse()
	}
	return out
}

type DiscountRequest struct {
	Type  DiscountType    `json:"type" binding:"required,oneof=percent amount" example:"percent"`
	Value decimal.Decimal `json:"value" swaggertype:"number" example:"15"`
}

type CreateProductRequest struct {
	SubcategoryID     uuid.UUID        `json:"subcategory_id" binding:"required"`
	Name              string           `json:"name" binding:"required,min=2,max=255" example:"Sourdough Loaf"`
	Description       string           `json:"description" binding:"max=10000"`
	Price             *decimal.Decimal `json:"price" swaggertype:"number" example:"45.50"`
	StockQuantity     int              `json:"stock_quantity" binding:"min=0" example:"20"`
	IsActive          *bool            `json:"is_active"`
	Discount          *DiscountRequest `json:"discount"`
	AttributeValueIDs []uuid.UUID      `json:"attribute_value_ids"`
}

type UpdateProductRequest struct {
	SubcategoryID *uuid.UUID       `json:"subcategory_id"`
	Name          *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Description   *string          `json:"description" binding:"omitempty,max=10000"`
	Price         *decimal.Decimal `json:"price" swaggertype:"number"`
	IsActive      *bool            `json:"is_active"`
}

type StockOperation string

const (
	StockSet       StockOperation = "set"
	StockIncrement StockOperation = "increment"
	StockDecrement StockOperation = "decrement"
)

type StockRequest struct {
	Operation StockOperation `json:"operation" binding:"required,oneof=set increment decrement" example:"decrement"`
	Quantity  int            `json:"quantity" binding:"min=0" example:"3"`
}

type ProductAttributesRequest struct {
	AttributeValueIDs []uuid.UUID `json:"attribute_value_ids" binding:"required"`
}
