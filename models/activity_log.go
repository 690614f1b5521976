package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records a mutating request made by an admin or vendor.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_activity_user_date,sort:desc"`
	UserRole     Role           `json:"user_role" gorm:"type:varchar(20);not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_shop, deleted_category, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // shop, product, category
	ResourceID   string         `json:"resource_id" gorm:"index"`
	Metadata     datatypes.JSON `json:"metadata" gorm:"type:jsonb"`
	Status       string         `json:"status" gorm:"not null"`
	ErrorMessage string         `json:"error_message,omitempty"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_user_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

type ActivityLogResponse struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	UserRole     Role           `json:"user_role"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Metadata     map[string]any `json:"metadata"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (al *ActivityLog) ToResponse() ActivityLogResponse {
	metadata := make(map[string]any)
	if al.Metadata != nil {
		_ = json.Unmarshal(al.Metadata, &metadata)
	}

	return ActivityLogResponse{
		ID:           al.ID,
		UserID:       al.UserID,
		UserRole:     al.UserRole,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		Metadata:     metadata,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		UserAgent:    al.UserAgent,
		CreatedAt:    al.CreatedAt,
	}
}

const (
	ResourceTypeShop           = "shop"
	ResourceTypeProduct        = "product"
	ResourceTypeCategory       = "category"
	ResourceTypeSubcategory    = "subcategory"
	ResourceTypeAttribute      = "attribute"
	ResourceTypeAttributeValue = "attribute_value"
	ResourceTypeGovernorate    = "governorate"
	ResourceTypeCity           = "city"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
