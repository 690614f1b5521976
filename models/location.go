package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Governorate is the top level of the location hierarchy.
type Governorate struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Cities []City `json:"cities,omitempty" gorm:"foreignKey:GovernorateID;constraint:OnDelete:RESTRICT"`
}

func (Governorate) TableName() string {
	return "governorates"
}

func (g *Governorate) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type City struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GovernorateID uuid.UUID `json:"governorate_id" gorm:"type:uuid;not null;uniqueIndex:idx_cities_governorate_slug"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	Slug          string    `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_cities_governorate_slug"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Governorate *Governorate `json:"governorate,omitempty" gorm:"foreignKey:GovernorateID;references:ID"`
}

func (City) TableName() string {
	return "cities"
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// Location pins a shop to a city and a point on the map.
type Location struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CityID    uuid.UUID `json:"city_id" gorm:"type:uuid;not null;index"`
	Area      string    `json:"area" gorm:"type:varchar(255)"`
	Latitude  float64   `json:"latitude" gorm:"type:double precision;not null;check:latitude BETWEEN -90 AND 90"`
	Longitude float64   `json:"longitude" gorm:"type:double precision;not null;check:longitude BETWEEN -180 AND 180"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	City *City `json:"city,omitempty" gorm:"foreignKey:CityID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (Location) TableName() string {
	return "locations"
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type GovernorateRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255" example:"Cairo"`
}

type CityRequest struct {
	GovernorateID uuid.UUID `json:"governorate_id" binding:"required"`
	Name          string    `json:"name" binding:"required,min=2,max=255" example:"Nasr City"`
}

type LocationRequest struct {
	CityID    uuid.UUID `json:"city_id" binding:"required"`
	Area      string    `json:"area" binding:"max=255" example:"7th District"`
	Latitude  *float64  `json:"latitude" binding:"required,gte=-90,lte=90" example:"30.0561"`
	Longitude *float64  `json:"longitude" binding:"required,gte=-180,lte=180" example:"31.3301"`
}
