// file: internals/features/materials/model/material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Material is an inventory item (balls, grips, strings...).
type Material struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:ix_materials_user"`
	Name         string     `json:"name" gorm:"type:varchar(100);not null"`
	Quantity     int        `json:"quantity" gorm:"not null;default:0"`
	Price        *float64   `json:"price,omitempty" gorm:"type:numeric(10,2)"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty" gorm:"type:date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Material) TableName() string { return "materials" }
