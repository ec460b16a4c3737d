// file: internals/features/materials/dto/material_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	materialModel "teep_backend/internals/features/materials/model"
)

type MaterialCreateDTO struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Quantity     int      `json:"quantity" validate:"min=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	PurchaseDate *string  `json:"purchase_date,omitempty"` // YYYY-MM-DD
}

type MaterialUpdateDTO struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Quantity     *int     `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	PurchaseDate *string  `json:"purchase_date,omitempty"`
}

type MaterialResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	Price        *float64  `json:"price,omitempty"`
	PurchaseDate *string   `json:"purchase_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToMaterialResponse(m materialModel.Material) MaterialResponse {
	resp := MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.PurchaseDate != nil {
		s := m.PurchaseDate.Format("2006-01-02")
		resp.PurchaseDate = &s
	}
	return resp
}

func ToMaterialResponses(ms []materialModel.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMaterialResponse(m))
	}
	return out
}
