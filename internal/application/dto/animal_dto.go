package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAnimalRequest body para POST /api/animals.
type CreateAnimalRequest struct {
	Name           string          `json:"name"`
	Species        string          `json:"species"`
	Breed          string          `json:"breed,omitempty"`
	Sex            string          `json:"sex"`
	BirthDate      time.Time       `json:"birth_date"`
	Identification string          `json:"identification,omitempty"`
	Purpose        string          `json:"purpose,omitempty"`
	InitialWeight  decimal.Decimal `json:"initial_weight,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	AcquiredAt     *time.Time      `json:"acquired_at,omitempty"`
	Origin         string          `json:"origin,omitempty"`
	PurchaseValue  decimal.Decimal `json:"purchase_value,omitempty"`
}

// UpdateAnimalRequest body para PUT /api/animals/:id. Campos nulos não são alterados.
type UpdateAnimalRequest struct {
	Name          *string          `json:"name,omitempty"`
	Breed         *string          `json:"breed,omitempty"`
	Purpose       *string          `json:"purpose,omitempty"`
	InitialWeight *decimal.Decimal `json:"initial_weight,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Origin        *string          `json:"origin,omitempty"`
	PurchaseValue *decimal.Decimal `json:"purchase_value,omitempty"`
}

// AnimalResponse animal em respostas.
type AnimalResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Species        string          `json:"species"`
	Breed          string          `json:"breed,omitempty"`
	Sex            string          `json:"sex"`
	BirthDate      time.Time       `json:"birth_date"`
	Identification string          `json:"identification,omitempty"`
	Purpose        string          `json:"purpose,omitempty"`
	InitialWeight  decimal.Decimal `json:"initial_weight"`
	Notes          string          `json:"notes,omitempty"`
	AcquiredAt     *time.Time      `json:"acquired_at,omitempty"`
	Origin         string          `json:"origin,omitempty"`
	PurchaseValue  decimal.Decimal `json:"purchase_value"`
	CreatedAt      time.Time       `json:"created_at"`
}
