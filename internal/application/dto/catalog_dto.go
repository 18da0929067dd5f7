package dto

import "time"

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoria em respostas.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateItemRequest body para POST /api/items.
// InitialQuantity é o saldo de abertura do livro; depois disso a quantidade
// só muda via movimentações.
type CreateItemRequest struct {
	Name            string `json:"name"`
	CategoryID      string `json:"category_id"`
	UnitMeasure     string `json:"unit_measure"`
	InitialQuantity int64  `json:"initial_quantity"`
	QuantityMin     int64  `json:"quantity_min"`
	QuantityMax     int64  `json:"quantity_max"`
	Location        string `json:"location,omitempty"`
	Description     string `json:"description,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nulos não são alterados.
// Não existe campo de quantidade: quantity_current pertence ao motor de movimentações.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	UnitMeasure *string `json:"unit_measure,omitempty"`
	QuantityMin *int64  `json:"quantity_min,omitempty"`
	QuantityMax *int64  `json:"quantity_max,omitempty"`
	Location    *string `json:"location,omitempty"`
	Active      *bool   `json:"active,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ItemResponse item em respostas.
type ItemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CategoryID      string    `json:"category_id"`
	UnitMeasure     string    `json:"unit_measure"`
	QuantityCurrent int64     `json:"quantity_current"`
	QuantityMin     int64     `json:"quantity_min"`
	QuantityMax     int64     `json:"quantity_max"`
	Location        string    `json:"location,omitempty"`
	Active          bool      `json:"active"`
	Description     string    `json:"description,omitempty"`
	LowStock        bool      `json:"low_stock"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ItemListResponse listagem de itens.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
