package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ItemID      string `json:"item_id"`
	Type        string `json:"type"` // entrada | saida
	Quantity    int64  `json:"quantity"`
	Responsible string `json:"responsible"`
}

// MovementResultResponse resultado de uma movimentação aceita.
type MovementResultResponse struct {
	MovementID  string `json:"movement_id"`
	ItemID      string `json:"item_id"`
	NewQuantity int64  `json:"new_quantity"`
}

// RecountRequest body para POST /api/items/:id/recount (ajuste administrativo).
type RecountRequest struct {
	CountedQuantity int64  `json:"counted_quantity"`
	Responsible     string `json:"responsible"`
}

// MovementHistoryEntry linha do histórico, já com nomes de item e categoria.
type MovementHistoryEntry struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	CategoryName string    `json:"category_name"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	UnitMeasure  string    `json:"unit_measure"`
	Responsible  string    `json:"responsible"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// MovementHistoryResponse listagem paginada do histórico.
type MovementHistoryResponse struct {
	Movements []MovementHistoryEntry `json:"movements"`
	Total     int                    `json:"total"`
}
