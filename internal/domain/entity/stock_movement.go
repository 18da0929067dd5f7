package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementTypeIn  = "entrada" // entrada
	MovementTypeOut = "saida"   // saída
)

// ValidMovementType informa se o tipo é um dos dois aceitos pelo motor.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// StockMovement representa uma movimentação de estoque (registro de auditoria).
// Append-only: criada exatamente uma vez pelo motor, nunca alterada nem excluída.
type StockMovement struct {
	ID          string
	ItemID      string
	Type        string // entrada, saida
	Quantity    int64  // invariante: > 0
	Responsible string // identidade de quem registrou
	OccurredAt  time.Time
}
