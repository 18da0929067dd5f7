package repository

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

// MovementFilter filtros opcionais para o histórico de movimentações.
type MovementFilter struct {
	ItemID     string
	CategoryID string
	Limit      int
	Offset     int
}

// MovementWithItem linha do histórico enriquecida com nomes de item e categoria, para exibição.
type MovementWithItem struct {
	Movement     entity.StockMovement
	ItemName     string
	CategoryName string
	UnitMeasure  string
}

// StockMovementRepository define o porto de persistência do livro de movimentações.
// Append-only: não há Update nem Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	// History lista movimentações por data decrescente, com join de item e categoria.
	History(ctx context.Context, filter MovementFilter) ([]*MovementWithItem, error)
	// Count total de movimentações que casam com o filtro, ignorando a paginação.
	Count(ctx context.Context, filter MovementFilter) (int64, error)
	CountByItem(ctx context.Context, itemID string) (int64, error)
	// SumByItem soma entradas menos saídas do item (reconstrução do saldo para conferência).
	SumByItem(ctx context.Context, itemID string) (int64, error)
}
