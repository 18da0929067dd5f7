package repository

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

// ItemFilter filtros opcionais para listagem de itens.
type ItemFilter struct {
	CategoryID string
	Active     *bool
	LowStock   bool // quantity_current <= quantity_min
	Limit      int
	Offset     int
}

// ItemRepository define o porto de persistência para Item (DIP).
//
// QuantityCurrent tem dois caminhos de escrita distintos de propósito:
// UpdateQuantity (usado só pelo motor de movimentações, dentro de transação)
// e o valor inicial em Create. Update nunca toca a quantidade.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// GetForUpdate bloqueia a linha do item (SELECT FOR UPDATE) dentro da transação corrente.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
