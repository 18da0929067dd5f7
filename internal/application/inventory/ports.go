package inventory

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa transação. Garante atomicidade para o motor de estoque: atualização
// da quantidade e criação da movimentação são confirmadas juntas ou descartadas juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
