package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrItemNotFound        = errors.New("item não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("quantidade inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConflict            = errors.New("conflito com o estado atual")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
	ErrConcurrencyConflict = errors.New("conflito de concorrência, tente novamente")
	ErrHasMovements        = errors.New("item possui movimentações registradas")
)

// InsufficientStockError carrega as quantidades envolvidas na recusa de uma saída,
// para que o chamador exiba o motivo exato ("Estoque insuficiente! Atual: 7, Solicitado: 15").
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente: atual %d, solicitado %d", e.Current, e.Requested)
}

// Is permite errors.Is(err, domain.ErrInsufficientStock) sobre o erro estruturado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
