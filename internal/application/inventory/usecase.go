package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// RegisterMovementUseCase é o motor do livro de estoque: o único caminho autorizado
// para alterar quantity_current e o único escritor de stock_movements.
//
// Cada movimentação roda em uma transação com bloqueio de linha (SELECT FOR UPDATE),
// de forma que duas saídas concorrentes sobre o mesmo item nunca passem juntas pela
// checagem de saldo. Itens diferentes bloqueiam linhas diferentes e não se atrapalham.
// Falhas de negócio (estoque insuficiente) são resultado legítimo, devolvidas ao
// chamador sem retry.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase constrói o motor.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar uma movimentação.
type MovementInput struct {
	ItemID      string
	Type        string // entrada | saida
	Quantity    int64
	Responsible string
}

// MovementResult resultado de uma movimentação aceita.
type MovementResult struct {
	MovementID  string
	NewQuantity int64
}

// RegisterMovement valida e aplica uma movimentação.
//
// Ordem das pré-condições: item existe (ErrItemNotFound) → quantidade positiva
// (ErrInvalidQuantity) → saldo suficiente para saída (InsufficientStockError).
// Em qualquer falha nada é persistido.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if !entity.ValidMovementType(input.Type) || input.Responsible == "" {
		return nil, domain.ErrInvalidInput
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloqueia a linha do item até o commit: serializa movimentações do mesmo item.
		item, err := itemRepo.GetForUpdate(ctx, input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if input.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}

		newQuantity := item.QuantityCurrent
		switch input.Type {
		case entity.MovementTypeIn:
			newQuantity += input.Quantity
		case entity.MovementTypeOut:
			if item.QuantityCurrent < input.Quantity {
				return &domain.InsufficientStockError{
					Current:   item.QuantityCurrent,
					Requested: input.Quantity,
				}
			}
			newQuantity -= input.Quantity
		}

		if err := itemRepo.UpdateQuantity(ctx, item.ID, newQuantity); err != nil {
			return err
		}
		movement := &entity.StockMovement{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Responsible: input.Responsible,
			OccurredAt:  time.Now(),
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}
		result = MovementResult{MovementID: movement.ID, NewQuantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Recount ajuste administrativo: recebe a quantidade contada fisicamente e emite a
// movimentação corretiva correspondente (entrada se faltava, saída se sobrava), de
// modo que o livro continue reconstruindo o saldo. Delta zero não gera movimentação.
func (uc *RegisterMovementUseCase) Recount(ctx context.Context, itemID string, countedQuantity int64, responsible string) (*MovementResult, error) {
	if responsible == "" {
		return nil, domain.ErrInvalidInput
	}
	if countedQuantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		delta := countedQuantity - item.QuantityCurrent
		if delta == 0 {
			result = MovementResult{NewQuantity: item.QuantityCurrent}
			return nil
		}
		movementType := entity.MovementTypeIn
		quantity := delta
		if delta < 0 {
			movementType = entity.MovementTypeOut
			quantity = -delta
		}

		if err := itemRepo.UpdateQuantity(ctx, item.ID, countedQuantity); err != nil {
			return err
		}
		movement := &entity.StockMovement{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Type:        movementType,
			Quantity:    quantity,
			Responsible: responsible,
			OccurredAt:  time.Now(),
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}
		result = MovementResult{MovementID: movement.ID, NewQuantity: countedQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
