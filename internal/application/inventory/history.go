package inventory

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// MovementHistoryUseCase lado de leitura do livro: histórico de movimentações
// por data decrescente, com nomes de item e categoria para exibição. Nunca muta estado.
type MovementHistoryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewMovementHistoryUseCase constrói o caso de uso.
func NewMovementHistoryUseCase(movementRepo repository.StockMovementRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{movementRepo: movementRepo}
}

// History lista o histórico, com filtros opcionais por item e categoria.
func (uc *MovementHistoryUseCase) History(ctx context.Context, itemID, categoryID string, page dto.PageRequest) (*dto.MovementHistoryResponse, error) {
	page.DefaultPage()
	filter := repository.MovementFilter{
		ItemID:     itemID,
		CategoryID: categoryID,
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	rows, err := uc.movementRepo.History(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.movementRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.MovementHistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, dto.MovementHistoryEntry{
			ID:           r.Movement.ID,
			ItemID:       r.Movement.ItemID,
			ItemName:     r.ItemName,
			CategoryName: r.CategoryName,
			Type:         r.Movement.Type,
			Quantity:     r.Movement.Quantity,
			UnitMeasure:  r.UnitMeasure,
			Responsible:  r.Movement.Responsible,
			OccurredAt:   r.Movement.OccurredAt,
		})
	}
	return &dto.MovementHistoryResponse{Movements: entries, Total: int(total)}, nil
}
