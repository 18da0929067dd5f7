package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para itens do catálogo.
// QuantityCurrent não é editável por aqui: só o motor de movimentações escreve nela.
type ItemUseCase struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.StockMovementRepository
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.StockMovementRepository,
) *ItemUseCase {
	return &ItemUseCase{repo: repo, categoryRepo: categoryRepo, movementRepo: movementRepo}
}

// Create cria um item do catálogo. InitialQuantity é o saldo de abertura do livro.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.QuantityMin < 0 || in.QuantityMax < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.UnitMeasure == "" {
		in.UnitMeasure = "un"
	}
	now := time.Now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		UnitMeasure:     in.UnitMeasure,
		QuantityCurrent: in.InitialQuantity,
		QuantityMin:     in.QuantityMin,
		QuantityMax:     in.QuantityMax,
		Location:        in.Location,
		Active:          true,
		Description:     in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtém um item por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// Update atualiza um item. Não permite modificar QuantityCurrent: a quantidade
// pertence ao motor de movimentações (ajustes via recontagem).
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		item.CategoryID = *in.CategoryID
	}
	if in.UnitMeasure != nil {
		item.UnitMeasure = *in.UnitMeasure
	}
	if in.QuantityMin != nil {
		if *in.QuantityMin < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.QuantityMin = *in.QuantityMin
	}
	if in.QuantityMax != nil {
		if *in.QuantityMax < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.QuantityMax = *in.QuantityMax
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista itens com filtros opcionais (categoria, ativo, estoque baixo).
func (uc *ItemUseCase) List(ctx context.Context, filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	items, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Delete exclui um item. Se o item já tem movimentações, a exclusão física
// quebraria a trilha de auditoria: nesse caso o item é apenas desativado.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	count, err := uc.movementRepo.CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return uc.repo.Deactivate(ctx, id)
	}
	return uc.repo.Delete(ctx, id)
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		CategoryID:      item.CategoryID,
		UnitMeasure:     item.UnitMeasure,
		QuantityCurrent: item.QuantityCurrent,
		QuantityMin:     item.QuantityMin,
		QuantityMax:     item.QuantityMax,
		Location:        item.Location,
		Active:          item.Active,
		Description:     item.Description,
		LowStock:        item.LowStock(),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
