package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

type itemFixture struct {
	categoryRepo *memCategoryRepo
	itemRepo     *memItemRepo
	movementRepo *memMovementRepo
	uc           *usecase.ItemUseCase
	categoryID   string
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()
	f := &itemFixture{
		categoryRepo: newMemCategoryRepo(),
		itemRepo:     newMemItemRepo(),
		movementRepo: newMemMovementRepo(),
	}
	f.uc = usecase.NewItemUseCase(f.itemRepo, f.categoryRepo, f.movementRepo)
	f.categoryID = uuid.New().String()
	f.categoryRepo.categories[f.categoryID] = &entity.Category{ID: f.categoryID, Name: "Ração"}
	return f
}

func TestItemCreate_DefineDefaultsEAtivo(t *testing.T) {
	f := newItemFixture(t)

	item, err := f.uc.Create(context.Background(), dto.CreateItemRequest{
		Name:            "Ração bovina 25kg",
		CategoryID:      f.categoryID,
		InitialQuantity: 12,
		QuantityMin:     5,
	})

	require.NoError(t, err)
	assert.Equal(t, "un", item.UnitMeasure, "unidade padrão quando não informada")
	assert.True(t, item.Active)
	assert.Equal(t, int64(12), item.QuantityCurrent)
	assert.False(t, item.LowStock)
}

func TestItemCreate_Rejeicoes(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateItemRequest{CategoryID: f.categoryID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome obrigatório")

	_, err = f.uc.Create(ctx, dto.CreateItemRequest{Name: "Arame", CategoryID: f.categoryID, InitialQuantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade inicial negativa")

	_, err = f.uc.Create(ctx, dto.CreateItemRequest{Name: "Arame", CategoryID: uuid.New().String()})
	assert.ErrorIs(t, err, domain.ErrNotFound, "categoria inexistente")
}

// O corpo de atualização não tem campo de quantidade: mesmo alterando tudo
// que é permitido, o saldo corrente permanece intocado.
func TestItemUpdate_NaoTocaQuantidade(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, dto.CreateItemRequest{
		Name: "Vacina aftosa", CategoryID: f.categoryID, InitialQuantity: 120, QuantityMin: 50,
	})
	require.NoError(t, err)

	newName := "Vacina aftosa bovina"
	newMin := int64(80)
	inactive := false
	updated, err := f.uc.Update(ctx, created.ID, dto.UpdateItemRequest{
		Name:        &newName,
		QuantityMin: &newMin,
		Active:      &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, int64(80), updated.QuantityMin)
	assert.False(t, updated.Active)
	assert.Equal(t, int64(120), updated.QuantityCurrent)
}

func TestItemUpdate_NaoEncontrado(t *testing.T) {
	f := newItemFixture(t)
	name := "x"

	_, err := f.uc.Update(context.Background(), uuid.New().String(), dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// Item sem movimentações pode ser removido; com movimentações só é desativado,
// para não quebrar a trilha do livro.
func TestItemDelete_DesativaQuandoHaMovimentacoes(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	fresh, err := f.uc.Create(ctx, dto.CreateItemRequest{Name: "Sem histórico", CategoryID: f.categoryID})
	require.NoError(t, err)
	moved, err := f.uc.Create(ctx, dto.CreateItemRequest{Name: "Com histórico", CategoryID: f.categoryID})
	require.NoError(t, err)
	require.NoError(t, f.movementRepo.Create(ctx, &entity.StockMovement{ItemID: moved.ID}))

	require.NoError(t, f.uc.Delete(ctx, fresh.ID))
	_, err = f.uc.GetByID(ctx, fresh.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound, "sem histórico some de verdade")

	require.NoError(t, f.uc.Delete(ctx, moved.ID))
	kept, err := f.uc.GetByID(ctx, moved.ID)
	require.NoError(t, err)
	assert.False(t, kept.Active, "com histórico é apenas desativado")
}

func TestItemList_FiltroEstoqueBaixo(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateItemRequest{
		Name: "Abaixo do mínimo", CategoryID: f.categoryID, InitialQuantity: 3, QuantityMin: 10,
	})
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, dto.CreateItemRequest{
		Name: "Saudável", CategoryID: f.categoryID, InitialQuantity: 50, QuantityMin: 10,
	})
	require.NoError(t, err)

	resp, err := f.uc.List(ctx, repository.ItemFilter{LowStock: true})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Abaixo do mínimo", resp.Items[0].Name)
	assert.True(t, resp.Items[0].LowStock)
}
