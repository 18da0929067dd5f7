package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/inventory"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

// O histórico deve vir em ordem decrescente de registro e respeitar o filtro por item.
func TestMovementHistory_OrdemEFiltro(t *testing.T) {
	store := newFakeStore()
	itemA := store.addItem(0)
	itemB := store.addItem(0)
	uc := newUseCase(store)
	ctx := context.Background()

	for _, in := range []inventory.MovementInput{
		{ItemID: itemA, Type: entity.MovementTypeIn, Quantity: 10, Responsible: "maria"},
		{ItemID: itemB, Type: entity.MovementTypeIn, Quantity: 3, Responsible: "maria"},
		{ItemID: itemA, Type: entity.MovementTypeOut, Quantity: 4, Responsible: "joão"},
	} {
		_, err := uc.RegisterMovement(ctx, in)
		require.NoError(t, err)
	}

	historyUC := inventory.NewMovementHistoryUseCase(&fakeMovementRepo{store})

	resp, err := historyUC.History(ctx, itemA, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Movements, 2)

	// Mais recente primeiro: a saída de 4 veio depois da entrada de 10
	assert.Equal(t, entity.MovementTypeOut, resp.Movements[0].Type)
	assert.Equal(t, int64(4), resp.Movements[0].Quantity)
	assert.Equal(t, entity.MovementTypeIn, resp.Movements[1].Type)
	assert.Equal(t, 2, resp.Total)

	all, err := historyUC.History(ctx, "", "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Movements, 3)
}

// Total reflete o conjunto inteiro que casa com o filtro, não só a página corrente.
func TestMovementHistory_TotalIgnoraPaginacao(t *testing.T) {
	store := newFakeStore()
	itemID := store.addItem(0)
	uc := newUseCase(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := uc.RegisterMovement(ctx, inventory.MovementInput{
			ItemID: itemID, Type: entity.MovementTypeIn, Quantity: 1, Responsible: "maria",
		})
		require.NoError(t, err)
	}

	historyUC := inventory.NewMovementHistoryUseCase(&fakeMovementRepo{store})

	resp, err := historyUC.History(ctx, itemID, "", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Movements, 2)
	assert.Equal(t, 5, resp.Total)

	ultima, err := historyUC.History(ctx, itemID, "", dto.PageRequest{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, ultima.Movements, 1)
	assert.Equal(t, 5, ultima.Total)
}
