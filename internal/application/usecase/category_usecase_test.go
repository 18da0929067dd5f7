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
)

func TestCategoryCRUD(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Medicamentos"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Medicamentos", got.Name)

	renamed, err := uc.Update(ctx, created.ID, dto.CreateCategoryRequest{Name: "Medicamentos veterinários"})
	require.NoError(t, err)
	assert.Equal(t, "Medicamentos veterinários", renamed.Name)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategory_Rejeicoes(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategoryRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, uuid.New().String(), dto.CreateCategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
