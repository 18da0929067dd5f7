package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

func validAnimal() dto.CreateAnimalRequest {
	return dto.CreateAnimalRequest{
		Name:           "Mimosa",
		Species:        "Bovino",
		Sex:            entity.AnimalSexFemale,
		BirthDate:      time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
		Identification: "BR-0001",
	}
}

func TestAnimalCreate_IdentificacaoDuplicada(t *testing.T) {
	uc := usecase.NewAnimalUseCase(newMemAnimalRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, validAnimal())
	require.NoError(t, err)

	second := validAnimal()
	second.Name = "Outra"
	_, err = uc.Create(ctx, second)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAnimalCreate_Rejeicoes(t *testing.T) {
	uc := usecase.NewAnimalUseCase(newMemAnimalRepo())
	ctx := context.Background()

	in := validAnimal()
	in.Sex = "indefinido"
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validAnimal()
	in.BirthDate = time.Time{}
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Espécie, sexo e nascimento são imutáveis: o corpo de atualização nem os expõe.
func TestAnimalUpdate_CamposMutaveis(t *testing.T) {
	uc := usecase.NewAnimalUseCase(newMemAnimalRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, validAnimal())
	require.NoError(t, err)

	newName := "Mimosa II"
	purpose := entity.AnimalPurposeMilk
	updated, err := uc.Update(ctx, created.ID, dto.UpdateAnimalRequest{
		Name:    &newName,
		Purpose: &purpose,
	})

	require.NoError(t, err)
	assert.Equal(t, "Mimosa II", updated.Name)
	assert.Equal(t, entity.AnimalPurposeMilk, updated.Purpose)
	assert.Equal(t, created.Species, updated.Species)
	assert.Equal(t, created.Sex, updated.Sex)
	assert.True(t, created.BirthDate.Equal(updated.BirthDate))
}

func TestAnimalList_FiltroPorEspecie(t *testing.T) {
	uc := usecase.NewAnimalUseCase(newMemAnimalRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, validAnimal())
	require.NoError(t, err)

	horse := validAnimal()
	horse.Name = "Estrela"
	horse.Species = "Equino"
	horse.Identification = "BR-0002"
	_, err = uc.Create(ctx, horse)
	require.NoError(t, err)

	cattle, err := uc.List(ctx, "Bovino", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, cattle, 1)
	assert.Equal(t, "Mimosa", cattle[0].Name)

	all, err := uc.List(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
