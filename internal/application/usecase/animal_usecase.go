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

// AnimalUseCase casos de uso CRUD para o plantel.
type AnimalUseCase struct {
	repo repository.AnimalRepository
}

// NewAnimalUseCase constrói o caso de uso.
func NewAnimalUseCase(repo repository.AnimalRepository) *AnimalUseCase {
	return &AnimalUseCase{repo: repo}
}

// Create cadastra um animal. Identificação, quando informada, deve ser única.
func (uc *AnimalUseCase) Create(ctx context.Context, in dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	if in.Name == "" || in.Species == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Sex != entity.AnimalSexMale && in.Sex != entity.AnimalSexFemale {
		return nil, domain.ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Identification != "" {
		existing, err := uc.repo.GetByIdentification(ctx, in.Identification)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	animal := &entity.Animal{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Species:        in.Species,
		Breed:          in.Breed,
		Sex:            in.Sex,
		BirthDate:      in.BirthDate,
		Identification: in.Identification,
		Purpose:        in.Purpose,
		InitialWeight:  in.InitialWeight,
		Notes:          in.Notes,
		AcquiredAt:     in.AcquiredAt,
		Origin:         in.Origin,
		PurchaseValue:  in.PurchaseValue,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, animal); err != nil {
		return nil, err
	}
	return toAnimalResponse(animal), nil
}

// GetByID obtém um animal por ID.
func (uc *AnimalUseCase) GetByID(ctx context.Context, id string) (*dto.AnimalResponse, error) {
	animal, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	return toAnimalResponse(animal), nil
}

// Update atualiza campos editáveis do animal. Espécie, sexo e nascimento são imutáveis.
func (uc *AnimalUseCase) Update(ctx context.Context, id string, in dto.UpdateAnimalRequest) (*dto.AnimalResponse, error) {
	animal, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		animal.Name = *in.Name
	}
	if in.Breed != nil {
		animal.Breed = *in.Breed
	}
	if in.Purpose != nil {
		animal.Purpose = *in.Purpose
	}
	if in.InitialWeight != nil {
		animal.InitialWeight = *in.InitialWeight
	}
	if in.Notes != nil {
		animal.Notes = *in.Notes
	}
	if in.Origin != nil {
		animal.Origin = *in.Origin
	}
	if in.PurchaseValue != nil {
		animal.PurchaseValue = *in.PurchaseValue
	}
	if err := uc.repo.Update(ctx, animal); err != nil {
		return nil, err
	}
	return toAnimalResponse(animal), nil
}

// List lista animais, opcionalmente por espécie.
func (uc *AnimalUseCase) List(ctx context.Context, species string, page dto.PageRequest) ([]dto.AnimalResponse, error) {
	page.DefaultPage()
	animals, err := uc.repo.List(ctx, species, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnimalResponse, 0, len(animals))
	for _, a := range animals {
		out = append(out, *toAnimalResponse(a))
	}
	return out, nil
}

// Delete exclui um animal.
func (uc *AnimalUseCase) Delete(ctx context.Context, id string) error {
	animal, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if animal == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toAnimalResponse(a *entity.Animal) *dto.AnimalResponse {
	return &dto.AnimalResponse{
		ID:             a.ID,
		Name:           a.Name,
		Species:        a.Species,
		Breed:          a.Breed,
		Sex:            a.Sex,
		BirthDate:      a.BirthDate,
		Identification: a.Identification,
		Purpose:        a.Purpose,
		InitialWeight:  a.InitialWeight,
		Notes:          a.Notes,
		AcquiredAt:     a.AcquiredAt,
		Origin:         a.Origin,
		PurchaseValue:  a.PurchaseValue,
		CreatedAt:      a.CreatedAt,
	}
}
