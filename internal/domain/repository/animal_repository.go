package repository

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

// AnimalRepository define o porto de persistência para Animal (DIP).
type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	GetByID(ctx context.Context, id string) (*entity.Animal, error)
	GetByIdentification(ctx context.Context, identification string) (*entity.Animal, error)
	Update(ctx context.Context, animal *entity.Animal) error
	List(ctx context.Context, species string, limit, offset int) ([]*entity.Animal, error)
	Delete(ctx context.Context, id string) error
}
