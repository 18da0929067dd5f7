package repository

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

// CategoryRepository define o porto de persistência para Category (DIP).
// Delete exclui em cascata os itens da categoria (propriedade intencional).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
