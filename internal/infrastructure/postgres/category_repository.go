package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação de CategoryRepository sobre PostgreSQL (usável com pool ou tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste uma categoria. Nome duplicado vira ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `INSERT INTO categories (id, name) VALUES ($1, $2)`
	_, err := r.q.Exec(ctx, query, category.ID, category.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create category: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID. Devolve nil se não existir.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update atualiza o nome da categoria. Nome duplicado vira ErrDuplicate.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $2 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, category.ID, category.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update category: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista as categorias por nome.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete exclui a categoria; os itens caem em cascata (FK ON DELETE CASCADE).
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
