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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementação de ItemRepository sobre PostgreSQL (usável com pool ou tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, category_id, name, unit_measure, quantity_current,
	quantity_min, quantity_max, location, active, description, created_at, updated_at`

// Create persiste um item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, category_id, name, unit_measure, quantity_current,
			quantity_min, quantity_max, location, active, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.CategoryID, item.Name, item.UnitMeasure, item.QuantityCurrent,
		item.QuantityMin, item.QuantityMax, nullIfEmpty(item.Location), item.Active,
		nullIfEmpty(item.Description), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID. Devolve nil se não existir.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetForUpdate obtém o item bloqueando a linha até o fim da transação (SELECT FOR UPDATE).
// Serializa movimentações concorrentes do mesmo item.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// Update atualiza os campos de catálogo do item. quantity_current fica de fora
// de propósito: só UpdateQuantity, chamado pelo motor, escreve nela.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET category_id = $2, name = $3, unit_measure = $4, quantity_min = $5,
			quantity_max = $6, location = $7, active = $8, description = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.CategoryID, item.Name, item.UnitMeasure, item.QuantityMin,
		item.QuantityMax, nullIfEmpty(item.Location), item.Active,
		nullIfEmpty(item.Description), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateQuantity grava a nova quantidade do item. Usado apenas pelo motor de
// movimentações, dentro da transação que também cria a movimentação.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	query := `UPDATE items SET quantity_current = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// List lista itens com filtros opcionais.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if filter.Active != nil {
		query += fmt.Sprintf(" AND active = $%d", pos)
		args = append(args, *filter.Active)
		pos++
	}
	if filter.LowStock {
		query += " AND quantity_current <= quantity_min"
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Deactivate marca o item como inativo, preservando histórico de movimentações.
func (r *ItemRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE items SET active = false, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate item: %w", err)
	}
	return nil
}

// Delete exclui fisicamente o item. A FK de stock_movements é ON DELETE RESTRICT:
// com movimentações registradas a exclusão falha com ErrHasMovements.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM items WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete item: %w", domain.ErrHasMovements)
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var location, description *string
	err := row.Scan(
		&it.ID, &it.CategoryID, &it.Name, &it.UnitMeasure, &it.QuantityCurrent,
		&it.QuantityMin, &it.QuantityMax, &location, &it.Active, &description,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if location != nil {
		it.Location = *location
	}
	if description != nil {
		it.Description = *description
	}
	return &it, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
