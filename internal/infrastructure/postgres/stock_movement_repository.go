package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do livro de movimentações sobre PostgreSQL
// (usável com pool ou tx). Append-only: não há UPDATE nem DELETE nesta tabela.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste uma movimentação.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, item_id, type, quantity, responsible, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ItemID, movement.Type, movement.Quantity,
		movement.Responsible, movement.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID. Devolve nil se não existir.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, item_id, type, quantity, responsible, occurred_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.Responsible, &m.OccurredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// History lista movimentações por data decrescente, com join de item e categoria
// para exibição, filtrando opcionalmente por item e por categoria.
func (r *StockMovementRepo) History(ctx context.Context, filter repository.MovementFilter) ([]*repository.MovementWithItem, error) {
	query := `
		SELECT m.id, m.item_id, m.type, m.quantity, m.responsible, m.occurred_at,
			i.name, i.unit_measure, c.name
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		JOIN categories c ON c.id = i.category_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND m.item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND i.category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.occurred_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movement history: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementWithItem
	for rows.Next() {
		var row repository.MovementWithItem
		if err := rows.Scan(
			&row.Movement.ID, &row.Movement.ItemID, &row.Movement.Type,
			&row.Movement.Quantity, &row.Movement.Responsible, &row.Movement.OccurredAt,
			&row.ItemName, &row.UnitMeasure, &row.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Count conta as movimentações que casam com o filtro, sem paginação.
func (r *StockMovementRepo) Count(ctx context.Context, filter repository.MovementFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND m.item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND i.category_id = $%d", pos)
		args = append(args, filter.CategoryID)
	}
	var count int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movement history: %w", err)
	}
	return count, nil
}

// CountByItem conta as movimentações registradas para um item.
func (r *StockMovementRepo) CountByItem(ctx context.Context, itemID string) (int64, error) {
	query := `SELECT COUNT(*) FROM stock_movements WHERE item_id = $1`
	var count int64
	if err := r.q.QueryRow(ctx, query, itemID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

// SumByItem soma entradas menos saídas do item, reconstruindo o efeito líquido
// do livro para conferência contra quantity_current.
func (r *StockMovementRepo) SumByItem(ctx context.Context, itemID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'entrada' THEN quantity ELSE -quantity END), 0)
		FROM stock_movements WHERE item_id = $1`
	var sum int64
	if err := r.q.QueryRow(ctx, query, itemID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}
