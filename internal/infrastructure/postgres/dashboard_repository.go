package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de somente leitura para painel e relatórios.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository constrói o adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetSummary devolve os contadores do painel em uma única consulta.
func (r *DashboardRepo) GetSummary(ctx context.Context) (*repository.DashboardSummary, error) {
	query := `
	SELECT
	    (SELECT COUNT(*) FROM animals)                                                   AS total_animals,
	    (SELECT COUNT(*) FROM activities WHERE status = $1 AND deleted_at IS NULL)       AS pending_tasks,
	    (SELECT COUNT(*) FROM activities
	        WHERE status = $1 AND priority = $2 AND deleted_at IS NULL)                  AS urgent_tasks,
	    (SELECT COUNT(*) FROM items)                                                     AS stock_items,
	    (SELECT COUNT(*) FROM items WHERE quantity_current <= quantity_min)              AS low_stock_items`
	var s repository.DashboardSummary
	err := r.pool.QueryRow(ctx, query, entity.ActivityStatusRegistered, entity.PriorityHigh).Scan(
		&s.TotalAnimals, &s.PendingTasks, &s.UrgentTasks, &s.StockItems, &s.LowStockItems,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}

// AnimalsBySpecies total de animais agrupado por espécie.
func (r *DashboardRepo) AnimalsBySpecies(ctx context.Context) ([]repository.CountBucket, error) {
	query := `
	SELECT species, COUNT(*) AS total
	FROM animals
	GROUP BY species
	ORDER BY total DESC`
	return r.buckets(ctx, query)
}

// ActivitiesByStatus total de atividades ativas agrupado por status.
func (r *DashboardRepo) ActivitiesByStatus(ctx context.Context) ([]repository.CountBucket, error) {
	query := `
	SELECT status, COUNT(*) AS total
	FROM activities
	WHERE deleted_at IS NULL
	GROUP BY status
	ORDER BY total DESC`
	return r.buckets(ctx, query)
}

// StockByCategory soma quantity_current por categoria.
func (r *DashboardRepo) StockByCategory(ctx context.Context) ([]repository.CountBucket, error) {
	query := `
	SELECT c.name, COALESCE(SUM(i.quantity_current), 0) AS total
	FROM categories c
	LEFT JOIN items i ON i.category_id = c.id
	GROUP BY c.name
	ORDER BY total DESC`
	return r.buckets(ctx, query)
}

func (r *DashboardRepo) buckets(ctx context.Context, query string) ([]repository.CountBucket, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard buckets: %w", err)
	}
	defer rows.Close()
	var list []repository.CountBucket
	for rows.Next() {
		var b repository.CountBucket
		if err := rows.Scan(&b.Label, &b.Total); err != nil {
			return nil, fmt.Errorf("scan bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
