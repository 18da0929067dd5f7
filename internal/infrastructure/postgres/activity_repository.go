package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementação de ActivityRepository sobre PostgreSQL (usável com pool ou tx).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

const activityColumns = `id, title, description, type, priority, status, worker_name,
	problem_description, responsible, deadline, created_at, updated_at, deleted_at`

// Create persiste uma atividade.
func (r *ActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, title, description, type, priority, status, worker_name,
			problem_description, responsible, deadline, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		activity.ID, activity.Title, nullIfEmpty(activity.Description), activity.Type,
		activity.Priority, activity.Status, nullIfEmpty(activity.WorkerName),
		nullIfEmpty(activity.ProblemDescription), activity.Responsible,
		activity.Deadline, activity.CreatedAt, activity.UpdatedAt, activity.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// GetByID obtém uma atividade por ID (inclusive as excluídas logicamente;
// o caso de uso decide o que filtrar). Devolve nil se não existir.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	activity, err := scanActivity(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return activity, nil
}

// Update grava o estado corrente da atividade.
func (r *ActivityRepo) Update(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET title = $2, description = $3, priority = $4, status = $5, worker_name = $6,
			problem_description = $7, responsible = $8, deadline = $9, updated_at = $10,
			deleted_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		activity.ID, activity.Title, nullIfEmpty(activity.Description), activity.Priority,
		activity.Status, nullIfEmpty(activity.WorkerName),
		nullIfEmpty(activity.ProblemDescription), activity.Responsible,
		activity.Deadline, activity.UpdatedAt, activity.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return nil
}

// List lista atividades por criação decrescente; excluídas logicamente ficam
// de fora salvo IncludeDeleted.
func (r *ActivityRepo) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE 1=1`
	args := []any{}
	pos := 1
	if !filter.IncludeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Priority != "" {
		query += fmt.Sprintf(" AND priority = $%d", pos)
		args = append(args, filter.Priority)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, activity)
	}
	return list, rows.Err()
}

// AppendLog grava uma entrada no log de auditoria (append-only).
func (r *ActivityRepo) AppendLog(ctx context.Context, log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, activity_id, action, message, responsible, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.ActivityID, log.Action, log.Message, log.Responsible, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append activity log: %w", err)
	}
	return nil
}

// ListLogs lista o log de uma atividade por data decrescente.
func (r *ActivityRepo) ListLogs(ctx context.Context, activityID string) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, activity_id, action, message, responsible, created_at
		FROM activity_logs WHERE activity_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, activityID)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.ActivityID, &l.Action, &l.Message, &l.Responsible, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	var description, workerName, problem *string
	err := row.Scan(
		&a.ID, &a.Title, &description, &a.Type, &a.Priority, &a.Status, &workerName,
		&problem, &a.Responsible, &a.Deadline, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if description != nil {
		a.Description = *description
	}
	if workerName != nil {
		a.WorkerName = *workerName
	}
	if problem != nil {
		a.ProblemDescription = *problem
	}
	return &a, nil
}
