package repository

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

// ActivityFilter filtros opcionais para listagem de atividades.
type ActivityFilter struct {
	Status         string
	Priority       string
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// ActivityRepository define o porto de persistência para Activity e seu log de auditoria.
// Logs são append-only.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]*entity.Activity, error)
	AppendLog(ctx context.Context, log *entity.ActivityLog) error
	ListLogs(ctx context.Context, activityID string) ([]*entity.ActivityLog, error)
}
