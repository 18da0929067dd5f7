package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// allowedTransitions transições válidas do ciclo de vida da atividade.
// concluida e cancelada são terminais.
var allowedTransitions = map[string][]string{
	entity.ActivityStatusRegistered:  {entity.ActivityStatusAssigned, entity.ActivityStatusCancelled},
	entity.ActivityStatusAssigned:    {entity.ActivityStatusInProgress, entity.ActivityStatusCancelled},
	entity.ActivityStatusInProgress:  {entity.ActivityStatusDone, entity.ActivityStatusPending, entity.ActivityStatusWithProblem, entity.ActivityStatusCancelled},
	entity.ActivityStatusPending:     {entity.ActivityStatusInProgress, entity.ActivityStatusCancelled},
	entity.ActivityStatusWithProblem: {entity.ActivityStatusInProgress, entity.ActivityStatusCancelled},
}

func canTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ActivityUseCase ciclo de vida de atividades com trilha de auditoria.
// Toda mudança de estado gera uma entrada append-only no log da atividade.
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase constrói o caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Create registra uma atividade com status inicial "registrada".
func (uc *ActivityUseCase) Create(ctx context.Context, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if in.Title == "" || in.Responsible == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == "" {
		in.Type = entity.ActivityTypeGeneral
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	switch in.Priority {
	case entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	activity := &entity.Activity{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Priority:    in.Priority,
		Status:      entity.ActivityStatusRegistered,
		Responsible: in.Responsible,
		Deadline:    in.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	if err := uc.appendLog(ctx, activity.ID, entity.LogActionCreate,
		fmt.Sprintf("Atividade %q registrada", activity.Title), in.Responsible); err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// GetByID obtém uma atividade. Atividades excluídas logicamente não são devolvidas.
func (uc *ActivityUseCase) GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	activity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil || activity.Deleted() {
		return nil, domain.ErrNotFound
	}
	return toActivityResponse(activity), nil
}

// Assign atribui a atividade a um trabalhador e avança o status para "atribuida".
func (uc *ActivityUseCase) Assign(ctx context.Context, id string, in dto.AssignActivityRequest) (*dto.ActivityResponse, error) {
	if in.WorkerName == "" || in.Responsible == "" {
		return nil, domain.ErrInvalidInput
	}
	activity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil || activity.Deleted() {
		return nil, domain.ErrNotFound
	}
	if !canTransition(activity.Status, entity.ActivityStatusAssigned) {
		return nil, domain.ErrConflict
	}
	activity.WorkerName = in.WorkerName
	activity.Status = entity.ActivityStatusAssigned
	activity.Responsible = in.Responsible
	activity.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	if err := uc.appendLog(ctx, activity.ID, entity.LogActionAssign,
		fmt.Sprintf("Atividade atribuída a %s", in.WorkerName), in.Responsible); err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// ChangeStatus aplica uma transição do ciclo de vida. Transições fora do mapa
// resultam em ErrConflict; "com_problemas" exige a descrição do problema.
func (uc *ActivityUseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeActivityStatusRequest) (*dto.ActivityResponse, error) {
	if in.Responsible == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == entity.ActivityStatusWithProblem && in.ProblemDescription == "" {
		return nil, domain.ErrInvalidInput
	}
	activity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil || activity.Deleted() {
		return nil, domain.ErrNotFound
	}
	if !canTransition(activity.Status, in.Status) {
		return nil, domain.ErrConflict
	}
	previous := activity.Status
	activity.Status = in.Status
	activity.Responsible = in.Responsible
	activity.UpdatedAt = time.Now()
	action := entity.LogActionStatusChange
	if in.Status == entity.ActivityStatusWithProblem {
		activity.ProblemDescription = in.ProblemDescription
		action = entity.LogActionProblem
	}
	if err := uc.repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	if err := uc.appendLog(ctx, activity.ID, action,
		fmt.Sprintf("Status alterado de %s para %s", previous, in.Status), in.Responsible); err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// List lista atividades ativas (excluídas logicamente ficam de fora por padrão).
func (uc *ActivityUseCase) List(ctx context.Context, filter repository.ActivityFilter) ([]dto.ActivityResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	activities, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, *toActivityResponse(a))
	}
	return out, nil
}

// Delete exclusão lógica: marca DeletedAt e registra no log quem excluiu.
func (uc *ActivityUseCase) Delete(ctx context.Context, id, responsible string) error {
	if responsible == "" {
		return domain.ErrInvalidInput
	}
	activity, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if activity == nil || activity.Deleted() {
		return domain.ErrNotFound
	}
	now := time.Now()
	activity.DeletedAt = &now
	activity.Responsible = responsible
	activity.UpdatedAt = now
	if err := uc.repo.Update(ctx, activity); err != nil {
		return err
	}
	return uc.appendLog(ctx, activity.ID, entity.LogActionDelete,
		fmt.Sprintf("Atividade excluída logicamente por %s", responsible), responsible)
}

// Logs devolve a trilha de auditoria da atividade.
func (uc *ActivityUseCase) Logs(ctx context.Context, id string) ([]dto.ActivityLogResponse, error) {
	logs, err := uc.repo.ListLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ActivityLogResponse{
			ID:          l.ID,
			Action:      l.Action,
			Message:     l.Message,
			Responsible: l.Responsible,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out, nil
}

func (uc *ActivityUseCase) appendLog(ctx context.Context, activityID, action, message, responsible string) error {
	return uc.repo.AppendLog(ctx, &entity.ActivityLog{
		ID:          uuid.New().String(),
		ActivityID:  activityID,
		Action:      action,
		Message:     message,
		Responsible: responsible,
		CreatedAt:   time.Now(),
	})
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ID:                 a.ID,
		Title:              a.Title,
		Description:        a.Description,
		Type:               a.Type,
		Priority:           a.Priority,
		Status:             a.Status,
		WorkerName:         a.WorkerName,
		ProblemDescription: a.ProblemDescription,
		Deadline:           a.Deadline,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
