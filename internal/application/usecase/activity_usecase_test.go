package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

func createActivity(t *testing.T, uc *usecase.ActivityUseCase) *dto.ActivityResponse {
	t.Helper()
	created, err := uc.Create(context.Background(), dto.CreateActivityRequest{
		Title:       "Vacinação do lote 2",
		Type:        entity.ActivityTypeLivestock,
		Priority:    entity.PriorityHigh,
		Responsible: "carlos",
	})
	require.NoError(t, err)
	return created
}

func TestActivityCreate_StatusInicialEAuditoria(t *testing.T) {
	repo := newMemActivityRepo()
	uc := usecase.NewActivityUseCase(repo)

	created := createActivity(t, uc)
	assert.Equal(t, entity.ActivityStatusRegistered, created.Status)

	logs, err := uc.Logs(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.LogActionCreate, logs[0].Action)
	assert.Equal(t, "carlos", logs[0].Responsible)
}

func TestActivityCreate_Defaults(t *testing.T) {
	uc := usecase.NewActivityUseCase(newMemActivityRepo())

	created, err := uc.Create(context.Background(), dto.CreateActivityRequest{
		Title: "Conserto do trator", Responsible: "ana",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ActivityTypeGeneral, created.Type)
	assert.Equal(t, entity.PriorityMedium, created.Priority)
}

// Fluxo feliz completo: registrada → atribuida → em_andamento → concluida,
// com uma entrada de log por passo.
func TestActivityLifecycle_FluxoCompleto(t *testing.T) {
	uc := usecase.NewActivityUseCase(newMemActivityRepo())
	ctx := context.Background()
	created := createActivity(t, uc)

	assigned, err := uc.Assign(ctx, created.ID, dto.AssignActivityRequest{
		WorkerName: "José", Responsible: "carlos",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityStatusAssigned, assigned.Status)
	assert.Equal(t, "José", assigned.WorkerName)

	inProgress, err := uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusInProgress, Responsible: "josé",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityStatusInProgress, inProgress.Status)

	done, err := uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusDone, Responsible: "josé",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityStatusDone, done.Status)

	logs, err := uc.Logs(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 4)
}

func TestActivityChangeStatus_TransicaoInvalida(t *testing.T) {
	uc := usecase.NewActivityUseCase(newMemActivityRepo())
	ctx := context.Background()
	created := createActivity(t, uc)

	// registrada não pode pular direto para concluida
	_, err := uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusDone, Responsible: "carlos",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// concluida é terminal
	_, err = uc.Assign(ctx, created.ID, dto.AssignActivityRequest{WorkerName: "José", Responsible: "carlos"})
	require.NoError(t, err)
	_, err = uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusInProgress, Responsible: "josé",
	})
	require.NoError(t, err)
	_, err = uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusDone, Responsible: "josé",
	})
	require.NoError(t, err)
	_, err = uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusInProgress, Responsible: "josé",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestActivityChangeStatus_ProblemaExigeDescricao(t *testing.T) {
	uc := usecase.NewActivityUseCase(newMemActivityRepo())
	ctx := context.Background()
	created := createActivity(t, uc)

	_, err := uc.Assign(ctx, created.ID, dto.AssignActivityRequest{WorkerName: "José", Responsible: "carlos"})
	require.NoError(t, err)
	_, err = uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusInProgress, Responsible: "josé",
	})
	require.NoError(t, err)

	_, err = uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status: entity.ActivityStatusWithProblem, Responsible: "josé",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	withProblem, err := uc.ChangeStatus(ctx, created.ID, dto.ChangeActivityStatusRequest{
		Status:             entity.ActivityStatusWithProblem,
		ProblemDescription: "Faltou vacina no estoque",
		Responsible:        "josé",
	})
	require.NoError(t, err)
	assert.Equal(t, "Faltou vacina no estoque", withProblem.ProblemDescription)

	logs, err := uc.Logs(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LogActionProblem, logs[0].Action, "log mais recente primeiro")
}

// Exclusão lógica: some das listagens e consultas, mas registra quem excluiu.
func TestActivityDelete_Logica(t *testing.T) {
	repo := newMemActivityRepo()
	uc := usecase.NewActivityUseCase(repo)
	ctx := context.Background()
	created := createActivity(t, uc)

	require.NoError(t, uc.Delete(ctx, created.ID, "carlos"))

	_, err := uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, repository.ActivityFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	// O registro continua no repositório, marcado
	raw, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.True(t, raw.Deleted())

	logs, err := uc.Logs(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LogActionDelete, logs[0].Action)

	err = uc.Delete(ctx, created.ID, "carlos")
	assert.ErrorIs(t, err, domain.ErrNotFound, "excluir duas vezes não é permitido")
}
