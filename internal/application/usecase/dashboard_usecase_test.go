package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

type stubDashboardRepo struct {
	summary repository.DashboardSummary
}

func (r *stubDashboardRepo) GetSummary(_ context.Context) (*repository.DashboardSummary, error) {
	copied := r.summary
	return &copied, nil
}

func (r *stubDashboardRepo) AnimalsBySpecies(_ context.Context) ([]repository.CountBucket, error) {
	return []repository.CountBucket{{Label: "Bovino", Total: 12}, {Label: "Equino", Total: 2}}, nil
}

func (r *stubDashboardRepo) ActivitiesByStatus(_ context.Context) ([]repository.CountBucket, error) {
	return []repository.CountBucket{{Label: "registrada", Total: 3}}, nil
}

func (r *stubDashboardRepo) StockByCategory(_ context.Context) ([]repository.CountBucket, error) {
	return []repository.CountBucket{{Label: "Ração", Total: 52}}, nil
}

func TestDashboardSummary_IncluiAtividadesRecentes(t *testing.T) {
	activityRepo := newMemActivityRepo()
	activityUC := usecase.NewActivityUseCase(activityRepo)
	createActivity(t, activityUC)

	uc := usecase.NewDashboardUseCase(&stubDashboardRepo{summary: repository.DashboardSummary{
		TotalAnimals: 14, PendingTasks: 3, UrgentTasks: 1, StockItems: 6, LowStockItems: 2,
	}}, activityRepo)

	resp, err := uc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(14), resp.TotalAnimals)
	assert.Equal(t, int64(2), resp.LowStockItems)
	assert.Len(t, resp.RecentActivities, 1)
}

func TestDashboardReport_SeriesDosGraficos(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&stubDashboardRepo{}, newMemActivityRepo())

	resp, err := uc.Report(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.AnimalsBySpecies, 2)
	assert.Equal(t, "Bovino", resp.AnimalsBySpecies[0].Label)
	assert.Equal(t, int64(12), resp.AnimalsBySpecies[0].Value)
	assert.Len(t, resp.ActivitiesByStatus, 1)
	assert.Len(t, resp.StockByCategory, 1)
}
