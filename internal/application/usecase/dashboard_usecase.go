package usecase

import (
	"context"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// recentActivitiesLimit quantidade de atividades recentes exibidas no painel.
const recentActivitiesLimit = 4

// DashboardUseCase agregações de somente leitura para painel e relatórios.
// Consome o lado de leitura do estoque (filtro de estoque baixo) entre outros.
type DashboardUseCase struct {
	dashRepo     repository.DashboardRepository
	activityRepo repository.ActivityRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, activityRepo repository.ActivityRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, activityRepo: activityRepo}
}

// Summary contadores do painel principal + atividades recentes.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	summary, err := uc.dashRepo.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.activityRepo.List(ctx, repository.ActivityFilter{Limit: recentActivitiesLimit})
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardSummaryResponse{
		TotalAnimals:     summary.TotalAnimals,
		PendingTasks:     summary.PendingTasks,
		UrgentTasks:      summary.UrgentTasks,
		StockItems:       summary.StockItems,
		LowStockItems:    summary.LowStockItems,
		RecentActivities: make([]dto.ActivityResponse, 0, len(recent)),
	}
	for _, a := range recent {
		out.RecentActivities = append(out.RecentActivities, *toActivityResponse(a))
	}
	return out, nil
}

// Report séries para os gráficos de relatório.
func (uc *DashboardUseCase) Report(ctx context.Context) (*dto.ReportResponse, error) {
	animals, err := uc.dashRepo.AnimalsBySpecies(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := uc.dashRepo.ActivitiesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := uc.dashRepo.StockByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReportResponse{
		AnimalsBySpecies:   toChartPoints(animals),
		ActivitiesByStatus: toChartPoints(activities),
		StockByCategory:    toChartPoints(stock),
	}, nil
}

func toChartPoints(buckets []repository.CountBucket) []dto.ChartPoint {
	out := make([]dto.ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.ChartPoint{Label: b.Label, Value: b.Total})
	}
	return out
}
