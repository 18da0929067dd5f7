package repository

import "context"

// DashboardSummary contadores exibidos no painel principal.
type DashboardSummary struct {
	TotalAnimals  int64
	PendingTasks  int64 // status registrada
	UrgentTasks   int64 // registrada + prioridade ALTA
	StockItems    int64
	LowStockItems int64 // quantity_current <= quantity_min
}

// CountBucket par rótulo/total usado nas séries dos relatórios.
type CountBucket struct {
	Label string
	Total int64
}

// DashboardRepository consultas de somente leitura para painel e relatórios.
type DashboardRepository interface {
	GetSummary(ctx context.Context) (*DashboardSummary, error)
	AnimalsBySpecies(ctx context.Context) ([]CountBucket, error)
	ActivitiesByStatus(ctx context.Context) ([]CountBucket, error)
	// StockByCategory soma quantity_current por categoria.
	StockByCategory(ctx context.Context) ([]CountBucket, error)
}
