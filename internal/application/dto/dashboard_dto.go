package dto

// DashboardSummaryResponse contadores do painel principal.
type DashboardSummaryResponse struct {
	TotalAnimals     int64              `json:"total_animals"`
	PendingTasks     int64              `json:"pending_tasks"`
	UrgentTasks      int64              `json:"urgent_tasks"`
	StockItems       int64              `json:"stock_items"`
	LowStockItems    int64              `json:"low_stock_items"`
	RecentActivities []ActivityResponse `json:"recent_activities"`
}

// ChartPoint ponto de série para os gráficos de relatório.
type ChartPoint struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// ReportResponse séries dos relatórios (animais, atividades, estoque).
type ReportResponse struct {
	AnimalsBySpecies   []ChartPoint `json:"animals_by_species"`
	ActivitiesByStatus []ChartPoint `json:"activities_by_status"`
	StockByCategory    []ChartPoint `json:"stock_by_category"`
}
