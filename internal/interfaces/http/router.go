package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agromanager/agromanager-api/internal/application/inventory"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ItemUC           *usecase.ItemUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementHistory  *inventory.MovementHistoryUseCase
	AnimalUC         *usecase.AnimalUseCase
	ActivityUC       *usecase.ActivityUseCase
	WeatherUC        *usecase.WeatherUseCase
	DashboardUC      *usecase.DashboardUseCase
	ReportPDFUC      *usecase.ReportPDFUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorias
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Itens de estoque
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Movimentações e recontagem
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementHistory)
	invGroup := api.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.History)
	items.Post("/:id/recount", inventoryHandler.Recount)

	// Animais
	animals := api.Group("/animals")
	animalHandler := NewAnimalHandler(deps.AnimalUC)
	animals.Post("/", animalHandler.Create)
	animals.Get("/", animalHandler.List)
	animals.Get("/:id", animalHandler.GetByID)
	animals.Put("/:id", animalHandler.Update)
	animals.Delete("/:id", animalHandler.Delete)

	// Atividades
	activities := api.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Post("/", activityHandler.Create)
	activities.Get("/", activityHandler.List)
	activities.Get("/:id", activityHandler.GetByID)
	activities.Put("/:id/assign", activityHandler.Assign)
	activities.Put("/:id/status", activityHandler.ChangeStatus)
	activities.Delete("/:id", activityHandler.Delete)
	activities.Get("/:id/logs", activityHandler.Logs)

	// Clima
	weather := api.Group("/weather")
	weatherHandler := NewWeatherHandler(deps.WeatherUC)
	weather.Get("/current", weatherHandler.Current)
	weather.Get("/latest", weatherHandler.Latest)
	weather.Get("/history", weatherHandler.History)

	// Painel e relatórios
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportPDFUC)
	api.Get("/dashboard", dashboardHandler.Summary)
	api.Get("/dashboard/report", dashboardHandler.Report)
	api.Get("/reports/inventory.pdf", dashboardHandler.InventoryReportPDF)
}
