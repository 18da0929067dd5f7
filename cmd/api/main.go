package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/agromanager/agromanager-api/internal/application/inventory"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
	infrapdf "github.com/agromanager/agromanager-api/internal/infrastructure/pdf"
	"github.com/agromanager/agromanager-api/internal/infrastructure/postgres"
	"github.com/agromanager/agromanager-api/internal/infrastructure/scheduler"
	infraweather "github.com/agromanager/agromanager-api/internal/infrastructure/weather"
	httpRouter "github.com/agromanager/agromanager-api/internal/interfaces/http"
	"github.com/agromanager/agromanager-api/pkg/config"
	"github.com/agromanager/agromanager-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	animalRepo := postgres.NewAnimalRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	weatherRepo := postgres.NewWeatherRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	movementHistoryUC := inventory.NewMovementHistoryUseCase(movementRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, categoryRepo, movementRepo)
	animalUC := usecase.NewAnimalUseCase(animalRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, activityRepo)

	weatherProvider := infraweather.NewOpenMeteoClient(cfg.Weather.Latitude, cfg.Weather.Longitude)
	weatherUC := usecase.NewWeatherUseCase(weatherRepo, weatherProvider)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportPDFUC := usecase.NewReportPDFUseCase(itemRepo, categoryRepo, pdfGenerator)

	// Coleta climática periódica em segundo plano
	collector := scheduler.NewWeatherCollector(
		weatherUC,
		time.Duration(cfg.Weather.CollectMinutes)*time.Minute,
		log,
	)
	go collector.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       categoryUC,
		ItemUC:           itemUC,
		RegisterMovement: registerMovementUC,
		MovementHistory:  movementHistoryUC,
		AnimalUC:         animalUC,
		ActivityUC:       activityUC,
		WeatherUC:        weatherUC,
		DashboardUC:      dashboardUC,
		ReportPDFUC:      reportPDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
