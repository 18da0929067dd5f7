// seed popula o banco com dados de demonstração: categorias e itens de
// insumo, saldos de abertura via movimentações, animais e atividades.
//
// Uso: go run ./cmd/seed
// Idempotente por verificação simples: não insere nada se já houver categorias.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/inventory"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/infrastructure/postgres"
	"github.com/agromanager/agromanager-api/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("seed concluído")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("carregar configuração: %w", err)
	}

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	animalRepo := postgres.NewAnimalRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	existing, err := categoryRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("banco já populado, nada a fazer")
		return nil
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, categoryRepo, movementRepo)
	movementUC := inventory.NewRegisterMovementUseCase(txRunner)
	animalUC := usecase.NewAnimalUseCase(animalRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)

	// Categorias e itens
	type seedItem struct {
		name     string
		unit     string
		initial  int64
		min, max int64
	}
	catalog := map[string][]seedItem{
		"Ração":        {{"Ração bovina 25kg", "saco", 40, 10, 100}, {"Ração para aves 20kg", "saco", 12, 15, 60}},
		"Medicamentos": {{"Ivermectina 500ml", "frasco", 8, 5, 30}, {"Vacina aftosa", "dose", 120, 50, 500}},
		"Ferramentas":  {{"Arame farpado 500m", "rolo", 6, 2, 20}},
		"Sementes":     {{"Milho híbrido 20kg", "saco", 25, 10, 80}},
	}
	for catName, items := range catalog {
		cat, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: catName})
		if err != nil {
			return fmt.Errorf("categoria %q: %w", catName, err)
		}
		for _, si := range items {
			item, err := itemUC.Create(ctx, dto.CreateItemRequest{
				Name:        si.name,
				CategoryID:  cat.ID,
				UnitMeasure: si.unit,
				QuantityMin: si.min,
				QuantityMax: si.max,
			})
			if err != nil {
				return fmt.Errorf("item %q: %w", si.name, err)
			}
			if si.initial > 0 {
				_, err = movementUC.RegisterMovement(ctx, inventory.MovementInput{
					ItemID:      item.ID,
					Type:        entity.MovementTypeIn,
					Quantity:    si.initial,
					Responsible: "seed",
				})
				if err != nil {
					return fmt.Errorf("saldo inicial de %q: %w", si.name, err)
				}
			}
		}
	}

	// Animais
	birth := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	animals := []dto.CreateAnimalRequest{
		{Name: "Mimosa", Species: "Bovino", Breed: "Girolando", Sex: entity.AnimalSexFemale, BirthDate: birth("2022-03-10"), Identification: "BR-0001", Purpose: entity.AnimalPurposeMilk, Origin: entity.AnimalOriginBirth, InitialWeight: decimal.NewFromInt(380)},
		{Name: "Trovão", Species: "Bovino", Breed: "Nelore", Sex: entity.AnimalSexMale, BirthDate: birth("2021-08-22"), Identification: "BR-0002", Purpose: entity.AnimalPurposeBeef, Origin: entity.AnimalOriginPurchase, InitialWeight: decimal.NewFromInt(520)},
		{Name: "Estrela", Species: "Equino", Breed: "Mangalarga", Sex: entity.AnimalSexFemale, BirthDate: birth("2019-11-02"), Identification: "BR-0003", Purpose: entity.AnimalPurposeBreeding, Origin: entity.AnimalOriginPurchase, InitialWeight: decimal.NewFromInt(410)},
	}
	for _, a := range animals {
		if _, err := animalUC.Create(ctx, a); err != nil {
			return fmt.Errorf("animal %q: %w", a.Name, err)
		}
	}

	// Atividades
	deadline := time.Now().AddDate(0, 0, 3)
	activities := []dto.CreateActivityRequest{
		{Title: "Vacinação do rebanho bovino", Description: "Aplicar vacina contra aftosa no lote 2", Type: "AGROPECUARIA", Priority: "ALTA", Responsible: "seed", Deadline: &deadline},
		{Title: "Reparo da cerca do pasto norte", Type: "GERAL", Priority: "MEDIA", Responsible: "seed"},
		{Title: "Plantio de milho na gleba 4", Type: "AGRICOLA", Priority: "ALTA", Responsible: "seed", Deadline: &deadline},
	}
	for _, act := range activities {
		if _, err := activityUC.Create(ctx, act); err != nil {
			return fmt.Errorf("atividade %q: %w", act.Title, err)
		}
	}

	return nil
}
