package usecase

import (
	"context"
	"time"

	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// InventoryReportLine linha do relatório de estoque em PDF.
type InventoryReportLine struct {
	ItemName     string
	CategoryName string
	UnitMeasure  string
	Quantity     int64
	QuantityMin  int64
	LowStock     bool
}

// InventoryReportPDFGenerator porto para o gerador de PDF do relatório de estoque.
type InventoryReportPDFGenerator interface {
	GenerateInventoryReport(ctx context.Context, lines []InventoryReportLine, generatedAt time.Time) ([]byte, error)
}

// ReportPDFUseCase exporta o relatório de estoque em PDF.
type ReportPDFUseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	generator    InventoryReportPDFGenerator
}

// NewReportPDFUseCase constrói o caso de uso.
func NewReportPDFUseCase(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	generator InventoryReportPDFGenerator,
) *ReportPDFUseCase {
	return &ReportPDFUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo, generator: generator}
}

// InventoryReport monta as linhas (todos os itens, com nome da categoria) e gera o PDF.
func (uc *ReportPDFUseCase) InventoryReport(ctx context.Context) ([]byte, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	items, err := uc.itemRepo.List(ctx, repository.ItemFilter{Limit: 1000})
	if err != nil {
		return nil, err
	}
	lines := make([]InventoryReportLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, InventoryReportLine{
			ItemName:     it.Name,
			CategoryName: categoryNames[it.CategoryID],
			UnitMeasure:  it.UnitMeasure,
			Quantity:     it.QuantityCurrent,
			QuantityMin:  it.QuantityMin,
			LowStock:     it.LowStock(),
		})
	}
	return uc.generator.GenerateInventoryReport(ctx, lines, time.Now())
}
