// Package pdf implementa a geração do relatório de estoque em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: AgroManager / Relatório de Estoque │ data geração  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Item | Categoria | Qtd | Mín | Unid | Situação     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de itens / itens em estoque baixo            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/agromanager/agromanager-api/internal/application/usecase"
)

var _ usecase.InventoryReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 185, Blue: 129} // verde da identidade visual
	colorDark    = &props.Color{Red: 46, Green: 93, Blue: 58}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 40, Blue: 40}
)

// MarotoReportGenerator implementa InventoryReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport gera o PDF e devolve os bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	lines []usecase.InventoryReportLine,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		WithAuthor("AgroManager", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(lines))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("AgroManager", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorDark, Top: 1,
			}),
			text.New("Relatório de Estoque", props.Text{
				Size: 10, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorDark, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 4, align.Left),
		h("Categoria", 3, align.Left),
		h("Qtd.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Unid.", 1, align.Center),
		h("Situação", 2, align.Center),
	)
}

func tableLineRows(lines []usecase.InventoryReportLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		status := "OK"
		statusColor := colorGray
		if l.LowStock {
			status = "Estoque baixo"
			statusColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.ItemName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.CategoryName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.QuantityMin), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(l.UnitMeasure, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(status, props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor})),
		))
	}
	return result
}

func footerRow(lines []usecase.InventoryReportLine) core.Row {
	low := 0
	for _, l := range lines {
		if l.LowStock {
			low++
		}
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d itens no catálogo, %d em estoque baixo", len(lines), low), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorDark,
			}),
		),
	)
}
