package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agromanager/agromanager-api/internal/application/usecase"
)

// DashboardHandler atende o resumo gerencial e os relatórios.
type DashboardHandler struct {
	uc        *usecase.DashboardUseCase
	reportPDF *usecase.ReportPDFUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, reportPDF *usecase.ReportPDFUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reportPDF: reportPDF}
}

// Summary godoc
// @Summary      Resumo do painel
// @Description  Totais de animais, tarefas pendentes e urgentes, itens em
//
//	estoque e em estoque baixo, além das atividades recentes.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Report godoc
// @Summary      Dados para os gráficos de relatório
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	resp, err := h.uc.Report(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// InventoryReportPDF godoc
// @Summary      Relatório de estoque em PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *DashboardHandler) InventoryReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reportPDF.InventoryReport(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := fmt.Sprintf("relatorio-estoque-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
