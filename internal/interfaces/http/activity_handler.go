package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// ActivityHandler atende o ciclo de vida das atividades da fazenda.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler constrói o handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar atividade
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityRequest  true  "title, description, type, priority, due_date"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar atividades
// @Tags         activities
// @Produce      json
// @Param        status    query  string  false  "Filtrar por status"
// @Param        priority  query  string  false  "Filtrar por prioridade (ALTA|MEDIA|BAIXA)"
// @Param        limit     query  int     false  "Tamanho da página (padrão 20, máx 100)"
// @Param        offset    query  int     false  "Deslocamento"
// @Success      200  {array}  dto.ActivityResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de paginação inválidos"})
	}
	page.DefaultPage()

	resp, err := h.uc.List(c.Context(), repository.ActivityFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Buscar atividade por ID
// @Tags         activities
// @Produce      json
// @Param        id  path  string  true  "ID da atividade"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Assign godoc
// @Summary      Atribuir atividade a um responsável
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID da atividade"
// @Param        body  body  dto.AssignActivityRequest  true  "assigned_to, responsible"
// @Success      200   {object}  dto.ActivityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/assign [put]
func (h *ActivityHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Assign(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// ChangeStatus godoc
// @Summary      Mudar o status de uma atividade
// @Description  Transições fora do fluxo permitido respondem 409. Reportar
//
//	problema (com_problemas) exige problem_description.
//
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID da atividade"
// @Param        body  body  dto.ChangeActivityStatusRequest  true  "status, responsible, problem_description"
// @Success      200   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/status [put]
func (h *ActivityHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeActivityStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Excluir atividade (lógica)
// @Description  Marca a atividade como excluída e registra a ação no log de
//
//	auditoria. O histórico permanece consultável.
//
// @Tags         activities
// @Param        id           path   string  true   "ID da atividade"
// @Param        responsible  query  string  false  "Quem solicitou a exclusão"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), c.Query("responsible")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Logs godoc
// @Summary      Log de auditoria de uma atividade
// @Tags         activities
// @Produce      json
// @Param        id  path  string  true  "ID da atividade"
// @Success      200  {array}  dto.ActivityLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/logs [get]
func (h *ActivityHandler) Logs(c *fiber.Ctx) error {
	resp, err := h.uc.Logs(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
