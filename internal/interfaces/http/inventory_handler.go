package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/inventory"
)

// InventoryHandler atende as requisições de movimentação e histórico de estoque.
type InventoryHandler struct {
	movements *inventory.RegisterMovementUseCase
	history   *inventory.MovementHistoryUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(movements *inventory.RegisterMovementUseCase, history *inventory.MovementHistoryUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, history: history}
}

// RegisterMovement godoc
// @Summary      Registrar movimentação de estoque
// @Description  Aplica uma entrada ou saída de forma atômica. Saídas que
//
//	deixariam o saldo negativo são rejeitadas com 409.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, type (entrada|saida), quantity, responsible"
// @Success      201   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.movements.RegisterMovement(c.Context(), inventory.MovementInput{
		ItemID:      in.ItemID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Responsible: in.Responsible,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResultResponse{
		MovementID:  result.MovementID,
		ItemID:      in.ItemID,
		NewQuantity: result.NewQuantity,
	})
}

// History godoc
// @Summary      Histórico de movimentações
// @Tags         inventory
// @Produce      json
// @Param        item_id      query  string  false  "Filtrar por item (UUID)"
// @Param        category_id  query  string  false  "Filtrar por categoria (UUID)"
// @Param        limit        query  int     false  "Tamanho da página (padrão 20, máx 100)"
// @Param        offset       query  int     false  "Deslocamento"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de paginação inválidos"})
	}
	resp, err := h.history.History(c.Context(), c.Query("item_id"), c.Query("category_id"), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Recount godoc
// @Summary      Recontagem administrativa de um item
// @Description  Ajusta o saldo para a quantidade contada fisicamente, emitindo
//
//	a movimentação de correção correspondente no histórico.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID do item"
// @Param        body  body  dto.RecountRequest true  "counted_quantity, responsible"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/recount [post]
func (h *InventoryHandler) Recount(c *fiber.Ctx) error {
	var in dto.RecountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	itemID := c.Params("id")
	result, err := h.movements.Recount(c.Context(), itemID, in.CountedQuantity, in.Responsible)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.MovementResultResponse{
		MovementID:  result.MovementID,
		ItemID:      itemID,
		NewQuantity: result.NewQuantity,
	})
}
