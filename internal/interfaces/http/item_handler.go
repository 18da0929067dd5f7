package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// ItemHandler atende o CRUD do catálogo de itens de estoque.
// A quantidade corrente não é editável por aqui: só o motor de movimentações
// e a recontagem administrativa escrevem nesse campo.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler constrói o handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Criar item de estoque
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category_id, unit_measure, initial_quantity, quantity_min, quantity_max, location, description"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
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
// @Summary      Listar itens
// @Tags         items
// @Produce      json
// @Param        category_id  query  string  false  "Filtrar por categoria (UUID)"
// @Param        active       query  bool    false  "Filtrar por ativo/inativo"
// @Param        low_stock    query  bool    false  "Somente itens em estoque baixo"
// @Param        limit        query  int     false  "Tamanho da página (padrão 20, máx 100)"
// @Param        offset       query  int     false  "Deslocamento"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de paginação inválidos"})
	}
	page.DefaultPage()

	filter := repository.ItemFilter{
		CategoryID: c.Query("category_id"),
		LowStock:   c.QueryBool("low_stock"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	if raw := c.Query("active"); raw != "" {
		active := c.QueryBool("active")
		filter.Active = &active
	}

	resp, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Buscar item por ID
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "ID do item"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Atualizar item
// @Description  Atualiza dados cadastrais. O campo quantity_current é ignorado:
//
//	ajustes de saldo passam por movimentações ou recontagem.
//
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do item"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a alterar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Excluir item
// @Description  Itens com movimentações registradas são desativados em vez de
//
//	removidos, preservando o histórico.
//
// @Tags         items
// @Param        id  path  string  true  "ID do item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
