package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/usecase"
)

// AnimalHandler atende o registro de animais.
type AnimalHandler struct {
	uc *usecase.AnimalUseCase
}

// NewAnimalHandler constrói o handler.
func NewAnimalHandler(uc *usecase.AnimalUseCase) *AnimalHandler {
	return &AnimalHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAnimalRequest  true  "identification, species, sex, ..."
// @Success      201   {object}  dto.AnimalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/animals [post]
func (h *AnimalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAnimalRequest
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
// @Summary      Listar animais
// @Tags         animals
// @Produce      json
// @Param        species  query  string  false  "Filtrar por espécie"
// @Param        limit    query  int     false  "Tamanho da página (padrão 20, máx 100)"
// @Param        offset   query  int     false  "Deslocamento"
// @Success      200  {array}  dto.AnimalResponse
// @Router       /api/animals [get]
func (h *AnimalHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de paginação inválidos"})
	}
	resp, err := h.uc.List(c.Context(), c.Query("species"), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Buscar animal por ID
// @Tags         animals
// @Produce      json
// @Param        id  path  string  true  "ID do animal"
// @Success      200  {object}  dto.AnimalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [get]
func (h *AnimalHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Atualizar animal
// @Description  Espécie, sexo e nascimento são imutáveis após o cadastro.
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID do animal"
// @Param        body  body  dto.UpdateAnimalRequest  true  "campos a alterar"
// @Success      200   {object}  dto.AnimalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [put]
func (h *AnimalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAnimalRequest
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
// @Summary      Excluir animal
// @Tags         animals
// @Param        id  path  string  true  "ID do animal"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/animals/{id} [delete]
func (h *AnimalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
