package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agromanager/agromanager-api/internal/application/usecase"
)

// WeatherHandler atende as consultas climáticas.
type WeatherHandler struct {
	uc *usecase.WeatherUseCase
}

// NewWeatherHandler constrói o handler.
func NewWeatherHandler(uc *usecase.WeatherUseCase) *WeatherHandler {
	return &WeatherHandler{uc: uc}
}

// Current godoc
// @Summary      Clima atual
// @Description  Consulta a condição atual direto no provedor externo, sem
//
//	passar pelas leituras persistidas.
//
// @Tags         weather
// @Produce      json
// @Success      200  {object}  dto.CurrentWeatherResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/weather/current [get]
func (h *WeatherHandler) Current(c *fiber.Ctx) error {
	resp, err := h.uc.Current(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"code":    "WEATHER_UNAVAILABLE",
			"message": "provedor de clima indisponível",
		})
	}
	return c.JSON(resp)
}

// Latest godoc
// @Summary      Última leitura persistida
// @Tags         weather
// @Produce      json
// @Success      200  {object}  dto.WeatherReadingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/weather/latest [get]
func (h *WeatherHandler) Latest(c *fiber.Ctx) error {
	resp, err := h.uc.Latest(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// History godoc
// @Summary      Histórico climático semanal
// @Tags         weather
// @Produce      json
// @Success      200  {object}  dto.WeatherHistoryResponse
// @Router       /api/weather/history [get]
func (h *WeatherHandler) History(c *fiber.Ctx) error {
	resp, err := h.uc.WeeklyHistory(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
