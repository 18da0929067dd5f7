// Package scheduler executa a coleta climática periódica.
// Tarefa única de intervalo fixo, com isolamento de falha: erro na API externa
// é logado e a rodada é pulada, sem derrubar o processo nem tocar em outro estado.
package scheduler

import (
	"context"
	"time"

	"github.com/agromanager/agromanager-api/internal/application/usecase"
	"github.com/agromanager/agromanager-api/pkg/logger"
)

// WeatherCollector agenda a coleta de clima a cada intervalo.
type WeatherCollector struct {
	weatherUC *usecase.WeatherUseCase
	interval  time.Duration
	log       *logger.Logger
}

// NewWeatherCollector constrói o agendador.
func NewWeatherCollector(weatherUC *usecase.WeatherUseCase, interval time.Duration, log *logger.Logger) *WeatherCollector {
	return &WeatherCollector{weatherUC: weatherUC, interval: interval, log: log}
}

// Run coleta imediatamente e depois a cada intervalo, até o contexto ser cancelado.
// Deve rodar em sua própria goroutine.
func (c *WeatherCollector) Run(ctx context.Context) {
	c.log.Info().Dur("interval", c.interval).Msg("coleta climática agendada")
	c.collect(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("coleta climática encerrada")
			return
		case <-ticker.C:
			c.collect(ctx)
		}
	}
}

func (c *WeatherCollector) collect(ctx context.Context) {
	reading, err := c.weatherUC.Collect(ctx)
	if err != nil {
		// Log e pula a rodada: falha na API externa não é fatal.
		c.log.Warn().Err(err).Msg("coleta climática falhou, pulando rodada")
		return
	}
	c.log.Info().
		Float64("temperature", reading.Temperature).
		Int("weather_code", reading.WeatherCode).
		Msg("leitura climática registrada")
}
