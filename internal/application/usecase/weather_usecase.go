package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agromanager/agromanager-api/internal/application/dto"
	"github.com/agromanager/agromanager-api/internal/application/ports"
	"github.com/agromanager/agromanager-api/internal/domain"
	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// WeatherUseCase monitoramento climático: consulta ao vivo, coleta periódica e histórico.
// Não compartilha nenhum estado mutável com o estoque.
type WeatherUseCase struct {
	repo     repository.WeatherRepository
	provider ports.WeatherProvider
}

// NewWeatherUseCase constrói o caso de uso.
func NewWeatherUseCase(repo repository.WeatherRepository, provider ports.WeatherProvider) *WeatherUseCase {
	return &WeatherUseCase{repo: repo, provider: provider}
}

// Current consulta o clima ao vivo na Open-Meteo, sem persistir nada.
func (uc *WeatherUseCase) Current(ctx context.Context) (*dto.CurrentWeatherResponse, error) {
	w, err := uc.provider.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CurrentWeatherResponse{
		Temperature:   w.Temperature,
		WindSpeed:     w.WindSpeed,
		WindDirection: w.WindDirection,
		WeatherCode:   w.WeatherCode,
		Condition:     entity.WeatherDescription(w.WeatherCode),
	}, nil
}

// Collect consulta o provedor e grava a leitura como origem API.
// Chamado pelo agendador periódico; o chamador decide o que fazer com o erro
// (o agendador apenas loga e pula a rodada).
func (uc *WeatherUseCase) Collect(ctx context.Context) (*entity.WeatherReading, error) {
	w, err := uc.provider.Current(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	reading := &entity.WeatherReading{
		ID:          uuid.New().String(),
		Temperature: w.Temperature,
		Humidity:    nil, // current_weather da Open-Meteo não traz umidade
		WindSpeed:   w.WindSpeed,
		WeatherCode: w.WeatherCode,
		Source:      entity.WeatherSourceAPI,
		CollectedAt: now,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, reading); err != nil {
		return nil, err
	}
	return reading, nil
}

// Latest devolve a última leitura persistida, ou nil se ainda não há coletas.
func (uc *WeatherUseCase) Latest(ctx context.Context) (*dto.WeatherReadingResponse, error) {
	reading, err := uc.repo.Latest(ctx, "")
	if err != nil {
		return nil, err
	}
	if reading == nil {
		return nil, domain.ErrNotFound
	}
	return toWeatherResponse(reading), nil
}

// WeeklyHistory leituras dos últimos 7 dias com agregados de temperatura e vento.
func (uc *WeatherUseCase) WeeklyHistory(ctx context.Context) (*dto.WeatherHistoryResponse, error) {
	since := time.Now().AddDate(0, 0, -7)
	readings, err := uc.repo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}
	stats, err := uc.repo.StatsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	out := &dto.WeatherHistoryResponse{Readings: make([]dto.WeatherReadingResponse, 0, len(readings))}
	for _, r := range readings {
		out.Readings = append(out.Readings, *toWeatherResponse(r))
	}
	if stats != nil {
		out.AvgTemperature = stats.AvgTemperature
		out.MaxTemperature = stats.MaxTemperature
		out.MinTemperature = stats.MinTemperature
		out.AvgWindSpeed = stats.AvgWindSpeed
	}
	return out, nil
}

func toWeatherResponse(r *entity.WeatherReading) *dto.WeatherReadingResponse {
	return &dto.WeatherReadingResponse{
		ID:          r.ID,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		WindSpeed:   r.WindSpeed,
		WeatherCode: r.WeatherCode,
		Condition:   entity.WeatherDescription(r.WeatherCode),
		Source:      r.Source,
		CollectedAt: r.CollectedAt,
	}
}
