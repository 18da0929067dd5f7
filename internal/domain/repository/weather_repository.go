package repository

import (
	"context"
	"time"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
)

// WeatherStats agregados de um período de leituras.
type WeatherStats struct {
	AvgTemperature float64
	MaxTemperature float64
	MinTemperature float64
	AvgWindSpeed   float64
}

// WeatherRepository define o porto de persistência para leituras climáticas.
type WeatherRepository interface {
	Create(ctx context.Context, reading *entity.WeatherReading) error
	// Latest devolve a leitura mais recente; source vazio = qualquer origem.
	Latest(ctx context.Context, source string) (*entity.WeatherReading, error)
	ListSince(ctx context.Context, since time.Time) ([]*entity.WeatherReading, error)
	StatsSince(ctx context.Context, since time.Time) (*WeatherStats, error)
}
