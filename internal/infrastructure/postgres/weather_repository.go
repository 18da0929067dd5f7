package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

var _ repository.WeatherRepository = (*WeatherRepo)(nil)

// WeatherRepo implementação de WeatherRepository sobre PostgreSQL.
type WeatherRepo struct {
	q Querier
}

// NewWeatherRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWeatherRepository(q Querier) *WeatherRepo {
	return &WeatherRepo{q: q}
}

// Create persiste uma leitura climática.
func (r *WeatherRepo) Create(ctx context.Context, reading *entity.WeatherReading) error {
	query := `
		INSERT INTO weather_readings (id, temperature, humidity, wind_speed, weather_code,
			source, collected_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		reading.ID, reading.Temperature, reading.Humidity, reading.WindSpeed,
		reading.WeatherCode, reading.Source, reading.CollectedAt, reading.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create weather reading: %w", err)
	}
	return nil
}

// Latest devolve a leitura mais recente; source vazio = qualquer origem.
// Devolve nil se ainda não há leituras.
func (r *WeatherRepo) Latest(ctx context.Context, source string) (*entity.WeatherReading, error) {
	query := `
		SELECT id, temperature, humidity, wind_speed, weather_code, source, collected_at, created_at
		FROM weather_readings`
	args := []any{}
	if source != "" {
		query += ` WHERE source = $1`
		args = append(args, source)
	}
	query += ` ORDER BY collected_at DESC LIMIT 1`

	var w entity.WeatherReading
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&w.ID, &w.Temperature, &w.Humidity, &w.WindSpeed, &w.WeatherCode,
		&w.Source, &w.CollectedAt, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest weather reading: %w", err)
	}
	return &w, nil
}

// ListSince lista leituras a partir da data, por coleta decrescente.
func (r *WeatherRepo) ListSince(ctx context.Context, since time.Time) ([]*entity.WeatherReading, error) {
	query := `
		SELECT id, temperature, humidity, wind_speed, weather_code, source, collected_at, created_at
		FROM weather_readings WHERE collected_at >= $1
		ORDER BY collected_at DESC`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list weather readings: %w", err)
	}
	defer rows.Close()
	var list []*entity.WeatherReading
	for rows.Next() {
		var w entity.WeatherReading
		if err := rows.Scan(&w.ID, &w.Temperature, &w.Humidity, &w.WindSpeed,
			&w.WeatherCode, &w.Source, &w.CollectedAt, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan weather reading: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// StatsSince agregados de temperatura e vento do período. Devolve nil se não há leituras.
func (r *WeatherRepo) StatsSince(ctx context.Context, since time.Time) (*repository.WeatherStats, error) {
	query := `
		SELECT AVG(temperature), MAX(temperature), MIN(temperature), AVG(wind_speed)
		FROM weather_readings WHERE collected_at >= $1`
	var avgT, maxT, minT, avgW *float64
	err := r.q.QueryRow(ctx, query, since).Scan(&avgT, &maxT, &minT, &avgW)
	if err != nil {
		return nil, fmt.Errorf("weather stats: %w", err)
	}
	if avgT == nil {
		return nil, nil
	}
	return &repository.WeatherStats{
		AvgTemperature: *avgT,
		MaxTemperature: *maxT,
		MinTemperature: *minT,
		AvgWindSpeed:   *avgW,
	}, nil
}
