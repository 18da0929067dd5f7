// Package weather implementa o adaptador para a API pública Open-Meteo,
// usada na coleta periódica e na consulta de clima ao vivo.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agromanager/agromanager-api/internal/application/ports"
)

// Verificação em tempo de compilação de que OpenMeteoClient implementa WeatherProvider.
var _ ports.WeatherProvider = (*OpenMeteoClient)(nil)

const openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoClient adaptador que implementa WeatherProvider chamando a API REST
// da Open-Meteo. Usa apenas net/http da biblioteca padrão, sem dependências extras.
type OpenMeteoClient struct {
	latitude    float64
	longitude   float64
	overrideURL string // sobrescreve o endpoint nos testes
	httpClient  *http.Client
}

// NewOpenMeteoClient constrói o cliente para as coordenadas da fazenda.
func NewOpenMeteoClient(latitude, longitude float64) *OpenMeteoClient {
	return &OpenMeteoClient{
		latitude:  latitude,
		longitude: longitude,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ── Estruturas internas para a resposta da Open-Meteo ─────────────────────────

type openMeteoResponse struct {
	Current openMeteoCurrent `json:"current"`
}

type openMeteoCurrent struct {
	Temperature   float64 `json:"temperature_2m"`
	WindSpeed     float64 `json:"wind_speed_10m"`
	WindDirection float64 `json:"wind_direction_10m"`
	WeatherCode   int     `json:"weather_code"`
}

// Current consulta o clima atual.
func (c *OpenMeteoClient) Current(ctx context.Context) (*ports.CurrentWeather, error) {
	url := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,wind_speed_10m,wind_direction_10m,weather_code&timezone=auto",
		c.baseURL(), c.latitude, c.longitude,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("montar requisição open-meteo: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar open-meteo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("open-meteo status %d: %s", resp.StatusCode, string(body))
	}

	var out openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decodificar resposta open-meteo: %w", err)
	}
	return &ports.CurrentWeather{
		Temperature:   out.Current.Temperature,
		WindSpeed:     out.Current.WindSpeed,
		WindDirection: out.Current.WindDirection,
		WeatherCode:   out.Current.WeatherCode,
	}, nil
}

// baseURL permite sobrescrever o endpoint nos testes.
func (c *OpenMeteoClient) baseURL() string {
	if c.overrideURL != "" {
		return c.overrideURL
	}
	return openMeteoBaseURL
}
