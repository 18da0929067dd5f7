package ports

import "context"

// CurrentWeather leitura instantânea devolvida pelo provedor externo.
type CurrentWeather struct {
	Temperature   float64
	WindSpeed     float64
	WindDirection float64
	WeatherCode   int
}

// WeatherProvider porto para o serviço externo de clima (Open-Meteo).
type WeatherProvider interface {
	Current(ctx context.Context) (*CurrentWeather, error)
}
