package dto

import "time"

// WeatherReadingResponse leitura climática em respostas.
type WeatherReadingResponse struct {
	ID          string    `json:"id"`
	Temperature float64   `json:"temperature"`
	Humidity    *float64  `json:"humidity,omitempty"`
	WindSpeed   float64   `json:"wind_speed"`
	WeatherCode int       `json:"weather_code"`
	Condition   string    `json:"condition"` // descrição do weathercode
	Source      string    `json:"source"`
	CollectedAt time.Time `json:"collected_at"`
}

// CurrentWeatherResponse clima ao vivo consultado na Open-Meteo.
type CurrentWeatherResponse struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	WeatherCode   int     `json:"weather_code"`
	Condition     string  `json:"condition"`
}

// WeatherHistoryResponse histórico semanal com agregados.
type WeatherHistoryResponse struct {
	Readings       []WeatherReadingResponse `json:"readings"`
	AvgTemperature float64                  `json:"avg_temperature"`
	MaxTemperature float64                  `json:"max_temperature"`
	MinTemperature float64                  `json:"min_temperature"`
	AvgWindSpeed   float64                  `json:"avg_wind_speed"`
}
