package entity

import "time"

// Origens de um registro climático.
const (
	WeatherSourceAPI    = "API"
	WeatherSourceSensor = "Sensor"
)

// WeatherReading representa uma leitura climática coletada da Open-Meteo ou de sensor local.
type WeatherReading struct {
	ID          string
	Temperature float64  // °C
	Humidity    *float64 // %; a Open-Meteo current_weather não informa, fica nulo
	WindSpeed   float64  // km/h
	WeatherCode int
	Source      string
	CollectedAt time.Time
	CreatedAt   time.Time
}

// weatherDescriptions tabela weathercode (WMO) -> descrição exibida.
var weatherDescriptions = map[int]string{
	0:  "Céu limpo",
	1:  "Poucas nuvens",
	2:  "Nuvens dispersas",
	3:  "Nublado",
	45: "Névoa",
	48: "Névoa com deposição",
	51: "Garoa leve",
	53: "Garoa moderada",
	55: "Garoa intensa",
	61: "Chuva leve",
	63: "Chuva moderada",
	65: "Chuva forte",
	71: "Neve leve",
	73: "Neve moderada",
	75: "Neve intensa",
	95: "Tempestade",
	96: "Tempestade com granizo leve",
	99: "Tempestade com granizo forte",
}

// WeatherDescription traduz um weathercode WMO para texto. "Indefinido" para códigos fora da tabela.
func WeatherDescription(code int) string {
	if d, ok := weatherDescriptions[code]; ok {
		return d
	}
	return "Indefinido"
}
