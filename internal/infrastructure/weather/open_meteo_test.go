package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMeteoClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-20.7539", r.URL.Query().Get("latitude"))
		assert.Equal(t, "-42.8819", r.URL.Query().Get("longitude"))
		assert.Contains(t, r.URL.Query().Get("current"), "temperature_2m")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"current": {
				"temperature_2m": 24.6,
				"wind_speed_10m": 9.3,
				"wind_direction_10m": 135,
				"weather_code": 2
			}
		}`))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(-20.7539, -42.8819)
	client.overrideURL = server.URL

	current, err := client.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 24.6, current.Temperature)
	assert.Equal(t, 9.3, current.WindSpeed)
	assert.Equal(t, 135.0, current.WindDirection)
	assert.Equal(t, 2, current.WeatherCode)
}

func TestOpenMeteoClient_StatusNaoOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewOpenMeteoClient(0, 0)
	client.overrideURL = server.URL

	_, err := client.Current(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestOpenMeteoClient_RespostaInvalida(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(0, 0)
	client.overrideURL = server.URL

	_, err := client.Current(context.Background())
	require.Error(t, err)
}
