package weather

import (
	"context"
	"time"
)

type Report struct {
	WeatherTemperature float64   `json:"weatherTemperature"` // °C
	WeatherRainfall    float64   `json:"weatherRainfall"`    // mm over the last hour
	Wind               float64   `json:"wind"`               // m/s
	Timestamp          time.Time `json:"timestamp"`
	Cached             bool      `json:"cached"`
}

// Default is served when the upstream fails and nothing is cached for the city.
func Default(now time.Time) Report {
	return Report{Timestamp: now}
}

func CacheKey(city string) string {
	return "weather_" + city
}

type IWeatherUsecase interface {
	ByCity(ctx context.Context, city string) Report
}
