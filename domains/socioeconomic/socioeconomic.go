package socioeconomic

import (
	"context"
	"time"
)

type Profile struct {
	PopulationDensity float64   `json:"populationDensity"`
	MalariaCases      float64   `json:"malariaCases"`
	Timestamp         time.Time `json:"timestamp"`
	Cached            bool      `json:"cached"`
}

// Default keeps the configured population density and zero cases.
func Default(populationDensity float64, now time.Time) Profile {
	return Profile{PopulationDensity: populationDensity, Timestamp: now}
}

func CacheKey(city string) string {
	return "socioeconomic_" + city
}

type ISocioeconomicUsecase interface {
	ByCity(ctx context.Context, city string) Profile
}
