package sensor

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBoxDelta is the half side, in degrees, of the box searched around a coordinate.
const BoundingBoxDelta = 0.01

type Reading struct {
	SensorAirQuality  float64   `json:"sensorAirQuality"`  // PM2.5, µg/m³
	SensorTemperature float64   `json:"sensorTemperature"` // °C
	Timestamp         time.Time `json:"timestamp"`
	Cached            bool      `json:"cached"`
}

// Default is the all-zero reading, flagged as cached.
func Default(now time.Time) Reading {
	return Reading{Timestamp: now, Cached: true}
}

// CacheKey rounds to two decimals so nearby requests share an entry.
func CacheKey(c Coordinates) string {
	return fmt.Sprintf("sensor_%.2f_%.2f", c.Lat, c.Lon)
}

// ParseCoordinates yields nil unless both values parse to non-zero numbers;
// a zero or unparseable value counts as not supplied.
func ParseCoordinates(rawLat, rawLon string) *Coordinates {
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || lat == 0 {
		return nil
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil || lon == 0 {
		return nil
	}
	return &Coordinates{Lat: lat, Lon: lon}
}

type ISensorUsecase interface {
	ByCoordinates(ctx context.Context, coords Coordinates) Reading
}
