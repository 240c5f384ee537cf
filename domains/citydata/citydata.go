package citydata

import (
	"context"
	"time"

	"github.com/AzielCF/az-citydata/domains/sensor"
	"github.com/AzielCF/az-citydata/domains/socioeconomic"
	"github.com/AzielCF/az-citydata/domains/weather"
)

type LookupRequest struct {
	City string `json:"city"`
	// Coordinates is nil when the caller did not supply both lat and lon.
	Coordinates *sensor.Coordinates `json:"coordinates,omitempty"`
}

type Report struct {
	City          string                `json:"city"`
	Timestamp     time.Time             `json:"timestamp"`
	Weather       weather.Report        `json:"weather"`
	Sensor        sensor.Reading        `json:"sensor"`
	Socioeconomic socioeconomic.Profile `json:"socioeconomic"`
}

type ICityDataUsecase interface {
	Lookup(ctx context.Context, request LookupRequest) (Report, error)
}
