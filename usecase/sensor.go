package usecase

import (
	"context"
	"time"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	"github.com/AzielCF/az-citydata/pkg/fallback"
)

// SensorSource is satisfied by integrations/opensensemap.Client.
type SensorSource interface {
	NearestReading(ctx context.Context, coords domainSensor.Coordinates) (domainSensor.Reading, error)
}

type sensorService struct {
	source  SensorSource
	fetcher *fallback.Fetcher[domainSensor.Reading]
}

func NewSensorService(source SensorSource, store domainCache.Store, ttl time.Duration) domainSensor.ISensorUsecase {
	return &sensorService{
		source:  source,
		fetcher: fallback.NewFetcher[domainSensor.Reading]("sensor", store, ttl),
	}
}

func (s *sensorService) ByCoordinates(ctx context.Context, coords domainSensor.Coordinates) domainSensor.Reading {
	result := s.fetcher.Fetch(ctx, domainSensor.CacheKey(coords),
		func(ctx context.Context) (domainSensor.Reading, error) {
			return s.source.NearestReading(ctx, coords)
		},
		func() domainSensor.Reading { return domainSensor.Default(time.Now()) },
	)

	reading := result.Payload
	reading.Cached = result.Cached()
	return reading
}
