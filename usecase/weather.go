package usecase

import (
	"context"
	"time"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	domainWeather "github.com/AzielCF/az-citydata/domains/weather"
	"github.com/AzielCF/az-citydata/pkg/fallback"
)

// WeatherSource is satisfied by integrations/openweather.Client.
type WeatherSource interface {
	CurrentByCity(ctx context.Context, city string) (domainWeather.Report, error)
}

type weatherService struct {
	source  WeatherSource
	fetcher *fallback.Fetcher[domainWeather.Report]
}

func NewWeatherService(source WeatherSource, store domainCache.Store, ttl time.Duration) domainWeather.IWeatherUsecase {
	return &weatherService{
		source:  source,
		fetcher: fallback.NewFetcher[domainWeather.Report]("weather", store, ttl),
	}
}

func (s *weatherService) ByCity(ctx context.Context, city string) domainWeather.Report {
	result := s.fetcher.Fetch(ctx, domainWeather.CacheKey(city),
		func(ctx context.Context) (domainWeather.Report, error) {
			return s.source.CurrentByCity(ctx, city)
		},
		func() domainWeather.Report { return domainWeather.Default(time.Now()) },
	)

	report := result.Payload
	report.Cached = result.Cached()
	return report
}
