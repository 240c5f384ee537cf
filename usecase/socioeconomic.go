package usecase

import (
	"context"
	"time"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	domainSocio "github.com/AzielCF/az-citydata/domains/socioeconomic"
	"github.com/AzielCF/az-citydata/pkg/fallback"
)

// SocioeconomicSource is satisfied by integrations/gho.Client.
type SocioeconomicSource interface {
	Profile(ctx context.Context) (domainSocio.Profile, error)
	PopulationDensity() float64
}

type socioeconomicService struct {
	source  SocioeconomicSource
	fetcher *fallback.Fetcher[domainSocio.Profile]
}

func NewSocioeconomicService(source SocioeconomicSource, store domainCache.Store, ttl time.Duration) domainSocio.ISocioeconomicUsecase {
	return &socioeconomicService{
		source:  source,
		fetcher: fallback.NewFetcher[domainSocio.Profile]("socioeconomic", store, ttl),
	}
}

// ByCity caches per city even though the upstream figure is not city specific.
func (s *socioeconomicService) ByCity(ctx context.Context, city string) domainSocio.Profile {
	result := s.fetcher.Fetch(ctx, domainSocio.CacheKey(city),
		func(ctx context.Context) (domainSocio.Profile, error) {
			return s.source.Profile(ctx)
		},
		func() domainSocio.Profile {
			return domainSocio.Default(s.source.PopulationDensity(), time.Now())
		},
	)

	profile := result.Payload
	profile.Cached = result.Cached()
	return profile
}
