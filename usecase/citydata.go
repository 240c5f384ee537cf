package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	domainSocio "github.com/AzielCF/az-citydata/domains/socioeconomic"
	domainWeather "github.com/AzielCF/az-citydata/domains/weather"
	"github.com/AzielCF/az-citydata/validations"
)

type cityDataService struct {
	weather       domainWeather.IWeatherUsecase
	sensor        domainSensor.ISensorUsecase
	socioeconomic domainSocio.ISocioeconomicUsecase
}

func NewCityDataService(
	weather domainWeather.IWeatherUsecase,
	sensor domainSensor.ISensorUsecase,
	socioeconomic domainSocio.ISocioeconomicUsecase,
) domainCityData.ICityDataUsecase {
	return &cityDataService{
		weather:       weather,
		sensor:        sensor,
		socioeconomic: socioeconomic,
	}
}

// Lookup fans out to every domain and waits for all of them. Each domain
// resolves to a fallback on its own, so the only error is invalid input.
func (s *cityDataService) Lookup(ctx context.Context, request domainCityData.LookupRequest) (domainCityData.Report, error) {
	if err := validations.ValidateLookup(ctx, request); err != nil {
		return domainCityData.Report{}, err
	}

	now := time.Now()
	report := domainCityData.Report{
		City:      request.City,
		Timestamp: now,
		Sensor:    domainSensor.Default(now),
	}

	var g errgroup.Group
	g.Go(func() error {
		report.Weather = s.weather.ByCity(ctx, request.City)
		return nil
	})
	g.Go(func() error {
		report.Socioeconomic = s.socioeconomic.ByCity(ctx, request.City)
		return nil
	})
	if request.Coordinates != nil {
		coords := *request.Coordinates
		g.Go(func() error {
			report.Sensor = s.sensor.ByCoordinates(ctx, coords)
			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}
