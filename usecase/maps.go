package usecase

import (
	"context"
	"errors"
	"net/url"

	"github.com/sirupsen/logrus"

	domainMaps "github.com/AzielCF/az-citydata/domains/maps"
	"github.com/AzielCF/az-citydata/infrastructure/upstream"
	pkgError "github.com/AzielCF/az-citydata/pkg/error"
	"github.com/AzielCF/az-citydata/validations"
)

// MapsProvider is satisfied by integrations/tomtom.Client.
type MapsProvider interface {
	Get(ctx context.Context, path string, params map[string]string) (domainMaps.Response, error)
}

type mapsService struct {
	provider MapsProvider
}

func NewMapsService(provider MapsProvider) domainMaps.IMapsUsecase {
	return &mapsService{provider: provider}
}

func (s *mapsService) Geocode(ctx context.Context, request domainMaps.GeocodeRequest) (domainMaps.Response, error) {
	if err := validations.ValidateGeocode(ctx, request); err != nil {
		return domainMaps.Response{}, err
	}
	return s.forward(ctx, "/search/2/geocode/"+url.PathEscape(request.Query)+".json", map[string]string{
		"limit":      request.Limit,
		"countrySet": request.CountrySet,
		"language":   request.Language,
	})
}

func (s *mapsService) ReverseGeocode(ctx context.Context, request domainMaps.ReverseGeocodeRequest) (domainMaps.Response, error) {
	if err := validations.ValidateReverseGeocode(ctx, request); err != nil {
		return domainMaps.Response{}, err
	}
	return s.forward(ctx, "/search/2/reverseGeocode/"+request.Position+".json", map[string]string{
		"language": request.Language,
	})
}

func (s *mapsService) FuzzySearch(ctx context.Context, request domainMaps.FuzzySearchRequest) (domainMaps.Response, error) {
	if err := validations.ValidateFuzzySearch(ctx, request); err != nil {
		return domainMaps.Response{}, err
	}
	return s.forward(ctx, "/search/2/search/"+url.PathEscape(request.Query)+".json", map[string]string{
		"limit":    request.Limit,
		"language": request.Language,
	})
}

func (s *mapsService) POISearch(ctx context.Context, request domainMaps.POISearchRequest) (domainMaps.Response, error) {
	if err := validations.ValidatePOISearch(ctx, request); err != nil {
		return domainMaps.Response{}, err
	}
	return s.forward(ctx, "/search/2/poiSearch/"+url.PathEscape(request.Query)+".json", map[string]string{
		"limit":  request.Limit,
		"lat":    request.Lat,
		"lon":    request.Lon,
		"radius": request.Radius,
	})
}

func (s *mapsService) NearbySearch(ctx context.Context, request domainMaps.NearbySearchRequest) (domainMaps.Response, error) {
	if err := validations.ValidateNearbySearch(ctx, request); err != nil {
		return domainMaps.Response{}, err
	}
	return s.forward(ctx, "/search/2/nearbySearch/.json", map[string]string{
		"lat":    request.Lat,
		"lon":    request.Lon,
		"radius": request.Radius,
		"limit":  request.Limit,
	})
}

func (s *mapsService) CalculateRoute(ctx context.Context, request domainMaps.CalculateRouteRequest) (domainMaps.Response, error) {
	if err := validations.ValidateCalculateRoute(ctx, request); err != nil {
		return domainMaps.Response{}, err
	}
	return s.forward(ctx, "/routing/1/calculateRoute/"+request.RoutePlanningLocations+"/"+request.ContentType, map[string]string{
		"language": request.Language,
	})
}

func (s *mapsService) ReachableRange(ctx context.Context, request domainMaps.ReachableRangeRequest) (domainMaps.Response, error) {
	if err := validations.ValidateReachableRange(ctx, request); err != nil {
		return domainMaps.Response{}, err
	}
	return s.forward(ctx, "/routing/1/calculateReachableRange/"+request.Origin+"/"+request.ContentType, request.Params)
}

func (s *mapsService) TrafficIncidents(ctx context.Context, request domainMaps.PassthroughRequest) (domainMaps.Response, error) {
	return s.forward(ctx, "/traffic/services/1/incidentDetails", request.Params)
}

func (s *mapsService) StaticMap(ctx context.Context, request domainMaps.PassthroughRequest) (domainMaps.Response, error) {
	resp, err := s.forward(ctx, "/map/1/staticimage", request.Params)
	if err != nil {
		return resp, err
	}
	resp.ContentType = "image/png"
	return resp, nil
}

// forward converts any provider failure into an UpstreamError carrying its message.
func (s *mapsService) forward(ctx context.Context, path string, params map[string]string) (domainMaps.Response, error) {
	resp, err := s.provider.Get(ctx, path, params)
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			logrus.Warnf("[MAPS] %s answered %d", path, statusErr.StatusCode)
		} else {
			logrus.WithError(err).Warnf("[MAPS] %s failed", path)
		}
		return domainMaps.Response{}, pkgError.UpstreamError(err.Error())
	}
	return resp, nil
}
