package validations

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainMaps "github.com/AzielCF/az-citydata/domains/maps"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	pkgError "github.com/AzielCF/az-citydata/pkg/error"
)

func TestValidateLookup(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		request domainCityData.LookupRequest
		wantErr bool
	}{
		{"city only", domainCityData.LookupRequest{City: "Delhi"}, false},
		{"city with coordinates", domainCityData.LookupRequest{City: "Delhi", Coordinates: &domainSensor.Coordinates{Lat: 28.61, Lon: 77.23}}, false},
		{"empty city", domainCityData.LookupRequest{}, true},
		{"city too long", domainCityData.LookupRequest{City: strings.Repeat("a", 129)}, true},
		{"latitude out of range", domainCityData.LookupRequest{City: "Delhi", Coordinates: &domainSensor.Coordinates{Lat: -91, Lon: 1}}, true},
		{"longitude out of range", domainCityData.LookupRequest{City: "Delhi", Coordinates: &domainSensor.Coordinates{Lat: 1, Lon: 181}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLookup(ctx, tt.request)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr pkgError.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateMaps(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, ValidateGeocode(ctx, domainMaps.GeocodeRequest{Query: "Delhi"}))
	assert.Error(t, ValidateGeocode(ctx, domainMaps.GeocodeRequest{}))
	assert.NoError(t, ValidateReverseGeocode(ctx, domainMaps.ReverseGeocodeRequest{Position: "28.61,77.23"}))
	assert.Error(t, ValidateReverseGeocode(ctx, domainMaps.ReverseGeocodeRequest{Position: "28.61,77.23/../../x"}))
	assert.Error(t, ValidateFuzzySearch(ctx, domainMaps.FuzzySearchRequest{}))
	assert.Error(t, ValidatePOISearch(ctx, domainMaps.POISearchRequest{Lat: "1", Lon: "2"}))
	assert.NoError(t, ValidateNearbySearch(ctx, domainMaps.NearbySearchRequest{Lat: "1", Lon: "2"}))
	assert.Error(t, ValidateNearbySearch(ctx, domainMaps.NearbySearchRequest{Lon: "2"}))
	assert.Error(t, ValidateCalculateRoute(ctx, domainMaps.CalculateRouteRequest{RoutePlanningLocations: "1,2:3,4"}))
	assert.NoError(t, ValidateCalculateRoute(ctx, domainMaps.CalculateRouteRequest{RoutePlanningLocations: "1,2:3,4", ContentType: "json"}))
	assert.Error(t, ValidateReachableRange(ctx, domainMaps.ReachableRangeRequest{Origin: "1,2", ContentType: "json?x=1"}))
}
