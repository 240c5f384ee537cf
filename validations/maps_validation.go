package validations

import (
	"context"
	"regexp"

	domainMaps "github.com/AzielCF/az-citydata/domains/maps"
	pkgError "github.com/AzielCF/az-citydata/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// pathSegment guards values that are spliced raw into the provider path.
var pathSegment = validation.Match(regexp.MustCompile(`^[^/?#\\]+$`)).Error("must not contain '/', '?', '#' or '\\'")

func ValidateGeocode(ctx context.Context, request domainMaps.GeocodeRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Query, validation.Required),
	)
	return asValidationError(err)
}

func ValidateReverseGeocode(ctx context.Context, request domainMaps.ReverseGeocodeRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Position, validation.Required, pathSegment),
	)
	return asValidationError(err)
}

func ValidateFuzzySearch(ctx context.Context, request domainMaps.FuzzySearchRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Query, validation.Required),
	)
	return asValidationError(err)
}

func ValidatePOISearch(ctx context.Context, request domainMaps.POISearchRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Query, validation.Required),
	)
	return asValidationError(err)
}

func ValidateNearbySearch(ctx context.Context, request domainMaps.NearbySearchRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Lat, validation.Required),
		validation.Field(&request.Lon, validation.Required),
	)
	return asValidationError(err)
}

func ValidateCalculateRoute(ctx context.Context, request domainMaps.CalculateRouteRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.RoutePlanningLocations, validation.Required, pathSegment),
		validation.Field(&request.ContentType, validation.Required, pathSegment),
	)
	return asValidationError(err)
}

func ValidateReachableRange(ctx context.Context, request domainMaps.ReachableRangeRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Origin, validation.Required, pathSegment),
		validation.Field(&request.ContentType, validation.Required, pathSegment),
	)
	return asValidationError(err)
}

func asValidationError(err error) error {
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}
	return nil
}
