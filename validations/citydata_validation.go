package validations

import (
	"context"

	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	pkgError "github.com/AzielCF/az-citydata/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateCity(ctx context.Context, city string) error {
	err := validation.ValidateWithContext(ctx, city,
		validation.Required,
		validation.Length(1, 128),
	)
	if err != nil {
		return pkgError.ValidationError("city: " + err.Error())
	}
	return nil
}

func ValidateCoordinates(ctx context.Context, coords domainSensor.Coordinates) error {
	err := validation.ValidateStructWithContext(ctx, &coords,
		validation.Field(&coords.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&coords.Lon, validation.Min(-180.0), validation.Max(180.0)),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}
	return nil
}

func ValidateLookup(ctx context.Context, request domainCityData.LookupRequest) error {
	if err := ValidateCity(ctx, request.City); err != nil {
		return err
	}
	if request.Coordinates != nil {
		return ValidateCoordinates(ctx, *request.Coordinates)
	}
	return nil
}
