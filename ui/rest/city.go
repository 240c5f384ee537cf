package rest

import (
	"net/url"

	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	"github.com/AzielCF/az-citydata/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type CityData struct {
	Service domainCityData.ICityDataUsecase
}

func InitRestCityData(app fiber.Router, service domainCityData.ICityDataUsecase) CityData {
	rest := CityData{Service: service}
	app.Get("/city/:city", rest.Lookup)

	return rest
}

// Lookup returns the combined document without the ResponseData envelope.
func (handler *CityData) Lookup(c *fiber.Ctx) error {
	city := c.Params("city")
	if unescaped, err := url.PathUnescape(city); err == nil {
		city = unescaped
	}

	report, err := handler.Service.Lookup(c.UserContext(), domainCityData.LookupRequest{
		City:        city,
		Coordinates: domainSensor.ParseCoordinates(c.Query("lat"), c.Query("lon")),
	})
	utils.PanicIfNeeded(err)

	return c.JSON(report)
}
