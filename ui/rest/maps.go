package rest

import (
	"errors"

	domainMaps "github.com/AzielCF/az-citydata/domains/maps"
	pkgError "github.com/AzielCF/az-citydata/pkg/error"
	"github.com/gofiber/fiber/v2"
)

type Maps struct {
	Service domainMaps.IMapsUsecase
}

func InitRestMaps(app fiber.Router, service domainMaps.IMapsUsecase) Maps {
	rest := Maps{Service: service}
	app.Get("/geocode", rest.Geocode)
	app.Get("/reverseGeocode", rest.ReverseGeocode)
	app.Get("/fuzzySearch", rest.FuzzySearch)
	app.Get("/poiSearch", rest.POISearch)
	app.Get("/nearbySearch", rest.NearbySearch)
	app.Get("/calculateRoute", rest.CalculateRoute)
	app.Get("/reachableRange", rest.ReachableRange)
	app.Get("/trafficIncidents", rest.TrafficIncidents)
	app.Get("/staticMap", rest.StaticMap)

	return rest
}

func (handler *Maps) Geocode(c *fiber.Ctx) error {
	var request domainMaps.GeocodeRequest
	if err := c.QueryParser(&request); err != nil {
		return renderMapsError(c, pkgError.ValidationError(err.Error()))
	}
	resp, err := handler.Service.Geocode(c.UserContext(), request)
	return renderMaps(c, resp, err)
}

func (handler *Maps) ReverseGeocode(c *fiber.Ctx) error {
	var request domainMaps.ReverseGeocodeRequest
	if err := c.QueryParser(&request); err != nil {
		return renderMapsError(c, pkgError.ValidationError(err.Error()))
	}
	resp, err := handler.Service.ReverseGeocode(c.UserContext(), request)
	return renderMaps(c, resp, err)
}

func (handler *Maps) FuzzySearch(c *fiber.Ctx) error {
	var request domainMaps.FuzzySearchRequest
	if err := c.QueryParser(&request); err != nil {
		return renderMapsError(c, pkgError.ValidationError(err.Error()))
	}
	resp, err := handler.Service.FuzzySearch(c.UserContext(), request)
	return renderMaps(c, resp, err)
}

func (handler *Maps) POISearch(c *fiber.Ctx) error {
	var request domainMaps.POISearchRequest
	if err := c.QueryParser(&request); err != nil {
		return renderMapsError(c, pkgError.ValidationError(err.Error()))
	}
	resp, err := handler.Service.POISearch(c.UserContext(), request)
	return renderMaps(c, resp, err)
}

func (handler *Maps) NearbySearch(c *fiber.Ctx) error {
	var request domainMaps.NearbySearchRequest
	if err := c.QueryParser(&request); err != nil {
		return renderMapsError(c, pkgError.ValidationError(err.Error()))
	}
	resp, err := handler.Service.NearbySearch(c.UserContext(), request)
	return renderMaps(c, resp, err)
}

func (handler *Maps) CalculateRoute(c *fiber.Ctx) error {
	var request domainMaps.CalculateRouteRequest
	if err := c.QueryParser(&request); err != nil {
		return renderMapsError(c, pkgError.ValidationError(err.Error()))
	}
	resp, err := handler.Service.CalculateRoute(c.UserContext(), request)
	return renderMaps(c, resp, err)
}

func (handler *Maps) ReachableRange(c *fiber.Ctx) error {
	params := c.Queries()
	resp, err := handler.Service.ReachableRange(c.UserContext(), domainMaps.ReachableRangeRequest{
		Origin:      params["origin"],
		ContentType: params["contentType"],
		Params:      params,
	})
	return renderMaps(c, resp, err)
}

func (handler *Maps) TrafficIncidents(c *fiber.Ctx) error {
	resp, err := handler.Service.TrafficIncidents(c.UserContext(), domainMaps.PassthroughRequest{Params: c.Queries()})
	return renderMaps(c, resp, err)
}

func (handler *Maps) StaticMap(c *fiber.Ctx) error {
	resp, err := handler.Service.StaticMap(c.UserContext(), domainMaps.PassthroughRequest{Params: c.Queries()})
	return renderMaps(c, resp, err)
}

func renderMaps(c *fiber.Ctx, resp domainMaps.Response, err error) error {
	if err != nil {
		return renderMapsError(c, err)
	}
	contentType := resp.ContentType
	if contentType == "" {
		contentType = fiber.MIMEApplicationJSON
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(resp.Body)
}

// renderMapsError answers with a bare {"error": "..."} body, not the ResponseData envelope.
func renderMapsError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var generic pkgError.GenericError
	if errors.As(err, &generic) {
		status = generic.StatusCode()
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
