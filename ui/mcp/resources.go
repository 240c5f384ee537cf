package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	domainSocio "github.com/AzielCF/az-citydata/domains/socioeconomic"
	domainWeather "github.com/AzielCF/az-citydata/domains/weather"
	"github.com/AzielCF/az-citydata/validations"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const jsonMIMEType = "application/json"

type ResourceHandler struct {
	weatherService       domainWeather.IWeatherUsecase
	sensorService        domainSensor.ISensorUsecase
	socioeconomicService domainSocio.ISocioeconomicUsecase
	cityDataService      domainCityData.ICityDataUsecase
}

func InitMcpResources(
	weatherService domainWeather.IWeatherUsecase,
	sensorService domainSensor.ISensorUsecase,
	socioeconomicService domainSocio.ISocioeconomicUsecase,
	cityDataService domainCityData.ICityDataUsecase,
) *ResourceHandler {
	return &ResourceHandler{
		weatherService:       weatherService,
		sensorService:        sensorService,
		socioeconomicService: socioeconomicService,
		cityDataService:      cityDataService,
	}
}

func (h *ResourceHandler) AddResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(h.templateWeather(), h.handleWeather)
	mcpServer.AddResourceTemplate(h.templateSensor(), h.handleSensor)
	mcpServer.AddResourceTemplate(h.templateSocioeconomic(), h.handleSocioeconomic)
	mcpServer.AddResourceTemplate(h.templateCityData(), h.handleCityData)
}

func (h *ResourceHandler) templateWeather() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"weather://{city}",
		"weather",
		mcp.WithTemplateDescription("Weather info for a city"),
		mcp.WithTemplateMIMEType(jsonMIMEType),
	)
}

func (h *ResourceHandler) handleWeather(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	city := templateArgument(request, "city")
	if err := validations.ValidateCity(ctx, city); err != nil {
		return nil, err
	}
	return jsonContents(request.Params.URI, h.weatherService.ByCity(ctx, city))
}

func (h *ResourceHandler) templateSensor() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"sensor://{lat},{lon}",
		"sensor",
		mcp.WithTemplateDescription("Sensor readings by coordinates"),
		mcp.WithTemplateMIMEType(jsonMIMEType),
	)
}

func (h *ResourceHandler) handleSensor(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	lat, err := strconv.ParseFloat(templateArgument(request, "lat"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lat: %w", err)
	}
	lon, err := strconv.ParseFloat(templateArgument(request, "lon"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lon: %w", err)
	}

	coords := domainSensor.Coordinates{Lat: lat, Lon: lon}
	if err := validations.ValidateCoordinates(ctx, coords); err != nil {
		return nil, err
	}
	return jsonContents(request.Params.URI, h.sensorService.ByCoordinates(ctx, coords))
}

func (h *ResourceHandler) templateSocioeconomic() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"socioeconomic://{city}",
		"socioeconomic",
		mcp.WithTemplateDescription("Socioeconomic data for a city"),
		mcp.WithTemplateMIMEType(jsonMIMEType),
	)
}

func (h *ResourceHandler) handleSocioeconomic(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	city := templateArgument(request, "city")
	if err := validations.ValidateCity(ctx, city); err != nil {
		return nil, err
	}
	return jsonContents(request.Params.URI, h.socioeconomicService.ByCity(ctx, city))
}

func (h *ResourceHandler) templateCityData() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"city-data://{city}{?lat,lon}",
		"city-data",
		mcp.WithTemplateDescription("Weather + Sensor + Socioeconomic for a city"),
		mcp.WithTemplateMIMEType(jsonMIMEType),
	)
}

func (h *ResourceHandler) handleCityData(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	report, err := h.cityDataService.Lookup(ctx, domainCityData.LookupRequest{
		City:        templateArgument(request, "city"),
		Coordinates: domainSensor.ParseCoordinates(templateArgument(request, "lat"), templateArgument(request, "lon")),
	})
	if err != nil {
		return nil, err
	}
	return jsonContents(request.Params.URI, report)
}

// templateArgument reads a variable matched from the resource URI template.
// The server hands them over either as a string or as a list of strings.
func templateArgument(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		},
	}, nil
}
