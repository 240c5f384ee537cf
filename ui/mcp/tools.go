package mcp

import (
	"context"
	"fmt"
	"strconv"

	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolHandler struct {
	cityDataService domainCityData.ICityDataUsecase
}

func InitMcpTools(cityDataService domainCityData.ICityDataUsecase) *ToolHandler {
	return &ToolHandler{cityDataService: cityDataService}
}

func (h *ToolHandler) AddTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolAdd(), h.handleAdd)
	mcpServer.AddTool(h.toolCityData(), h.handleCityData)
}

func (h *ToolHandler) toolAdd() mcp.Tool {
	return mcp.NewTool(
		"add",
		mcp.WithDescription("Add two numbers"),
		mcp.WithTitleAnnotation("Addition Tool"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithNumber("a", mcp.Required()),
		mcp.WithNumber("b", mcp.Required()),
	)
}

func (h *ToolHandler) handleAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := request.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := request.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strconv.FormatFloat(a+b, 'f', -1, 64)), nil
}

// toolCityData exposes the combined lookup to clients that only speak tools.
func (h *ToolHandler) toolCityData() mcp.Tool {
	return mcp.NewTool(
		"get_city_data",
		mcp.WithDescription("Weather, socioeconomic and, when coordinates are given, sensor data for a city. Upstream failures are served from cache and flagged with cached=true."),
		mcp.WithTitleAnnotation("Combined City Data"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithString("city",
			mcp.Description("City name, e.g. Delhi."),
			mcp.Required(),
		),
		mcp.WithNumber("lat", mcp.Description("Latitude for the sensor lookup.")),
		mcp.WithNumber("lon", mcp.Description("Longitude for the sensor lookup.")),
	)
}

func (h *ToolHandler) handleCityData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var coords *domainSensor.Coordinates
	lat := request.GetFloat("lat", 0)
	lon := request.GetFloat("lon", 0)
	if lat != 0 && lon != 0 {
		coords = &domainSensor.Coordinates{Lat: lat, Lon: lon}
	}

	report, err := h.cityDataService.Lookup(ctx, domainCityData.LookupRequest{City: city, Coordinates: coords})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fallback := fmt.Sprintf("%s: %.2f°C, weather cached=%t, sensor cached=%t, socioeconomic cached=%t",
		report.City, report.Weather.WeatherTemperature, report.Weather.Cached, report.Sensor.Cached, report.Socioeconomic.Cached)
	return mcp.NewToolResultStructured(report, fallback), nil
}
