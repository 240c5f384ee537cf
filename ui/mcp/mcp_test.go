package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	domainSocio "github.com/AzielCF/az-citydata/domains/socioeconomic"
	domainWeather "github.com/AzielCF/az-citydata/domains/weather"
	"github.com/AzielCF/az-citydata/validations"
)

type stubWeather struct{ city string }

func (s *stubWeather) ByCity(_ context.Context, city string) domainWeather.Report {
	s.city = city
	return domainWeather.Report{WeatherTemperature: 26.85, Wind: 3, Timestamp: time.Now()}
}

type stubSensor struct{ coords domainSensor.Coordinates }

func (s *stubSensor) ByCoordinates(_ context.Context, coords domainSensor.Coordinates) domainSensor.Reading {
	s.coords = coords
	return domainSensor.Reading{SensorAirQuality: 87, Timestamp: time.Now()}
}

type stubSocio struct{}

func (stubSocio) ByCity(context.Context, string) domainSocio.Profile {
	return domainSocio.Profile{PopulationDensity: 5000, Cached: true}
}

type stubCityData struct{ last domainCityData.LookupRequest }

func (s *stubCityData) Lookup(ctx context.Context, request domainCityData.LookupRequest) (domainCityData.Report, error) {
	if err := validations.ValidateLookup(ctx, request); err != nil {
		return domainCityData.Report{}, err
	}
	s.last = request
	return domainCityData.Report{
		City:   request.City,
		Sensor: domainSensor.Reading{Cached: request.Coordinates == nil},
	}, nil
}

func readRequest(uri string, args map[string]any) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	req.Params.Arguments = args
	return req
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, contents []mcp.ResourceContents) string {
	t.Helper()
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)
	return text.Text
}

func TestResources_Weather(t *testing.T) {
	weather := &stubWeather{}
	h := InitMcpResources(weather, &stubSensor{}, stubSocio{}, &stubCityData{})

	contents, err := h.handleWeather(context.Background(), readRequest("weather://Delhi", map[string]any{"city": []string{"Delhi"}}))
	require.NoError(t, err)

	var report domainWeather.Report
	require.NoError(t, json.Unmarshal([]byte(textOf(t, contents)), &report))
	assert.Equal(t, "Delhi", weather.city)
	assert.InDelta(t, 26.85, report.WeatherTemperature, 1e-9)
}

func TestResources_Sensor(t *testing.T) {
	sensor := &stubSensor{}
	h := InitMcpResources(&stubWeather{}, sensor, stubSocio{}, &stubCityData{})

	contents, err := h.handleSensor(context.Background(), readRequest("sensor://28.61,77.23", map[string]any{"lat": "28.61", "lon": "77.23"}))
	require.NoError(t, err)
	assert.Contains(t, textOf(t, contents), `"sensorAirQuality":87`)
	assert.Equal(t, domainSensor.Coordinates{Lat: 28.61, Lon: 77.23}, sensor.coords)

	_, err = h.handleSensor(context.Background(), readRequest("sensor://x,1", map[string]any{"lat": "x", "lon": "1"}))
	assert.Error(t, err)
}

func TestResources_Socioeconomic(t *testing.T) {
	h := InitMcpResources(&stubWeather{}, &stubSensor{}, stubSocio{}, &stubCityData{})

	contents, err := h.handleSocioeconomic(context.Background(), readRequest("socioeconomic://Delhi", map[string]any{"city": "Delhi"}))
	require.NoError(t, err)
	assert.Contains(t, textOf(t, contents), `"cached":true`)
}

func TestResources_CityData(t *testing.T) {
	city := &stubCityData{}
	h := InitMcpResources(&stubWeather{}, &stubSensor{}, stubSocio{}, city)

	_, err := h.handleCityData(context.Background(), readRequest("city-data://Delhi?lat=28.61&lon=77.23", map[string]any{
		"city": []any{"Delhi"},
		"lat":  []any{"28.61"},
		"lon":  []any{"77.23"},
	}))
	require.NoError(t, err)
	require.NotNil(t, city.last.Coordinates)
	assert.InDelta(t, 77.23, city.last.Coordinates.Lon, 1e-9)

	_, err = h.handleCityData(context.Background(), readRequest("city-data://Delhi", map[string]any{"city": "Delhi"}))
	require.NoError(t, err)
	assert.Nil(t, city.last.Coordinates)

	_, err = h.handleCityData(context.Background(), readRequest("city-data://", map[string]any{}))
	assert.Error(t, err)
}

func TestTools_Add(t *testing.T) {
	h := InitMcpTools(&stubCityData{})

	result, err := h.handleAdd(context.Background(), callRequest("add", map[string]any{"a": 2.0, "b": 3.5}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "5.5", text.Text)

	result, err = h.handleAdd(context.Background(), callRequest("add", map[string]any{"a": 2.0}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestTools_CityData(t *testing.T) {
	city := &stubCityData{}
	h := InitMcpTools(city)

	result, err := h.handleCityData(context.Background(), callRequest("get_city_data", map[string]any{"city": "Delhi", "lat": 28.61}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Nil(t, city.last.Coordinates, "a single coordinate is ignored")

	report, ok := result.StructuredContent.(domainCityData.Report)
	require.True(t, ok)
	assert.True(t, report.Sensor.Cached)

	result, err = h.handleCityData(context.Background(), callRequest("get_city_data", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
