package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	"github.com/AzielCF/az-citydata/domains/health"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	"github.com/AzielCF/az-citydata/pkg/utils"
	"github.com/AzielCF/az-citydata/ui/rest/middleware"
	"github.com/AzielCF/az-citydata/validations"
)

type stubCityData struct {
	last domainCityData.LookupRequest
}

func (s *stubCityData) Lookup(ctx context.Context, request domainCityData.LookupRequest) (domainCityData.Report, error) {
	if err := validations.ValidateLookup(ctx, request); err != nil {
		return domainCityData.Report{}, err
	}
	s.last = request
	report := domainCityData.Report{City: request.City, Timestamp: time.Now()}
	report.Weather.WeatherTemperature = 26.85
	report.Sensor = domainSensor.Default(time.Now())
	if request.Coordinates != nil {
		report.Sensor = domainSensor.Reading{SensorAirQuality: 87}
	}
	return report, nil
}

func newCityApp(service domainCityData.ICityDataUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Recovery())
	InitRestRoot(app, "City data REST server running")
	InitRestCityData(app, service)
	return app
}

func TestRoot(t *testing.T) {
	app := newCityApp(&stubCityData{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "server_started", body["event"])
}

func TestCityData_Lookup(t *testing.T) {
	service := &stubCityData{}
	app := newCityApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/city/New%20Delhi?lat=28.61&lon=77.23", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, field := range []string{"city", "timestamp", "weather", "sensor", "socioeconomic"} {
		assert.Contains(t, body, field)
	}
	assert.JSONEq(t, `"New Delhi"`, string(body["city"]))
	require.NotNil(t, service.last.Coordinates)
	assert.InDelta(t, 28.61, service.last.Coordinates.Lat, 1e-9)
}

func TestCityData_LookupWithoutCoordinates(t *testing.T) {
	service := &stubCityData{}
	app := newCityApp(service)

	for _, target := range []string{"/city/Delhi", "/city/Delhi?lat=28.61", "/city/Delhi?lat=abc&lon=77.23", "/city/Delhi?lat=0&lon=0"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, target)
		assert.Nil(t, service.last.Coordinates, target)
	}
}

func TestCityData_InvalidCoordinates(t *testing.T) {
	app := newCityApp(&stubCityData{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/city/Delhi?lat=95&lon=10", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body utils.ResponseData
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

type stubHealth struct{}

func (stubHealth) GetStatus(context.Context) (health.Record, error) {
	return health.Record{Status: health.StatusOk, Version: "v1.0.0", Cache: domainCache.Stats{Backend: "memory"}}, nil
}

func TestHealth_GetStatus(t *testing.T) {
	app := fiber.New()
	InitRestHealth(app, stubHealth{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health/status", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Code    string        `json:"code"`
		Results health.Record `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SUCCESS", body.Code)
	assert.Equal(t, health.StatusOk, body.Results.Status)
	assert.Equal(t, "memory", body.Results.Cache.Backend)
}
