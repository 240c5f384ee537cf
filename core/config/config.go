package config

import (
	"time"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App           AppConfig
	MCP           MCPConfig
	Cache         CacheConfig
	Upstream      UpstreamConfig
	Database      DatabaseConfig
	Socioeconomic SocioeconomicConfig
	APIKeys       APIKeysConfig
}

type AppConfig struct {
	Version            string
	Port               string
	MapsPort           string
	Debug              bool
	Environment        string
	BasePath           string
	PublicURL          string
	CorsAllowedOrigins []string
}

type MCPConfig struct {
	Transport string // "stdio" or "sse"
	Port      string
	Host      string
}

type CacheConfig struct {
	TTL      time.Duration
	Capacity int
}

type UpstreamConfig struct {
	Timeout       time.Duration
	MapsTimeout   time.Duration
	WeatherURL    string
	SensorURL     string
	HealthDataURL string
	MapsURL       string
}

type DatabaseConfig struct {
	ValkeyEnabled   bool
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

type SocioeconomicConfig struct {
	Indicator         string
	PopulationDensity float64
}

type APIKeysConfig struct {
	Weather string
	TomTom  string
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from Environment Variables or defaults.
func LoadConfig() (*Config, error) {
	cors := []string{"*"}
	if v := getEnvSlice("APP_CORS_ALLOWED_ORIGINS"); len(v) > 0 {
		cors = v
	}

	appCfg := AppConfig{
		Version:            getEnv("APP_VERSION", "v1.0.0"),
		Port:               getEnv("APP_PORT", getEnv("PORT", "3000")),
		MapsPort:           getEnv("MAPS_PORT", "4000"),
		Debug:              getEnvBool("APP_DEBUG", false),
		Environment:        getEnv("APP_ENV", "development"),
		BasePath:           getEnv("APP_BASE_PATH", ""),
		PublicURL:          getEnv("APP_PUBLIC_URL", ""),
		CorsAllowedOrigins: cors,
	}

	cfg := &Config{
		App: appCfg,
		MCP: MCPConfig{
			Transport: getEnv("MCP_TRANSPORT", "stdio"),
			Port:      getEnv("MCP_PORT", "8080"),
			Host:      getEnv("MCP_HOST", "localhost"),
		},
		Cache: CacheConfig{
			TTL:      getEnvDuration("CACHE_TTL", 15*time.Minute),
			Capacity: getEnvInt("CACHE_CAPACITY", 500),
		},
		Upstream: UpstreamConfig{
			Timeout:       getEnvDuration("UPSTREAM_TIMEOUT", 5*time.Second),
			MapsTimeout:   getEnvDuration("MAPS_TIMEOUT", 10*time.Second),
			WeatherURL:    getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org"),
			SensorURL:     getEnv("SENSOR_BASE_URL", "https://api.opensensemap.org"),
			HealthDataURL: getEnv("HEALTH_DATA_BASE_URL", "https://ghoapi.azureedge.net"),
			MapsURL:       getEnv("TOMTOM_BASE_URL", "https://api.tomtom.com"),
		},
		Database: DatabaseConfig{
			ValkeyEnabled:   getEnvBool("VALKEY_ENABLED", false),
			ValkeyAddress:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
			ValkeyPassword:  getEnv("VALKEY_PASSWORD", ""),
			ValkeyDB:        getEnvInt("VALKEY_DB", 0),
			ValkeyKeyPrefix: getEnv("VALKEY_KEY_PREFIX", "citydata:"),
		},
		Socioeconomic: SocioeconomicConfig{
			Indicator:         getEnv("SOCIOECONOMIC_INDICATOR", "MALARIA_EST_CASES"),
			PopulationDensity: getEnvFloat("SOCIOECONOMIC_POPULATION_DENSITY", 5000),
		},
		APIKeys: APIKeysConfig{
			Weather: getEnv("WEATHER_API_KEY", ""),
			TomTom:  getEnv("TOMTOM_API_KEY", ""),
		},
	}

	Global = cfg
	return cfg, nil
}
