package cmd

import (
	"os"
	"time"

	coreconfig "github.com/AzielCF/az-citydata/core/config"
	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	domainCityData "github.com/AzielCF/az-citydata/domains/citydata"
	domainHealth "github.com/AzielCF/az-citydata/domains/health"
	domainMaps "github.com/AzielCF/az-citydata/domains/maps"
	domainSensor "github.com/AzielCF/az-citydata/domains/sensor"
	domainSocio "github.com/AzielCF/az-citydata/domains/socioeconomic"
	domainWeather "github.com/AzielCF/az-citydata/domains/weather"
	"github.com/AzielCF/az-citydata/infrastructure/upstream"
	"github.com/AzielCF/az-citydata/infrastructure/valkey"
	"github.com/AzielCF/az-citydata/integrations/gho"
	"github.com/AzielCF/az-citydata/integrations/opensensemap"
	"github.com/AzielCF/az-citydata/integrations/openweather"
	"github.com/AzielCF/az-citydata/integrations/tomtom"
	"github.com/AzielCF/az-citydata/pkg/utils"
	"github.com/AzielCF/az-citydata/repository"
	"github.com/AzielCF/az-citydata/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string

	// Shared fallback cache, owned here and handed to every fetcher.
	cacheStore  domainCache.Store
	memoryStore *repository.MemoryCacheStore
	vkClient    *valkey.Client

	// Usecase
	weatherUsecase       domainWeather.IWeatherUsecase
	sensorUsecase        domainSensor.ISensorUsecase
	socioeconomicUsecase domainSocio.ISocioeconomicUsecase
	cityDataUsecase      domainCityData.ICityDataUsecase
	mapsUsecase          domainMaps.IMapsUsecase
	healthUsecase        domainHealth.IHealthUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "az-citydata",
	Short: "City data proxy over MCP and REST",
	Long: `Proxies weather, air-quality sensor, socioeconomic and mapping APIs.
Failed upstream calls are answered from the last good value (flagged cached=true) or from defaults.`,
}

func init() {
	// Load environment variables first
	utils.LoadConfig(".")
	if _, err := coreconfig.LoadConfig(); err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initFileConfig, initApp)
}

func initFlags() {
	cfg := coreconfig.Global

	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config", "",
		`optional config file (yaml, json, toml) --config <path> | example: --config="citydata.yaml"`,
	)
	rootCmd.PersistentFlags().BoolVarP(
		&cfg.App.Debug,
		"debug", "d",
		cfg.App.Debug,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().DurationVar(
		&cfg.Cache.TTL,
		"cache-ttl",
		cfg.Cache.TTL,
		"how long a successful upstream payload stays available as fallback | example: --cache-ttl=15m",
	)
	rootCmd.PersistentFlags().IntVar(
		&cfg.Cache.Capacity,
		"cache-capacity",
		cfg.Cache.Capacity,
		"maximum number of cached payloads before LRU eviction | example: --cache-capacity=500",
	)
	rootCmd.PersistentFlags().DurationVar(
		&cfg.Upstream.Timeout,
		"upstream-timeout",
		cfg.Upstream.Timeout,
		"timeout of a single upstream call | example: --upstream-timeout=5s",
	)
	rootCmd.PersistentFlags().StringVar(
		&cfg.APIKeys.Weather,
		"weather-api-key", cfg.APIKeys.Weather,
		"OpenWeatherMap api key --weather-api-key <string>",
	)
	rootCmd.PersistentFlags().StringVar(
		&cfg.APIKeys.TomTom,
		"tomtom-api-key", cfg.APIKeys.TomTom,
		"TomTom api key --tomtom-api-key <string>",
	)
	rootCmd.PersistentFlags().BoolVar(
		&cfg.Database.ValkeyEnabled,
		"valkey", cfg.Database.ValkeyEnabled,
		"share the fallback cache through valkey --valkey <true/false>",
	)
	rootCmd.PersistentFlags().StringVar(
		&cfg.Database.ValkeyAddress,
		"valkey-address", cfg.Database.ValkeyAddress,
		`valkey address --valkey-address <host:port> | example: --valkey-address="localhost:6379"`,
	)
}

// initFileConfig applies values from --config on top of env and flags.
func initFileConfig() {
	if err := utils.ReadConfigFile(configFile); err != nil {
		logrus.Fatalf("failed to read config file %s: %v", configFile, err)
	}
	if configFile == "" {
		return
	}

	cfg := coreconfig.Global
	if viper.IsSet("app.debug") {
		cfg.App.Debug = viper.GetBool("app.debug")
	}
	if viper.IsSet("app.port") {
		cfg.App.Port = viper.GetString("app.port")
	}
	if viper.IsSet("app.maps_port") {
		cfg.App.MapsPort = viper.GetString("app.maps_port")
	}
	if viper.IsSet("cache.ttl") {
		cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	}
	if viper.IsSet("cache.capacity") {
		cfg.Cache.Capacity = viper.GetInt("cache.capacity")
	}
	if viper.IsSet("upstream.timeout") {
		cfg.Upstream.Timeout = viper.GetDuration("upstream.timeout")
	}
	if viper.IsSet("mcp.transport") {
		cfg.MCP.Transport = viper.GetString("mcp.transport")
	}
	if viper.IsSet("api_keys.weather") {
		cfg.APIKeys.Weather = viper.GetString("api_keys.weather")
	}
	if viper.IsSet("api_keys.tomtom") {
		cfg.APIKeys.TomTom = viper.GetString("api_keys.tomtom")
	}
	if viper.IsSet("valkey.enabled") {
		cfg.Database.ValkeyEnabled = viper.GetBool("valkey.enabled")
	}
	if viper.IsSet("valkey.address") {
		cfg.Database.ValkeyAddress = viper.GetString("valkey.address")
	}
}

func initApp() {
	cfg := coreconfig.Global
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cacheStore = newCacheStore(cfg)

	client := upstream.NewClient(cfg.Upstream.Timeout)
	weatherClient := openweather.NewClient(client, cfg.Upstream.WeatherURL, cfg.APIKeys.Weather)
	sensorClient := opensensemap.NewClient(client, cfg.Upstream.SensorURL)
	ghoClient := gho.NewClient(client, cfg.Upstream.HealthDataURL, cfg.Socioeconomic.Indicator, cfg.Socioeconomic.PopulationDensity)
	tomtomClient := tomtom.NewClient(upstream.NewClient(cfg.Upstream.MapsTimeout), cfg.Upstream.MapsURL, cfg.APIKeys.TomTom)

	weatherUsecase = usecase.NewWeatherService(weatherClient, cacheStore, cfg.Cache.TTL)
	sensorUsecase = usecase.NewSensorService(sensorClient, cacheStore, cfg.Cache.TTL)
	socioeconomicUsecase = usecase.NewSocioeconomicService(ghoClient, cacheStore, cfg.Cache.TTL)
	cityDataUsecase = usecase.NewCityDataService(weatherUsecase, sensorUsecase, socioeconomicUsecase)
	mapsUsecase = usecase.NewMapsService(tomtomClient)

	healthUsecase = usecase.NewHealthService(cfg.App.Version, cacheStore, []domainHealth.Upstream{
		{Name: "weather", BaseURL: cfg.Upstream.WeatherURL, Configured: cfg.APIKeys.Weather != ""},
		{Name: "sensor", BaseURL: cfg.Upstream.SensorURL, Configured: true},
		{Name: "socioeconomic", BaseURL: cfg.Upstream.HealthDataURL, Configured: true},
		{Name: "maps", BaseURL: cfg.Upstream.MapsURL, Configured: cfg.APIKeys.TomTom != ""},
	})

	if cfg.APIKeys.Weather == "" {
		logrus.Warn("[APP] WEATHER_API_KEY is empty; weather lookups will be served from fallback")
	}
	logrus.Debugf("[APP] settings: %v", coreconfig.GetAllSettings())
}

// newCacheStore prefers valkey when enabled and reachable, otherwise the in-process store.
func newCacheStore(cfg *coreconfig.Config) domainCache.Store {
	if cfg.Database.ValkeyEnabled {
		client, err := valkey.NewClient(valkey.ConfigFromDatabase(cfg.Database))
		if err == nil {
			vkClient = client
			logrus.Infof("[CACHE] Using valkey at %s", cfg.Database.ValkeyAddress)
			return repository.NewValkeyCacheStore(client, cfg.Cache.TTL)
		}
		logrus.WithError(err).Warn("[CACHE] Valkey unavailable, falling back to in-memory cache")
	}

	memoryStore = repository.NewMemoryCacheStore(cfg.Cache.TTL, cfg.Cache.Capacity)
	logrus.Infof("[CACHE] Using in-memory cache (capacity %d, ttl %s)", cfg.Cache.Capacity, cfg.Cache.TTL)
	return memoryStore
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	time.Local = time.UTC
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// StopApp releases the cache backends.
func StopApp() {
	logrus.Info("[APP] Stopping application...")

	if memoryStore != nil {
		memoryStore.Close()
	}
	if vkClient != nil {
		vkClient.Close()
	}

	logrus.Info("[APP] Application stopped cleanly.")
}
