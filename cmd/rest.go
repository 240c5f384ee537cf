package cmd

import (
	coreconfig "github.com/AzielCF/az-citydata/core/config"
	"github.com/AzielCF/az-citydata/ui/rest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve combined city data over http",
	Long:  `Serves GET /city/:city?lat=&lon= with weather, sensor and socioeconomic data, each falling back to cache on upstream failure.`,
	Run:   restServer,
}

func init() {
	restCmd.Flags().StringP("port", "p", "", "change port number with --port <number> | example: --port=3000")
	rootCmd.AddCommand(restCmd)
}

func restServer(cmd *cobra.Command, _ []string) {
	cfg := coreconfig.Global
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.App.Port = port
	}

	app := newFiberApp("City Data REST Server")
	router := app.Group(cfg.App.BasePath)

	rest.InitRestRoot(router, "City data REST server running")
	rest.InitRestCityData(router, cityDataUsecase)
	rest.InitRestHealth(router, healthUsecase)
	registerNotFound(app)

	shutdownOnSignal(app, "REST")

	logrus.WithField("event", "server_started").Infof("[REST] City data server running on http://localhost:%s", cfg.App.Port)
	if cfg.App.PublicURL != "" {
		logrus.Infof("[REST] Public URL: %s (example: %s%s/city/Delhi?lat=28.61&lon=77.23)", cfg.App.PublicURL, cfg.App.PublicURL, cfg.App.BasePath)
	}

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
