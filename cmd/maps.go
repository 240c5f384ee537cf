package cmd

import (
	coreconfig "github.com/AzielCF/az-citydata/core/config"
	"github.com/AzielCF/az-citydata/ui/rest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Proxy the mapping provider over http",
	Long:  `Forwards geocoding, search, routing, traffic and static map requests to TomTom, injecting the API key server side.`,
	Run:   mapsServer,
}

func init() {
	mapsCmd.Flags().StringP("port", "p", "", "change port number with --port <number> | example: --port=4000")
	rootCmd.AddCommand(mapsCmd)
}

func mapsServer(cmd *cobra.Command, _ []string) {
	cfg := coreconfig.Global
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.App.MapsPort = port
	}
	if cfg.APIKeys.TomTom == "" {
		logrus.Warn("[MAPS] TOMTOM_API_KEY is empty; the provider will reject requests")
	}

	app := newFiberApp("City Data Maps Proxy")
	router := app.Group(cfg.App.BasePath)

	rest.InitRestRoot(router, "Maps proxy running")
	rest.InitRestMaps(router, mapsUsecase)
	registerNotFound(app)

	shutdownOnSignal(app, "MAPS")

	logrus.WithField("event", "server_started").Infof("[MAPS] Maps proxy running on port %s", cfg.App.MapsPort)

	if err := app.Listen(":" + cfg.App.MapsPort); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
