package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreconfig "github.com/AzielCF/az-citydata/core/config"
	pkgError "github.com/AzielCF/az-citydata/pkg/error"
	"github.com/AzielCF/az-citydata/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// newFiberApp builds the fiber app shared by the REST faces.
func newFiberApp(appName string) *fiber.App {
	cfg := coreconfig.Global

	app := fiber.New(fiber.Config{
		Network:               "tcp",
		AppName:               appName,
		DisableStartupMessage: true,
		ServerHeader:          "Hidden",
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.App.CorsAllowedOrigins, ", "),
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(limiter.New(limiter.Config{
		Max:        600,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.App.Debug {
		app.Use(logger.New())
	}

	return app
}

// registerNotFound must be the last route registered.
func registerNotFound(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		err := pkgError.NotFoundError("endpoint not found: " + c.Path())
		return c.Status(err.StatusCode()).JSON(fiber.Map{
			"error": err.Error(),
			"code":  err.ErrCode(),
		})
	})
}

// shutdownOnSignal stops the fiber app and the app subsystems on SIGINT/SIGTERM.
func shutdownOnSignal(app *fiber.App, tag string) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Infof("[%s] Reception of termination signal, shutting down gracefully...", tag)
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[%s] Error during Fiber shutdown: %v", tag, err)
		}
		StopApp()
	}()
}
