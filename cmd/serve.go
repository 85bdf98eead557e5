package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"model-compare/core/cache"
	"model-compare/core/config"
	"model-compare/core/loader"
	"model-compare/core/logger"
	"model-compare/core/metrics"
	"model-compare/core/middleware/auth"
	"model-compare/core/middleware/rayid"
	"model-compare/core/storage"
	"model-compare/feature/compare"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "model-compare/docs/swagger"
)

// @title Model Compare API
// @version 1.0
// @description API for comparing the node sets of graph model exports.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison HTTP API",
	Long:  `Starts the HTTP server exposing the compare endpoints, Prometheus metrics and Swagger docs.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	mappings, err := cache.NewFromConfig(cfg.Cache)
	if err != nil {
		return err
	}

	app, err := newServer(cfg, logg, store, mappings, metrics.NewCollector("model_compare"))
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.Bool("auth", cfg.Server.AuthEnabled()),
			zap.String("bucket", cfg.Storage.Bucket),
		)
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sig:
	}

	logg.Info("Shutting down server...")
	return app.ShutdownWithTimeout(10 * time.Second)
}

// newServer builds the Fiber app with middleware and every feature loaded.
func newServer(cfg *config.Config, logg *zap.Logger, store storage.Client, mappings *cache.MappingCache, collector *metrics.Collector) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	mgr := loader.NewManager()
	mgr.Register(compare.NewFeature(store, cfg.Storage.Bucket, logg, mappings, collector))

	// RayID first so every log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	})

	// Public endpoints
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app, nil
}
