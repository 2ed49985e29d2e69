package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"url-reconciler/core/config"
	"url-reconciler/core/loader"
	"url-reconciler/core/logger"
	"url-reconciler/core/metrics"
	"url-reconciler/core/middleware/auth"
	"url-reconciler/core/middleware/rayid"
	"url-reconciler/core/reconcile"
	"url-reconciler/feature/sources"
	"url-reconciler/feature/urlcheck"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "url-reconciler/docs/swagger"
)

// @title URL Reconciler API
// @version 1.0
// @description API for reconciling shortened and reference URLs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the URL reconciler server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Server.IsValidPort() {
			log.Fatalf("Invalid server port: %q", cfg.Server.Port)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.New(reg)

		// 4. Sources (Optional)
		// The sheets client keeps this context for token refreshes, so it must not be canceled early.
		conns, _ := connect(cmd.Context(), cfg, logg, false)
		defer conns.Close()

		var srcA, srcB sources.Source
		if a, b, err := buildSources(cfg, conns.deps); err != nil {
			logg.Warn("Configured sources unavailable, only posted pairs can be reconciled", zap.Error(err))
		} else {
			srcA, srcB = a, b
			logg.Info("Sources configured", zap.String("source_a", a.Name()), zap.String("source_b", b.Name()))
		}

		engine := newEngine(cfg, reconcile.NewLogObserver(logg), m)
		cache := reconcile.NewReportCache(time.Duration(cfg.Reconcile.CacheTTLSeconds) * time.Second)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			ReadTimeout:           cfg.Server.RequestTimeout(),
			WriteTimeout:          cfg.Server.RequestTimeout(),
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(urlcheck.NewFeature(engine, cache, srcA, srcB, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})
		app.Use(m.Middleware())

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", m.Handler(reg))

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/health"}}))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 7. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
