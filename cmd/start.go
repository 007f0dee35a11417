package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"practice-ledger/core/config"
	"practice-ledger/core/loader"
	"practice-ledger/core/logger"
	"practice-ledger/core/middleware/auth"
	"practice-ledger/core/middleware/rayid"
	"practice-ledger/feature/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ledger HTTP server",
	Long:  `Starts the HTTP server exposing the standings and, if enabled, the process trigger.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Server.Validate(); err != nil {
			log.Fatalf("Invalid server configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open the ledger backend
		svc, err := openLedger(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open ledger", zap.Error(err))
		}
		logg = logg.With(zap.String("backend", cfg.Ledger.Backend))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Register Features
		mgr := loader.NewManager(logg)
		mgr.Register(ledger.NewFeature(svc, cfg.Server.AllowProcess))

		// RayID first so everything after it is traceable
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

		if !cfg.Server.IsProtected() {
			logg.Warn("No API key configured; the API is unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
