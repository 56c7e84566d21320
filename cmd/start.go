package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"xml-compare-api/core/config"
	"xml-compare-api/core/database"
	"xml-compare-api/core/loader"
	"xml-compare-api/core/logger"
	"xml-compare-api/core/middleware/auth"
	"xml-compare-api/core/middleware/rayid"
	"xml-compare-api/core/session"
	"xml-compare-api/core/source"
	"xml-compare-api/core/storage"

	authfeature "xml-compare-api/feature/auth"
	"xml-compare-api/feature/compare"
	"xml-compare-api/feature/documents"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "xml-compare-api/docs/swagger"
)

// @title XML Compare API
// @version 1.0
// @description API for comparing XML documents under configurable ignore rules.
// @host localhost:3000
// @BasePath /xml-compare-api/api

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the comparison server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to History Database (Optional)
		var recorder *compare.Recorder
		if cfg.Database.Enabled {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("History database connection failed, history disabled", zap.Error(err))
			} else if rec, err := compare.NewRecorder(db, logg); err != nil {
				logg.Warn("History table migration failed, history disabled", zap.Error(err))
			} else {
				recorder = rec
				logg.Info("Comparison history enabled")
			}
		}

		// 4. Initialize Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			store = client
		}

		// 5. Session Store + Sweeper
		sessions := session.NewStore()
		stopSweeper := sessions.StartSweeper(cfg.Session.SweepInterval(), logg)

		// 6. Document Sources
		httpSource := source.NewHTTPSource(cfg.Fetch, cfg.Session.TTL())
		var storeSource *source.StoreSource
		if store != nil {
			storeSource = source.NewStoreSource(store, cfg.Storage.Bucket)
		}
		resolver := source.NewResolver(httpSource, storeSource)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		authFeature := authfeature.NewFeature(httpSource, sessions, logg)
		mgr.Register(authFeature)
		mgr.Register(compare.NewFeature(resolver, sessions, authFeature.Service(), recorder, cfg.Fetch.Concurrency(), logg))
		mgr.Register(documents.NewFeature(store, cfg.Storage.Bucket, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/", func(c *fiber.Ctx) error {
			return c.Redirect("/swagger/index.html", fiber.StatusFound)
		})

		base := app.Group(cfg.Server.BasePath)

		// Health Check (Public)
		base.Get("/health", func(c *fiber.Ctx) error {
			return c.SendString("OK")
		})

		// 3. Auth (Protect API)
		api := base.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("base_path", cfg.Server.BasePath))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopSweeper()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
