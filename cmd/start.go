package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-loader/core/database"
	"asset-loader/core/loader"
	"asset-loader/core/logger"
	"asset-loader/core/middleware/auth"
	"asset-loader/core/middleware/rayid"

	"asset-loader/feature/assets"
	"asset-loader/feature/manifest"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "asset-loader/docs/swagger"
)

// @title Asset Loader API
// @version 1.0
// @description API for loading assets by type or file extension, singly or in batches.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset loader server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}
		if cfg.Server.ApiKey == "" {
			logg.Warn("No API key configured, every route is public",
				zap.String("fetch_base_dir", cfg.Fetch.BaseDir))
		}

		// 2. Connect to Database (Optional, only manifests need it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, manifests disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to manifest database", zap.String("driver", cfg.Database.Driver))
		}

		// 3. Build the asset loader
		ld, store, err := newAssetLoader(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create asset loader", zap.Error(err))
		}
		checkBucket(cmd.Context(), store, cfg.Storage.Bucket, logg)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimit,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// 5. Register Features
		mgr := loader.NewManager()
		assetsFeature := assets.NewFeature(ld, logg)
		mgr.Register(assetsFeature)
		mgr.Register(manifest.NewFeature(db, assetsFeature.Service(), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
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
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		timeout := time.Duration(cfg.Server.ShutdownSeconds) * time.Second
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
