package main

import (
	"errors"
	"time"

	"inventario-api/config"
	"inventario-api/database"
	"inventario-api/idgen"
	"inventario-api/logger"
	"inventario-api/middleware"
	"inventario-api/migration"
	"inventario-api/prometheus"
	"inventario-api/routes"
	"inventario-api/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config.LoadConfig()
	log := logger.GetLogger()
	defer log.Sync()

	db, err := database.Open()
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatal("failed to auto migrate", zap.Error(err))
	}

	if err := database.Seed(db); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	idgen.Init()
	prometheus.InitMetrics("inventario")

	countService := services.NewCountService(
		db,
		time.Duration(config.SyntheticTTLMinutes)*time.Minute,
		config.SyntheticMaxItems,
	)

	app := buildApp(db, countService)

	log.Info("server listening", zap.String("port", config.APP_PORT))
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// buildApp arma la aplicación completa; los tests la construyen igual
// sobre una base de datos en memoria.
func buildApp(db *gorm.DB, countService *services.CountService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.PathNormalizer())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())
	app.Use(middleware.MetricsMiddleware())
	config.SetupCORS(app)

	routes.SetupHealthRoutes(app)
	routes.SetupMetricsRoutes(app)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupItemRoutes(app, db)
	routes.SetupCatalogRoutes(app, db)
	routes.SetupCountRoutes(app, countService)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Error interno del servidor"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code < fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}

	if code >= fiber.StatusInternalServerError {
		logger.GetLogger().Error("unhandled error", zap.Error(err))
	}

	return c.Status(code).JSON(fiber.Map{
		"ok":      false,
		"message": message,
	})
}
