package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/sarpras-api/internal/application/assets"
	"github.com/tu-usuario/sarpras-api/internal/application/auth"
	"github.com/tu-usuario/sarpras-api/internal/application/consumable"
	"github.com/tu-usuario/sarpras-api/internal/application/report"
	"github.com/tu-usuario/sarpras-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/sarpras-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/sarpras-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/sarpras-api/internal/interfaces/http"
	"github.com/tu-usuario/sarpras-api/pkg/config"
	"github.com/tu-usuario/sarpras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios (atados al pool; los tx runners crean los suyos por transacción)
	userRepo := postgres.NewUserRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	consumableRepo := postgres.NewConsumableRepository(pool)
	stockRepo := postgres.NewConsumableStockRepository(pool)
	logRepo := postgres.NewConsumableLogRepository(pool)
	assetTxRunner := postgres.NewAssetTxRunner(pool)
	consumableTxRunner := postgres.NewConsumableTxRunner(pool)

	// Casos de uso
	brandUC := usecase.NewBrandUseCase(brandRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, brandRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, assetRepo)
	assetUC := assets.NewAssetUseCase(assetRepo, productRepo, locationRepo)
	bulkRegisterUC := assets.NewBulkRegisterUseCase(assetTxRunner, productRepo, locationRepo)
	serialUC := assets.NewSerialUseCase(productRepo, locationRepo, assetRepo)
	catalogUC := consumable.NewCatalogUseCase(consumableRepo)
	stockUC := consumable.NewStockUseCase(consumableTxRunner, consumableRepo, stockRepo, logRepo, locationRepo)
	reportUC := report.NewUseCase(locationRepo, assetRepo, productRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sarpras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		BrandUC:      brandUC,
		CategoryUC:   categoryUC,
		LocationUC:   locationUC,
		AssetUC:      assetUC,
		BulkRegister: bulkRegisterUC,
		SerialUC:     serialUC,
		CatalogUC:    catalogUC,
		StockUC:      stockUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
