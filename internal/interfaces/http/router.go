package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sarpras-api/internal/application/assets"
	"github.com/tu-usuario/sarpras-api/internal/application/auth"
	"github.com/tu-usuario/sarpras-api/internal/application/consumable"
	"github.com/tu-usuario/sarpras-api/internal/application/report"
	"github.com/tu-usuario/sarpras-api/internal/application/usecase"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	BrandUC      *usecase.BrandUseCase
	CategoryUC   *usecase.CategoryUseCase
	LocationUC   *usecase.LocationUseCase
	AssetUC      *assets.AssetUseCase
	BulkRegister *assets.BulkRegisterUseCase
	SerialUC     *assets.SerialUseCase
	CatalogUC    *consumable.CatalogUseCase
	StockUC      *consumable.StockUseCase
	ReportUC     *report.UseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todo lo que muta catálogos o inventario
// requiere Bearer Token; las eliminaciones son solo para admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Brands (protegido)
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Post("/", brandHandler.Create)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Put("/:id", brandHandler.Update)
	brands.Delete("/:id", adminOnly, brandHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", adminOnly, locationHandler.Delete)

	// Assets (protegido). Rutas fijas antes que :id.
	assetGroup := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC, deps.BulkRegister, deps.SerialUC)
	assetGroup.Get("/next-serial", assetHandler.NextSerial)
	assetGroup.Post("/bulk", assetHandler.BulkRegister)
	assetGroup.Post("/", assetHandler.Create)
	assetGroup.Get("/", assetHandler.List)
	assetGroup.Get("/:id", assetHandler.GetByID)
	assetGroup.Put("/:id", assetHandler.Update)
	assetGroup.Delete("/:id", adminOnly, assetHandler.Delete)

	// Consumables (protegido). Rutas fijas antes que :id.
	consumables := protected.Group("/consumables")
	consumableHandler := NewConsumableHandler(deps.CatalogUC, deps.StockUC)
	consumables.Get("/below-reorder", consumableHandler.BelowReorder)
	consumables.Post("/", consumableHandler.Create)
	consumables.Get("/", consumableHandler.List)
	consumables.Get("/:id", consumableHandler.GetByID)
	consumables.Put("/:id", consumableHandler.Update)
	consumables.Delete("/:id", adminOnly, consumableHandler.Delete)
	consumables.Post("/:id/restock", consumableHandler.Restock)
	consumables.Post("/:id/usage", consumableHandler.Usage)
	consumables.Get("/:id/logs", consumableHandler.Logs)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/assets", reportHandler.Assets)
}
