package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/dcastano/almacen-api/internal/application/analytics"
	"github.com/dcastano/almacen-api/internal/application/auth"
	"github.com/dcastano/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	StockOutUC  *usecase.StockOutUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Reports     InventoryReportGenerator
	AppName     string
	JWTSecret   string
	Cookie      CookieConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (register y login públicos; el resto requiere sesión)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren cookie de sesión válida)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authProtected := protected.Group("/auth")
	authProtected.Get("/me", authHandler.Me)
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Put("/password", authHandler.ChangePassword)

	// Products (lectura y salida de stock para cualquier sesión; mutaciones
	// de catálogo solo admin). /obsolete va ANTES que las rutas /:id para que
	// Fiber no lo capture como parámetro.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/obsolete", RequireAdmin(), productHandler.ListObsolete)
	products.Post("/", RequireAdmin(), productHandler.Create)
	products.Put("/:id/stockout", productHandler.StockOut)
	products.Put("/:id/obsolete", RequireAdmin(), productHandler.MarkObsolete)
	products.Put("/:id/restore", RequireAdmin(), productHandler.Restore)

	// Suppliers (lectura para cualquier sesión; alta solo admin)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", RequireAdmin(), supplierHandler.Create)

	// Stock-out log (protegido)
	stockout := protected.Group("/stockout")
	stockOutHandler := NewStockOutHandler(deps.StockOutUC)
	stockout.Get("/", stockOutHandler.List)
	stockout.Post("/", stockOutHandler.Create)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Reports (solo admin)
	reports := protected.Group("/reports", RequireAdmin())
	reportHandler := NewReportHandler(deps.ProductUC, deps.Reports, deps.AppName)
	reports.Get("/inventory", reportHandler.InventoryPDF)
}
