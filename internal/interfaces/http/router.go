package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/conectta/retaguarda/internal/application/analytics"
	"github.com/conectta/retaguarda/internal/application/auth"
	"github.com/conectta/retaguarda/internal/application/inventory"
	"github.com/conectta/retaguarda/internal/application/sales"
	"github.com/conectta/retaguarda/internal/application/usecase"
	"github.com/conectta/retaguarda/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	StockEntry  *inventory.StockEntryUseCase
	History     *inventory.MovementHistoryUseCase
	ProcessSale *sales.ProcessSaleUseCase
	Receipt     *sales.ReceiptUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos: lectura para todos los roles; escritura para admin y estoquista
	produtos := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	produtos.Get("/", productHandler.List)
	produtos.Get("/:id", productHandler.GetByID)
	catalogWriters := RequireRole(entity.RoleAdministrador, entity.RoleEstoquista)
	produtos.Post("/", catalogWriters, productHandler.Create)
	produtos.Put("/:id", catalogWriters, productHandler.Update)
	produtos.Delete("/:id", RequireRole(entity.RoleAdministrador), productHandler.Delete)

	// Usuarios (solo administrador)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RoleAdministrador))
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Post("/", userHandler.Create)
	usuarios.Get("/", userHandler.List)
	usuarios.Get("/:id", userHandler.GetByID)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/:id", userHandler.Delete)

	// Estoque (admin y estoquista)
	estoque := protected.Group("/estoque", RequireRole(entity.RoleAdministrador, entity.RoleEstoquista))
	stockHandler := NewStockHandler(deps.StockEntry, deps.History)
	estoque.Post("/entradas", stockHandler.RegisterEntry)
	estoque.Get("/movimentacoes", stockHandler.ListMovements)

	// Vendas (admin y vendedor)
	vendas := protected.Group("/vendas", RequireRole(entity.RoleAdministrador, entity.RoleVendedor))
	saleHandler := NewSaleHandler(deps.ProcessSale, deps.Receipt)
	vendas.Post("/", saleHandler.Create)
	vendas.Get("/:id", saleHandler.GetByID)
	vendas.Get("/:id/recibo", saleHandler.DownloadReceipt)

	// Dashboard (solo administrador)
	dashboard := protected.Group("/dashboard", RequireRole(entity.RoleAdministrador))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/vendas-stats", dashboardHandler.GetSalesStats)
	dashboard.Get("/top-produtos", dashboardHandler.GetTopProducts)
}
