package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sbastiane/conteo-api/internal/application/auth"
	"github.com/sbastiane/conteo-api/internal/application/inventory"
	"github.com/sbastiane/conteo-api/internal/application/usecase"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	Users       UserProvider
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, /me protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", Authenticate(deps.JWTSecret, deps.Users), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", Authenticate(deps.JWTSecret, deps.Users))

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Catálogos (protegido, solo lectura)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	protected.Get("/warehouses", warehouseHandler.List)
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/products", productHandler.List)

	// Inventory counts (protegido)
	counts := protected.Group("/inventory-counts")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	counts.Post("/", RequireWarehouseAccess("warehouseId"), inventoryHandler.Create)
	counts.Get("/", inventoryHandler.List)
	counts.Get("/:id", inventoryHandler.GetByID)
	counts.Put("/:id", inventoryHandler.Update)
	counts.Delete("/:id", inventoryHandler.Delete)

	// Revisión (solo ADMIN)
	counts.Post("/:id/approve", RequireRole(entity.RoleAdmin), inventoryHandler.Approve)
	counts.Post("/:id/request-recount", RequireRole(entity.RoleAdmin), inventoryHandler.RequestRecount)
	counts.Post("/:id/reject", RequireRole(entity.RoleAdmin), inventoryHandler.Reject)
}
