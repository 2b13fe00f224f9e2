package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/auth"
	"github.com/jhoicas/hostal-api/internal/application/store"
	"github.com/jhoicas/hostal-api/internal/application/usecase"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Verifier    *auth.VerificationService
	FloorUC     *usecase.FloorUseCase
	RoomTypeUC  *usecase.RoomTypeUseCase
	RoomUC      *usecase.RoomUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	UnitUC      *usecase.UnitUseCase
	ProductUC   *store.ProductUseCase
	KardexUC    *store.KardexUseCase
	SaleUC      *store.SaleUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Cada ruta protegida declara su lista
// de roles permitidos; RequireRole re-valida contra la DB en cada request.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	admin := func() fiber.Handler { return RequireRole(deps.Verifier, entity.RoleAdmin) }
	staff := func() fiber.Handler { return RequireRole(deps.Verifier, entity.RoleAdmin, entity.RoleRecepcionista) }
	anyRole := func() fiber.Handler { return RequireRole(deps.Verifier, entity.AllRoles()...) }

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.RegisterAdmin)
	authGroup.Get("/system-status", authHandler.SystemStatus)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Verificación de sesión: cualquier rol válido
	protected.Get("/verify-session", anyRole(), authHandler.VerifySession)

	// Pisos: lectura para todo el personal, escritura solo ADMIN
	floors := protected.Group("/floors")
	floorHandler := NewFloorHandler(deps.FloorUC)
	floors.Get("/", anyRole(), floorHandler.List)
	floors.Post("/", admin(), floorHandler.Create)
	floors.Put("/:id", admin(), floorHandler.Update)
	floors.Delete("/:id", admin(), floorHandler.Delete)

	// Tipos de habitación: solo ADMIN configura, todos leen
	roomTypes := protected.Group("/room-types")
	roomTypeHandler := NewRoomTypeHandler(deps.RoomTypeUC)
	roomTypes.Get("/", anyRole(), roomTypeHandler.List)
	roomTypes.Post("/", admin(), roomTypeHandler.Create)
	roomTypes.Put("/:id", admin(), roomTypeHandler.Update)
	roomTypes.Delete("/:id", admin(), roomTypeHandler.Delete)

	// Habitaciones: LIMPIEZA puede listar y cambiar estado (ej. CLEANING →
	// AVAILABLE); altas y bajas solo ADMIN
	rooms := protected.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms.Get("/", anyRole(), roomHandler.List)
	rooms.Post("/", admin(), roomHandler.Create)
	rooms.Patch("/:id/status", anyRole(), roomHandler.UpdateStatus)
	rooms.Delete("/:id", admin(), roomHandler.Delete)

	// Usuarios: solo ADMIN
	users := protected.Group("/users", admin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/status", userHandler.UpdateStatus)
	users.Delete("/:id", userHandler.Delete)

	// Tienda: operación diaria para ADMIN y RECEPCIONISTA
	storeGroup := protected.Group("/store", staff())

	categories := storeGroup.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	units := storeGroup.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Get("/", unitHandler.List)
	units.Post("/", unitHandler.Create)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	products := storeGroup.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	kardex := storeGroup.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.KardexUC)
	kardex.Get("/", kardexHandler.List)
	kardex.Post("/", kardexHandler.RegisterMovement)

	sales := storeGroup.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Dashboard: ADMIN y RECEPCIONISTA
	dashboard := protected.Group("/dashboard", staff())
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
