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

	"github.com/jhoicas/hostal-api/internal/application/auth"
	"github.com/jhoicas/hostal-api/internal/application/store"
	"github.com/jhoicas/hostal-api/internal/application/usecase"
	"github.com/jhoicas/hostal-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/hostal-api/internal/interfaces/http"
	"github.com/jhoicas/hostal-api/pkg/config"
	"github.com/jhoicas/hostal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	userRepo := postgres.NewUserRepository(pool)
	floorRepo := postgres.NewFloorRepository(pool)
	roomTypeRepo := postgres.NewRoomTypeRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	verifier := auth.NewVerificationService(userRepo)

	floorUC := usecase.NewFloorUseCase(floorRepo)
	roomTypeUC := usecase.NewRoomTypeUseCase(roomTypeRepo)
	roomUC := usecase.NewRoomUseCase(roomRepo, roomTypeRepo, floorRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	productUC := store.NewProductUseCase(txRunner, productRepo)
	kardexUC := store.NewKardexUseCase(txRunner, movementRepo, cfg.Inventory.AllowNegativeStock)
	saleUC := store.NewSaleUseCase(txRunner, saleRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, cfg.Inventory.LowStockThreshold)

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
		Title:    "Hostal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Verifier:    verifier,
		FloorUC:     floorUC,
		RoomTypeUC:  roomTypeUC,
		RoomUC:      roomUC,
		UserUC:      userUC,
		CategoryUC:  categoryUC,
		UnitUC:      unitUC,
		ProductUC:   productUC,
		KardexUC:    kardexUC,
		SaleUC:      saleUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
