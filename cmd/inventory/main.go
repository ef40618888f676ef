package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/inventario-micro/internal/application/inventory"
	"github.com/tu-usuario/inventario-micro/internal/infrastructure/httpclient"
	"github.com/tu-usuario/inventario-micro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-micro/internal/interfaces/http"
	"github.com/tu-usuario/inventario-micro/pkg/config"
	"github.com/tu-usuario/inventario-micro/pkg/logger"
)

func main() {
	cfg, err := config.Load("inventory-service", 5000)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando servicio de inventario")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	identityResolver := httpclient.NewIdentityClient(cfg.Services.UserURL)
	productPurger := httpclient.NewProductClient(cfg.Services.ProductURL)
	itemUC := inventory.NewItemUseCase(itemRepo, productPurger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.InventoryRouter(app, httpRouter.NewInventoryHandler(itemUC), identityResolver)

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

	log.Info().Msg("servicio detenido")
}
