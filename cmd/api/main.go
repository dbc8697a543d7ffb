package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/inventra/inventario-api/internal/application/auth"
	"github.com/inventra/inventario-api/internal/application/inventory"
	"github.com/inventra/inventario-api/internal/application/usecase"
	infrapdf "github.com/inventra/inventario-api/internal/infrastructure/pdf"
	"github.com/inventra/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/inventra/inventario-api/internal/interfaces/http"
	"github.com/inventra/inventario-api/pkg/config"
	"github.com/inventra/inventario-api/pkg/logger"
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

	productoRepo := postgres.NewProductoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movimientoUC := inventory.NewMovimientoUseCase(txRunner, movimientoRepo, productoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, productoRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo, productoRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reporteUC := usecase.NewReporteUseCase(reporteRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
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
	if mw := httpRouter.Swagger("./docs/swagger.json"); mw != nil {
		app.Use(mw)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, UI de swagger deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:   productoUC,
		MovimientoUC: movimientoUC,
		CategoriaUC:  categoriaUC,
		ProveedorUC:  proveedorUC,
		UsuarioUC:    usuarioUC,
		ReporteUC:    reporteUC,
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
