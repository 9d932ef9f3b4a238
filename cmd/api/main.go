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

	"github.com/jhoicas/lp-label-api/internal/application/labels"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
	infrapdf "github.com/jhoicas/lp-label-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lp-label-api/internal/infrastructure/postgres"
	"github.com/jhoicas/lp-label-api/internal/infrastructure/printer"
	httpRouter "github.com/jhoicas/lp-label-api/internal/interfaces/http"
	"github.com/jhoicas/lp-label-api/pkg/config"
	"github.com/jhoicas/lp-label-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Strs("printers", cfg.Printers.IDs()).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}
	defaults := labels.Defaults{
		Size:      label.LabelSize(cfg.Labels.DefaultSize),
		IncludeQR: cfg.Labels.DefaultIncludeQR,
	}
	if !defaults.Size.Valid() {
		log.Fatal().Str("size", cfg.Labels.DefaultSize).Msg("LABEL_DEFAULT_SIZE inválido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	lpRepo := postgres.NewLicensePlateRepository(pool)
	gen := label.NewZPLGenerator()
	ucLog := log.Component("labels")

	printUC := labels.NewPrintUseCase(lpRepo, gen, defaults, ucLog)
	previewUC := labels.NewPreviewUseCase(lpRepo, gen, infrapdf.NewMarotoLabelPreview(), defaults, ucLog)

	printerClient := printer.NewRawTCPClient(printer.Options{
		Timeout:    cfg.Printers.Timeout,
		Encoding:   cfg.Printers.Encoding,
		RatePerSec: cfg.Printers.RatePerSec,
	}, log.Component("printer"))
	dispatchUC := labels.NewDispatchUseCase(printerClient, cfg.Printers.Addrs, cfg.Printers.DefaultID, ucLog)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "LP Label API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		PrintUC:    printUC,
		PreviewUC:  previewUC,
		DispatchUC: dispatchUC,
		JWTSecret:  cfg.JWT.Secret,
		Logger:     log.Component("http"),
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
