package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/jhoicas/dicri-api/docs"
	"github.com/jhoicas/dicri-api/internal/application/auth"
	"github.com/jhoicas/dicri-api/internal/application/expediente"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
	"github.com/jhoicas/dicri-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/dicri-api/internal/infrastructure/pdf"
	"github.com/jhoicas/dicri-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/dicri-api/internal/interfaces/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP de la API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return err
	}
	defer pool.Close()

	m, err := metrics.New()
	if err != nil {
		return err
	}
	gw := postgres.NewGateway(pool, m)

	rolRepo := postgres.NewRolRepository(gw)
	estadoRepo := postgres.NewEstadoRepository(gw)
	usuarioRepo := postgres.NewUsuarioRepository(gw)
	expedienteRepo := postgres.NewExpedienteRepository(gw)
	indicioRepo := postgres.NewIndicioRepository(gw)
	reporteRepo := postgres.NewReporteRepository(gw)

	// PDF: reporte de expedientes
	pdfGenerator := infrapdf.NewMarotoReporteGenerator()

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:         cfg.App.Name,
		AllowOrigins: cfg.HTTP.AllowOrigins,
		Log:          log.Component("http"),
		Observer:     m,
	})

	// Swagger UI: http://localhost:<port>/docs (solo si el archivo existe)
	docs.SwaggerInfo.Version = cfg.App.Version
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "API DICRI",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}
	app.Get("/api/docs/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RolUC:        usecase.NewRolUseCase(rolRepo),
		EstadoUC:     usecase.NewEstadoUseCase(estadoRepo),
		UsuarioUC:    usecase.NewUsuarioUseCase(usuarioRepo),
		AuthUC:       auth.NewAuthUseCase(usuarioRepo),
		ExpedienteUC: expediente.NewUseCase(expedienteRepo),
		WorkflowUC:   expediente.NewWorkflowUseCase(expedienteRepo, estadoRepo, nil),
		IndicioUC:    usecase.NewIndicioUseCase(indicioRepo),
		ReporteUC:    usecase.NewReporteUseCase(reporteRepo, pdfGenerator),
		Version:      cfg.App.Version,
		DB:           pool,
		Metrics:      m.Handler(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
