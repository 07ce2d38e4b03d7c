package http

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/dicri-api/internal/application/auth"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/application/expediente"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
)

// Pinger comprueba la conexión a la base de datos (lo cumple *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RolUC        *usecase.RolUseCase
	EstadoUC     *usecase.EstadoUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	AuthUC       *auth.AuthUseCase
	ExpedienteUC *expediente.UseCase
	WorkflowUC   *expediente.WorkflowUseCase
	IndicioUC    *usecase.IndicioUseCase
	ReporteUC    *usecase.ReporteUseCase

	Version string
	DB      Pinger          // opcional: /health
	Metrics nethttp.Handler // opcional: /metrics
}

// Router registra las rutas de la API. Ninguna ruta requiere autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.DB != nil {
		app.Get("/health", healthHandler(deps.DB))
	}
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.BannerResponse{Message: "API DICRI - Sistema de Gestión de Evidencias", Version: deps.Version})
	})

	// Login (también expuesto bajo /usuarios/login)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Post("/usuarios/login", authHandler.Login)

	roles := api.Group("/roles")
	rolHandler := NewRolHandler(deps.RolUC)
	roles.Get("/", rolHandler.List)
	roles.Get("/:id", rolHandler.GetByID)
	roles.Post("/", rolHandler.Create)
	roles.Put("/:id", rolHandler.Update)
	roles.Delete("/:id", rolHandler.Delete)

	estados := api.Group("/estados")
	estadoHandler := NewEstadoHandler(deps.EstadoUC)
	estados.Get("/", estadoHandler.List)
	estados.Get("/:id", estadoHandler.GetByID)
	estados.Post("/", estadoHandler.Create)
	estados.Put("/:id", estadoHandler.Update)
	estados.Delete("/:id", estadoHandler.Delete)

	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Expedientes + flujo de revisión
	expedientes := api.Group("/expedientes")
	expHandler := NewExpedienteHandler(deps.ExpedienteUC, deps.WorkflowUC, deps.IndicioUC)
	expedientes.Get("/", expHandler.List)
	expedientes.Get("/:idExpediente/indicios", expHandler.ListIndicios)
	expedientes.Get("/:id", expHandler.GetByID)
	expedientes.Post("/", expHandler.Create)
	expedientes.Put("/:id", expHandler.Update)
	expedientes.Delete("/:id", expHandler.Delete)
	expedientes.Post("/:id/enviar-revision", expHandler.EnviarRevision)
	expedientes.Post("/:id/aprobar", expHandler.Aprobar)
	expedientes.Post("/:id/rechazar", expHandler.Rechazar)

	indicios := api.Group("/indicios")
	indicioHandler := NewIndicioHandler(deps.IndicioUC)
	indicios.Get("/", indicioHandler.List)
	indicios.Get("/:id", indicioHandler.GetByID)
	indicios.Post("/", indicioHandler.Create)
	indicios.Put("/:id", indicioHandler.Update)
	indicios.Delete("/:id", indicioHandler.Delete)

	reportes := api.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/expedientes", reporteHandler.Expedientes)
	reportes.Get("/expedientes/pdf", reporteHandler.ExpedientesPDF)
	reportes.Get("/estadisticas", reporteHandler.Estadisticas)
	reportes.Get("/tecnicos", reporteHandler.Tecnicos)
	reportes.Get("/coordinadores", reporteHandler.Coordinadores)
}

func healthHandler(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			RequestLogger(c).Warn().Err(err).Msg("health: base de datos no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Database: "down"})
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Database: "up"})
	}
}
