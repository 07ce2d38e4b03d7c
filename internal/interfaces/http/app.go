package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/pkg/logger"
)

// AppOptions configuración de la aplicación Fiber y sus middlewares.
type AppOptions struct {
	Name         string
	AllowOrigins string
	Log          *logger.Logger
	Observer     HTTPObserver // opcional
}

// NewApp crea la aplicación Fiber con recover, request id, CORS y log por petición.
func NewApp(opts AppOptions) *fiber.App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	allow := opts.AllowOrigins
	if allow == "" {
		allow = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allow,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(RequestLogging(log, opts.Observer))
	return app
}

// errorHandler errores que no pasan por respondError (rutas inexistentes, pánicos recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(dto.ErrorResponse{Message: err.Error()})
}
