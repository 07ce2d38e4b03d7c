package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/dicri-api/pkg/logger"
)

// LocalLogger clave de c.Locals con el logger de la petición.
const LocalLogger = "logger"

// HTTPObserver recibe la duración de cada petición (métricas).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RequestLogging registra una línea por petición (método, ruta, status, latencia, request id)
// y deja en c.Locals un sublogger con el request id para los handlers.
// obs puede ser nil.
func RequestLogging(log *logger.Logger, obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		reqLog := log.With("request_id", rid)
		c.Locals(LocalLogger, reqLog)

		err := c.Next()
		if err != nil {
			// el ErrorHandler de Fiber escribe la respuesta; aquí solo se necesita el status final
			if ferr := c.App().ErrorHandler(c, err); ferr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		latency := time.Since(start)
		if obs != nil {
			obs.ObserveHTTP(c.Method(), c.Route().Path, status, latency)
		}

		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latency).
			Msg("request")
		return nil
	}
}

// RequestLogger devuelve el logger de la petición; un logger nulo si el middleware no está montado.
func RequestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(LocalLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
