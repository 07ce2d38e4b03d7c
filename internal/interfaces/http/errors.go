package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
)

// statusFor traduce los errores de dominio a códigos HTTP. Cualquier otro error es 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError escribe {"message": ...} con el código que corresponde al error.
// Los 5xx se registran con el logger de la petición; el mensaje crudo viaja al cliente.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		RequestLogger(c).Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error procesando la petición")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Message: err.Error()})
}

// paramID lee un parámetro de ruta que debe ser un entero positivo.
func paramID(c *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, domain.Validation(name + " debe ser un entero positivo")
	}
	return id, nil
}

// queryID lee un query param opcional que, si viene, debe ser un entero positivo.
func queryID(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, domain.Validation(name + " debe ser un entero positivo")
	}
	return &id, nil
}

// parseBody decodifica el JSON del cuerpo. Un cuerpo vacío deja in con sus valores cero,
// así la validación de presencia responde con el mensaje del campo faltante.
func parseBody(c *fiber.Ctx, in any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(in); err != nil {
		return domain.Validation("Cuerpo de la petición inválido")
	}
	return nil
}
