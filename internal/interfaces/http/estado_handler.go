package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
)

// EstadoHandler maneja las peticiones HTTP para estados de expediente.
type EstadoHandler struct {
	uc *usecase.EstadoUseCase
}

// NewEstadoHandler construye el handler.
func NewEstadoHandler(uc *usecase.EstadoUseCase) *EstadoHandler {
	return &EstadoHandler{uc: uc}
}

// List godoc
// @Summary      Listar estados
// @Tags         estados
// @Produce      json
// @Success      200  {array}   dto.EstadoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/estados [get]
func (h *EstadoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener estado por ID
// @Tags         estados
// @Produce      json
// @Param        id   path  int  true  "ID del estado"
// @Success      200  {object}  dto.EstadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estados/{id} [get]
func (h *EstadoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear estado
// @Tags         estados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEstadoRequest  true  "Datos del estado"
// @Success      201   {object}  dto.EstadoCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estados [post]
func (h *EstadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEstadoRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EstadoCreatedResponse{Message: "Estado creado exitosamente", IdEstado: id})
}

// Update godoc
// @Summary      Actualizar estado
// @Tags         estados
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del estado"
// @Param        body  body  dto.UpdateEstadoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/estados/{id} [put]
func (h *EstadoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateEstadoRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Estado actualizado exitosamente"})
}

// Delete godoc
// @Summary      Desactivar estado
// @Tags         estados
// @Produce      json
// @Param        id   path  int  true  "ID del estado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/estados/{id} [delete]
func (h *EstadoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Estado eliminado exitosamente"})
}
