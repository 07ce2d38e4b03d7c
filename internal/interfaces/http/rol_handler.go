package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
)

// RolHandler maneja las peticiones HTTP para roles.
type RolHandler struct {
	uc *usecase.RolUseCase
}

// NewRolHandler construye el handler.
func NewRolHandler(uc *usecase.RolUseCase) *RolHandler {
	return &RolHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}   dto.RolResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/roles [get]
func (h *RolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener rol por ID
// @Tags         roles
// @Produce      json
// @Param        id   path  int  true  "ID del rol"
// @Success      200  {object}  dto.RolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RolHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear rol
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRolRequest  true  "Datos del rol"
// @Success      201   {object}  dto.RolCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRolRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RolCreatedResponse{Message: "Rol creado exitosamente", IdRol: id})
}

// Update godoc
// @Summary      Actualizar rol
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del rol"
// @Param        body  body  dto.UpdateRolRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RolHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateRolRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Rol actualizado exitosamente"})
}

// Delete godoc
// @Summary      Desactivar rol
// @Tags         roles
// @Produce      json
// @Param        id   path  int  true  "ID del rol"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RolHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Rol eliminado exitosamente"})
}
