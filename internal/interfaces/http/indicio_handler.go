package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
)

// IndicioHandler maneja las peticiones HTTP para indicios.
type IndicioHandler struct {
	uc *usecase.IndicioUseCase
}

// NewIndicioHandler construye el handler.
func NewIndicioHandler(uc *usecase.IndicioUseCase) *IndicioHandler {
	return &IndicioHandler{uc: uc}
}

// List godoc
// @Summary      Listar indicios
// @Tags         indicios
// @Produce      json
// @Param        idExpediente  query  int  false  "Filtrar por expediente"
// @Success      200  {array}   dto.IndicioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/indicios [get]
func (h *IndicioHandler) List(c *fiber.Ctx) error {
	idExpediente, err := queryID(c, "idExpediente")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), idExpediente)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener indicio por ID
// @Tags         indicios
// @Produce      json
// @Param        id   path  int  true  "ID del indicio"
// @Success      200  {object}  dto.IndicioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/indicios/{id} [get]
func (h *IndicioHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Registrar indicio
// @Tags         indicios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndicioRequest  true  "Datos del indicio"
// @Success      201   {object}  dto.IndicioCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/indicios [post]
func (h *IndicioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndicioRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IndicioCreatedResponse{Message: "Indicio creado exitosamente", IdIndicio: id})
}

// Update godoc
// @Summary      Actualizar indicio
// @Tags         indicios
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del indicio"
// @Param        body  body  dto.UpdateIndicioRequest  true  "Campos del indicio"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/indicios/{id} [put]
func (h *IndicioHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateIndicioRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Indicio actualizado exitosamente"})
}

// Delete godoc
// @Summary      Eliminar indicio
// @Tags         indicios
// @Produce      json
// @Param        id   path  int  true  "ID del indicio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/indicios/{id} [delete]
func (h *IndicioHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Indicio eliminado exitosamente"})
}
