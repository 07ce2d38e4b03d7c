package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/application/expediente"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
)

// ExpedienteHandler CRUD de expedientes, transiciones del flujo de revisión y listado de sus indicios.
type ExpedienteHandler struct {
	uc        *expediente.UseCase
	workflow  *expediente.WorkflowUseCase
	indicioUC *usecase.IndicioUseCase
}

// NewExpedienteHandler construye el handler.
func NewExpedienteHandler(uc *expediente.UseCase, workflow *expediente.WorkflowUseCase, indicioUC *usecase.IndicioUseCase) *ExpedienteHandler {
	return &ExpedienteHandler{uc: uc, workflow: workflow, indicioUC: indicioUC}
}

// List godoc
// @Summary      Listar expedientes
// @Tags         expedientes
// @Produce      json
// @Success      200  {array}   dto.ExpedienteResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/expedientes [get]
func (h *ExpedienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener expediente por ID
// @Tags         expedientes
// @Produce      json
// @Param        id   path  int  true  "ID del expediente"
// @Success      200  {object}  dto.ExpedienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id} [get]
func (h *ExpedienteHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Registrar expediente
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpedienteRequest  true  "FileNumber, Description, IdTecnicoRegistro, IdEstado"
// @Success      201   {object}  dto.ExpedienteCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expedientes [post]
func (h *ExpedienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpedienteRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ExpedienteCreatedResponse{Message: "Expediente creado exitosamente", IdExpediente: id})
}

// Update godoc
// @Summary      Actualizar expediente
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID del expediente"
// @Param        body  body  dto.UpdateExpedienteRequest  true  "Campos del expediente"
// @Success      200   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id} [put]
func (h *ExpedienteHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateExpedienteRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Expediente actualizado exitosamente"})
}

// Delete godoc
// @Summary      Eliminar expediente (y sus indicios)
// @Tags         expedientes
// @Produce      json
// @Param        id   path  int  true  "ID del expediente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id} [delete]
func (h *ExpedienteHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Expediente eliminado exitosamente"})
}

// EnviarRevision godoc
// @Summary      Enviar expediente a revisión
// @Tags         expedientes
// @Produce      json
// @Param        id   path  int  true  "ID del expediente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/enviar-revision [post]
func (h *ExpedienteHandler) EnviarRevision(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.workflow.EnviarRevision(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Expediente enviado a revisión exitosamente"})
}

// Aprobar godoc
// @Summary      Aprobar expediente
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID del expediente"
// @Param        body  body  dto.AprobarExpedienteRequest  true  "IdCoordinadorRevision"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/aprobar [post]
func (h *ExpedienteHandler) Aprobar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AprobarExpedienteRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.workflow.Aprobar(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Expediente aprobado exitosamente"})
}

// Rechazar godoc
// @Summary      Rechazar expediente
// @Tags         expedientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID del expediente"
// @Param        body  body  dto.RechazarExpedienteRequest  true  "IdCoordinadorRevision, ObservacionesExpediente"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/expedientes/{id}/rechazar [post]
func (h *ExpedienteHandler) Rechazar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RechazarExpedienteRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.workflow.Rechazar(c.UserContext(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Expediente rechazado exitosamente"})
}

// ListIndicios godoc
// @Summary      Listar indicios de un expediente
// @Tags         indicios
// @Produce      json
// @Param        idExpediente  path  int  true  "ID del expediente"
// @Success      200  {array}   dto.IndicioResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/expedientes/{idExpediente}/indicios [get]
func (h *ExpedienteHandler) ListIndicios(c *fiber.Ctx) error {
	id, err := paramID(c, "idExpediente")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.indicioUC.List(c.UserContext(), &id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
