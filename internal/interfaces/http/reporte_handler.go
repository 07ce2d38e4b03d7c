package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
)

// ReporteHandler reportes de solo lectura.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

func reporteQuery(c *fiber.Ctx) dto.ReporteQuery {
	return dto.ReporteQuery{
		FechaInicio: c.Query("fechaInicio"),
		FechaFin:    c.Query("fechaFin"),
		Estado:      c.Query("estado"),
	}
}

// Expedientes godoc
// @Summary      Reporte de expedientes
// @Tags         reportes
// @Produce      json
// @Param        fechaInicio  query  string  false  "YYYY-MM-DD"
// @Param        fechaFin     query  string  false  "YYYY-MM-DD"
// @Param        estado       query  int     false  "ID del estado"
// @Success      200  {array}   dto.ReporteExpedienteDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/expedientes [get]
func (h *ReporteHandler) Expedientes(c *fiber.Ctx) error {
	out, err := h.uc.Expedientes(c.UserContext(), reporteQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExpedientesPDF godoc
// @Summary      Reporte de expedientes en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        fechaInicio  query  string  false  "YYYY-MM-DD"
// @Param        fechaFin     query  string  false  "YYYY-MM-DD"
// @Param        estado       query  int     false  "ID del estado"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/expedientes/pdf [get]
func (h *ReporteHandler) ExpedientesPDF(c *fiber.Ctx) error {
	b, err := h.uc.ExpedientesPDF(c.UserContext(), reporteQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reporte-expedientes.pdf"`)
	return c.Send(b)
}

// Estadisticas godoc
// @Summary      Estadísticas por estado y totales
// @Tags         reportes
// @Produce      json
// @Param        fechaInicio  query  string  false  "YYYY-MM-DD"
// @Param        fechaFin     query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.EstadisticasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/estadisticas [get]
func (h *ReporteHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.UserContext(), reporteQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Tecnicos godoc
// @Summary      Productividad de técnicos
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.ReporteTecnicoDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/tecnicos [get]
func (h *ReporteHandler) Tecnicos(c *fiber.Ctx) error {
	out, err := h.uc.Tecnicos(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Coordinadores godoc
// @Summary      Revisiones por coordinador
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.ReporteCoordinadorDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/coordinadores [get]
func (h *ReporteHandler) Coordinadores(c *fiber.Ctx) error {
	out, err := h.uc.Coordinadores(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
