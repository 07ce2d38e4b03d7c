// Package pdf genera la versión imprimible del reporte de expedientes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sistema + título        │  Período + fecha emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Descripción | Estado | Técnico | Coord. | Ind. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: expedientes / indicios                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/application/usecase"
)

var _ usecase.ReportePDFGenerator = (*MarotoReporteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReporteGenerator implementa usecase.ReportePDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct {
	now func() time.Time
	p   *message.Printer
}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator {
	return &MarotoReporteGenerator{now: time.Now, p: message.NewPrinter(language.Spanish)}
}

// GenerateExpedientesPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerateExpedientesPDF(
	_ context.Context,
	rows []dto.ReporteExpedienteDTO,
	periodo string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de expedientes", true).
		WithAuthor("DICRI", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(periodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin expedientes en el período.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableDetailRows(rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReporteGenerator) headerRow(periodo string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("DICRI - Sistema de Gestión de Evidencias", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de expedientes", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° expediente", 2, align.Left),
		h("Descripción", 3, align.Left),
		h("Estado", 2, align.Left),
		h("Técnico", 2, align.Left),
		h("Coordinador", 2, align.Left),
		h("Indicios", 1, align.Right),
	)
}

// tableDetailRows una fila por expediente.
func tableDetailRows(rows []dto.ReporteExpedienteDTO) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			cell(r.FileNumber, 2, align.Left),
			cell(truncate(r.Description, 40), 3, align.Left),
			cell(r.StateName, 2, align.Left),
			cell(r.TecnicoRegistro, 2, align.Left),
			cell(deref(r.CoordinadorRevision, "—"), 2, align.Left),
			cell(fmt.Sprint(r.TotalIndicios), 1, align.Right),
		))
	}
	return result
}

func (g *MarotoReporteGenerator) totalsRow(rows []dto.ReporteExpedienteDTO) core.Row {
	indicios := 0
	for _, r := range rows {
		indicios += r.TotalIndicios
	}
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(4).Add(label("Total expedientes:", 2), label("Total indicios:", 8)),
		col.New(2).Add(value(g.formatInt(len(rows)), 2), value(g.formatInt(indicios), 8)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatInt separador de miles según la convención en español ("1.234").
func (g *MarotoReporteGenerator) formatInt(n int) string {
	return g.p.Sprintf("%d", n)
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
