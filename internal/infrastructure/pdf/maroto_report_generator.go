// Package pdf genera los reportes de inventario en PDF (A4) con Maroto v2:
// resumen de estadísticas generales y listado de alertas de stock por nivel.
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

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/usecase"
)

var _ usecase.ReportePDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorAmber   = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportePDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerarEstadisticas genera el PDF del resumen general del inventario.
func (g *MarotoReportGenerator) GenerarEstadisticas(_ context.Context, est dto.EstadisticasResponse, generado time.Time) ([]byte, error) {
	m := newDocument("Reporte de Estadísticas")

	m.AddRows(titleRow("REPORTE DE ESTADÍSTICAS DE INVENTARIO", generado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(statRow("Total de productos activos", fmt.Sprintf("%d", est.TotalProductos)))
	m.AddRows(statRow("Total de movimientos", fmt.Sprintf("%d", est.TotalMovimientos)))
	m.AddRows(statRow("Entradas", fmt.Sprintf("%d", est.MovimientosPorTipo.Entrada)))
	m.AddRows(statRow("Salidas", fmt.Sprintf("%d", est.MovimientosPorTipo.Salida)))
	m.AddRows(statRow("Ajustes", fmt.Sprintf("%d", est.MovimientosPorTipo.Ajuste)))
	m.AddRows(statRow("Productos en alerta", fmt.Sprintf("%d", est.ProductosAlerta)))
	m.AddRows(statRow("Valor del inventario", "$"+est.ValorInventario.StringFixed(2)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estadisticas: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerarAlertasStock genera el PDF de alertas de stock, agrupado por nivel.
func (g *MarotoReportGenerator) GenerarAlertasStock(_ context.Context, alertas dto.AlertasStockResponse, generado time.Time) ([]byte, error) {
	m := newDocument("Reporte de Alertas de Stock")

	m.AddRows(titleRow("REPORTE DE ALERTAS DE STOCK", generado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	addSeccion := func(titulo string, color *props.Color, productos []dto.AlertaProducto) {
		m.AddRows(seccionRow(titulo, color, len(productos)))
		if len(productos) == 0 {
			return
		}
		m.AddRows(alertaHeaderRow())
		for _, p := range productos {
			m.AddRows(alertaRow(p))
		}
	}

	addSeccion("STOCK CRÍTICO", colorRed, alertas.Critico)
	addSeccion("STOCK BAJO", colorAmber, alertas.Bajo)
	addSeccion("STOCK NORMAL", colorPrimary, alertas.Normal)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar alertas: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()
	return maroto.New(cfg)
}

// titleRow: título del reporte (izq) + fecha de generación (der).
func titleRow(titulo string, generado time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generado.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// statRow: etiqueta + valor de una estadística.
func statRow(label, valor string) core.Row {
	return row.New(8).Add(
		col.New(7).Add(text.New(label, props.Text{Size: 10, Top: 2, Left: 1})),
		col.New(5).Add(text.New(valor, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

// seccionRow: cabecera de una sección de alertas con su conteo.
func seccionRow(titulo string, color *props.Color, total int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s (%d)", titulo, total), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: color, Top: 3,
			}),
		),
	)
}

// alertaHeaderRow: cabecera de la tabla de productos en alerta.
func alertaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Código", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Stock", 2, align.Right),
		h("Mínimo", 2, align.Right),
		h("Crítico", 1, align.Right),
	)
}

// alertaRow: una fila por producto.
func alertaRow(p dto.AlertaProducto) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(p.Codigo, 2, align.Left),
		cell(p.Nombre, 5, align.Left),
		cell(fmt.Sprintf("%d", p.StockActual), 2, align.Right),
		cell(fmt.Sprintf("%d", p.StockMinimo), 2, align.Right),
		cell(fmt.Sprintf("%d", p.StockCritico), 1, align.Right),
	)
}
