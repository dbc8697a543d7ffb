package usecase

import (
	"context"
	"time"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// ReportePDFGenerator genera los documentos PDF de los reportes.
type ReportePDFGenerator interface {
	GenerarEstadisticas(ctx context.Context, est dto.EstadisticasResponse, generado time.Time) ([]byte, error)
	GenerarAlertasStock(ctx context.Context, alertas dto.AlertasStockResponse, generado time.Time) ([]byte, error)
}

// ReporteUseCase reportes de solo lectura sobre inventario y movimientos.
type ReporteUseCase struct {
	repo repository.ReporteRepository
	pdf  ReportePDFGenerator
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(repo repository.ReporteRepository, pdf ReportePDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{repo: repo, pdf: pdf}
}

// Estadisticas devuelve el resumen general del inventario.
func (uc *ReporteUseCase) Estadisticas() (*dto.EstadisticasResponse, error) {
	est, err := uc.repo.EstadisticasGenerales()
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasResponse{
		TotalProductos:   est.TotalProductos,
		TotalMovimientos: est.TotalMovimientos,
		MovimientosPorTipo: dto.ResumenMovimientosResponse{
			Entrada: est.MovimientosPorTipo.Entrada,
			Salida:  est.MovimientosPorTipo.Salida,
			Ajuste:  est.MovimientosPorTipo.Ajuste,
			Total:   est.MovimientosPorTipo.Total,
		},
		ProductosAlerta: est.ProductosAlerta,
		ValorInventario: est.ValorInventario,
	}, nil
}

// MovimientosPorTipo agrega movimientos por tipo en un período requerido.
func (uc *ReporteUseCase) MovimientosPorTipo(desdeStr, hastaStr string) (*dto.MovimientosPorTipoResponse, error) {
	desde, hasta, err := parsePeriodo(desdeStr, hastaStr)
	if err != nil {
		return nil, err
	}
	aggs, err := uc.repo.MovimientosPorTipo(desde, hasta)
	if err != nil {
		return nil, err
	}
	out := &dto.MovimientosPorTipoResponse{
		Periodo: dto.RangoFechas{Desde: desdeStr, Hasta: hastaStr},
		Datos:   make([]dto.MovimientoTipoDTO, 0, len(aggs)),
	}
	for _, a := range aggs {
		out.Datos = append(out.Datos, dto.MovimientoTipoDTO{
			Tipo:          a.Tipo,
			Movimientos:   a.Movimientos,
			TotalUnidades: a.TotalUnidades,
		})
	}
	return out, nil
}

// ProductosMasMovidos devuelve el top de productos por cantidad de movimientos.
func (uc *ReporteUseCase) ProductosMasMovidos(limite int, desdeStr, hastaStr string) (*dto.ProductosMasMovidosResponse, error) {
	if limite <= 0 {
		limite = 10
	}
	if limite > 100 {
		limite = 100
	}
	desde, hasta, err := parsePeriodo(desdeStr, hastaStr)
	if err != nil {
		return nil, err
	}
	aggs, err := uc.repo.ProductosMasMovidos(limite, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductosMasMovidosResponse{
		Limite:  limite,
		Periodo: dto.RangoFechas{Desde: desdeStr, Hasta: hastaStr},
		Datos:   make([]dto.ProductoMovidoDTO, 0, len(aggs)),
	}
	for _, a := range aggs {
		out.Datos = append(out.Datos, dto.ProductoMovidoDTO{
			Producto: dto.ProductoResumen{
				ID:     a.Producto.ID,
				Codigo: a.Producto.Codigo,
				Nombre: a.Producto.Nombre,
			},
			Movimientos:   a.Movimientos,
			TotalUnidades: a.TotalUnidades,
		})
	}
	return out, nil
}

// ValorPromedioPorCategoria devuelve la valoración por categoría.
func (uc *ReporteUseCase) ValorPromedioPorCategoria() (*dto.ValorPromedioCategoriaResponse, error) {
	aggs, err := uc.repo.ValorPromedioPorCategoria()
	if err != nil {
		return nil, err
	}
	out := &dto.ValorPromedioCategoriaResponse{Datos: make([]dto.CategoriaValorDTO, 0, len(aggs))}
	for _, a := range aggs {
		out.Datos = append(out.Datos, dto.CategoriaValorDTO{
			Categoria:      dto.CategoriaResumen{ID: a.CategoriaID, Nombre: a.CategoriaNombre},
			PrecioPromedio: a.PrecioPromedio,
			TotalProductos: a.TotalProductos,
			ValorTotal:     a.ValorTotal,
		})
	}
	return out, nil
}

// EstadisticasPDF genera el reporte de estadísticas como PDF.
func (uc *ReporteUseCase) EstadisticasPDF(ctx context.Context) ([]byte, error) {
	est, err := uc.Estadisticas()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerarEstadisticas(ctx, *est, time.Now())
}

// AlertasStockPDF genera el reporte de alertas de stock como PDF.
// Recibe las alertas ya clasificadas por el motor de inventario.
func (uc *ReporteUseCase) AlertasStockPDF(ctx context.Context, alertas dto.AlertasStockResponse) ([]byte, error) {
	return uc.pdf.GenerarAlertasStock(ctx, alertas, time.Now())
}

// parsePeriodo exige ambas fechas (2006-01-02 o RFC 3339).
func parsePeriodo(desdeStr, hastaStr string) (time.Time, time.Time, error) {
	parse := func(s string) (time.Time, error) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, domain.ErrInvalidInput
		}
		return t, nil
	}
	if desdeStr == "" || hastaStr == "" {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	desde, err := parse(desdeStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hasta, err := parse(hastaStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return desde, hasta, nil
}
