package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de agregación para reportes (solo lectura).
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// EstadisticasGenerales calcula los totales globales del inventario.
// El valor de inventario es SUM(stock_actual * precio_venta) sobre productos activos.
func (r *ReporteRepo) EstadisticasGenerales() (*entity.Estadisticas, error) {
	var est entity.Estadisticas
	query := `
		SELECT
			(SELECT COUNT(*) FROM productos WHERE activo = true),
			(SELECT COUNT(*) FROM movimientos),
			(SELECT COUNT(*) FROM productos WHERE activo = true AND stock_actual <= stock_minimo),
			(SELECT COALESCE(SUM(stock_actual * precio_venta), 0) FROM productos WHERE activo = true)`
	err := r.q.QueryRow(context.Background(), query).Scan(
		&est.TotalProductos, &est.TotalMovimientos, &est.ProductosAlerta, &est.ValorInventario,
	)
	if err != nil {
		return nil, fmt.Errorf("estadisticas generales: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT tipo_movimiento, COUNT(*) FROM movimientos GROUP BY tipo_movimiento`)
	if err != nil {
		return nil, fmt.Errorf("estadisticas por tipo: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tipo string
		var count int
		if err := rows.Scan(&tipo, &count); err != nil {
			return nil, fmt.Errorf("scan estadisticas: %w", err)
		}
		switch tipo {
		case entity.MovimientoEntrada:
			est.MovimientosPorTipo.Entrada = count
		case entity.MovimientoSalida:
			est.MovimientosPorTipo.Salida = count
		case entity.MovimientoAjuste:
			est.MovimientosPorTipo.Ajuste = count
		}
		est.MovimientosPorTipo.Total += count
	}
	return &est, rows.Err()
}

// MovimientosPorTipo agrega movimientos y unidades por tipo en el período.
func (r *ReporteRepo) MovimientosPorTipo(desde, hasta time.Time) ([]entity.MovimientoTipoAgg, error) {
	query := `
		SELECT tipo_movimiento, COUNT(*), COALESCE(SUM(cantidad), 0)
		FROM movimientos
		WHERE fecha_movimiento >= $1 AND fecha_movimiento <= $2
		GROUP BY tipo_movimiento
		ORDER BY tipo_movimiento`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("movimientos por tipo: %w", err)
	}
	defer rows.Close()
	var list []entity.MovimientoTipoAgg
	for rows.Next() {
		var a entity.MovimientoTipoAgg
		if err := rows.Scan(&a.Tipo, &a.Movimientos, &a.TotalUnidades); err != nil {
			return nil, fmt.Errorf("scan agregado: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ProductosMasMovidos devuelve los productos con más movimientos en el período.
func (r *ReporteRepo) ProductosMasMovidos(limite int, desde, hasta time.Time) ([]entity.ProductoMovidoAgg, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre, COUNT(m.id), COALESCE(SUM(m.cantidad), 0)
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id
		WHERE m.fecha_movimiento >= $1 AND m.fecha_movimiento <= $2
		GROUP BY p.id, p.codigo, p.nombre
		ORDER BY COUNT(m.id) DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, desde, hasta, limite)
	if err != nil {
		return nil, fmt.Errorf("productos mas movidos: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductoMovidoAgg
	for rows.Next() {
		var a entity.ProductoMovidoAgg
		if err := rows.Scan(&a.Producto.ID, &a.Producto.Codigo, &a.Producto.Nombre, &a.Movimientos, &a.TotalUnidades); err != nil {
			return nil, fmt.Errorf("scan producto movido: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ValorPromedioPorCategoria agrega precios y valor de inventario por categoría (productos activos).
func (r *ReporteRepo) ValorPromedioPorCategoria() ([]entity.CategoriaValorAgg, error) {
	query := `
		SELECT c.id, c.nombre, COALESCE(AVG(p.precio_venta), 0), COUNT(p.id), COALESCE(SUM(p.stock_actual * p.precio_venta), 0)
		FROM categorias c
		LEFT JOIN productos p ON p.categoria_id = c.id AND p.activo = true
		GROUP BY c.id, c.nombre
		ORDER BY c.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("valor por categoria: %w", err)
	}
	defer rows.Close()
	var list []entity.CategoriaValorAgg
	for rows.Next() {
		var a entity.CategoriaValorAgg
		if err := rows.Scan(&a.CategoriaID, &a.CategoriaNombre, &a.PrecioPromedio, &a.TotalProductos, &a.ValorTotal); err != nil {
			return nil, fmt.Errorf("scan categoria valor: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
