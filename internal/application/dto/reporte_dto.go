package dto

import "github.com/shopspring/decimal"

// EstadisticasResponse resumen general del inventario.
type EstadisticasResponse struct {
	TotalProductos     int                        `json:"total_productos"`
	TotalMovimientos   int                        `json:"total_movimientos"`
	MovimientosPorTipo ResumenMovimientosResponse `json:"movimientos_por_tipo"`
	ProductosAlerta    int                        `json:"productos_alerta"`
	ValorInventario    decimal.Decimal            `json:"valor_inventario"`
}

// RangoFechas período consultado.
type RangoFechas struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`
}

// MovimientoTipoDTO agregado de movimientos de un tipo.
type MovimientoTipoDTO struct {
	Tipo          string `json:"tipo"`
	Movimientos   int    `json:"movimientos"`
	TotalUnidades int    `json:"total_unidades"`
}

// MovimientosPorTipoResponse agregados por tipo en un período.
type MovimientosPorTipoResponse struct {
	Periodo RangoFechas         `json:"periodo"`
	Datos   []MovimientoTipoDTO `json:"datos"`
}

// ProductoMovidoDTO producto con su actividad en un período.
type ProductoMovidoDTO struct {
	Producto      ProductoResumen `json:"producto"`
	Movimientos   int             `json:"movimientos"`
	TotalUnidades int             `json:"total_unidades"`
}

// ProductosMasMovidosResponse ranking de productos por actividad.
type ProductosMasMovidosResponse struct {
	Limite  int                 `json:"limite"`
	Periodo RangoFechas         `json:"periodo"`
	Datos   []ProductoMovidoDTO `json:"datos"`
}

// CategoriaValorDTO valoración de una categoría.
type CategoriaValorDTO struct {
	Categoria      CategoriaResumen `json:"categoria"`
	PrecioPromedio decimal.Decimal  `json:"precio_promedio"`
	TotalProductos int              `json:"total_productos"`
	ValorTotal     decimal.Decimal  `json:"valor_total"`
}

// ValorPromedioCategoriaResponse valoración por categoría.
type ValorPromedioCategoriaResponse struct {
	Datos []CategoriaValorDTO `json:"datos"`
}
