package entity

import "github.com/shopspring/decimal"

// Estadisticas resumen general del inventario.
type Estadisticas struct {
	TotalProductos     int
	TotalMovimientos   int
	MovimientosPorTipo ResumenMovimientos
	ProductosAlerta    int             // productos activos en nivel bajo o crítico
	ValorInventario    decimal.Decimal // SUM(stock_actual * precio_venta) de activos
}

// ResumenMovimientos conteo de movimientos por tipo.
type ResumenMovimientos struct {
	Entrada int
	Salida  int
	Ajuste  int
	Total   int
}

// MovimientoTipoAgg agregado de movimientos por tipo en un período.
type MovimientoTipoAgg struct {
	Tipo          string
	Movimientos   int
	TotalUnidades int
}

// ProductoMovidoAgg producto con su conteo de movimientos en un período.
type ProductoMovidoAgg struct {
	Producto      ProductoResumen
	Movimientos   int
	TotalUnidades int
}

// CategoriaValorAgg valor promedio y total por categoría (productos activos).
type CategoriaValorAgg struct {
	CategoriaID     string
	CategoriaNombre string
	PrecioPromedio  decimal.Decimal
	TotalProductos  int
	ValorTotal      decimal.Decimal
}
