package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario. StockActual solo se modifica
// vía movimientos (motor de inventario); el resto de atributos se edita directo.
type Producto struct {
	ID            string
	Codigo        string // código único
	Nombre        string
	Descripcion   string
	CategoriaID   string
	ProveedorID   string
	PrecioCompra  decimal.Decimal
	PrecioVenta   decimal.Decimal // debe ser >= PrecioCompra
	StockActual   int             // siempre >= 0
	StockMinimo   int             // umbral de stock bajo
	StockCritico  int             // umbral crítico, debe ser < StockMinimo
	UnidadMedida  string          // por defecto "unidad"
	Ubicacion     string
	Imagen        string
	Activo        bool // borrado lógico
	FechaCreacion time.Time
}

// ProductoResumen proyección mínima para joins (movimientos, reportes).
type ProductoResumen struct {
	ID     string
	Codigo string
	Nombre string
}

// ProductoDetalle producto con los nombres de su categoría y proveedor.
type ProductoDetalle struct {
	Producto
	CategoriaNombre string
	ProveedorNombre string
}
