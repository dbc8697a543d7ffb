package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest entrada para crear un producto.
type CrearProductoRequest struct {
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	CategoriaID  string          `json:"categoria_id"`
	ProveedorID  string          `json:"proveedor_id"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	StockActual  int             `json:"stock_actual"`
	StockMinimo  int             `json:"stock_minimo"`
	StockCritico int             `json:"stock_critico"`
	UnidadMedida string          `json:"unidad_medida"`
	Ubicacion    string          `json:"ubicacion"`
	Imagen       string          `json:"imagen"`
}

// ActualizarProductoRequest entrada parcial para actualizar un producto.
// StockActual no se incluye: solo cambia vía movimientos.
type ActualizarProductoRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	CategoriaID  *string          `json:"categoria_id"`
	ProveedorID  *string          `json:"proveedor_id"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
	StockMinimo  *int             `json:"stock_minimo"`
	StockCritico *int             `json:"stock_critico"`
	UnidadMedida *string          `json:"unidad_medida"`
	Ubicacion    *string          `json:"ubicacion"`
	Imagen       *string          `json:"imagen"`
}

// ProductoResponse salida de un producto, con su nivel de stock calculado.
type ProductoResponse struct {
	ID            string             `json:"id"`
	Codigo        string             `json:"codigo"`
	Nombre        string             `json:"nombre"`
	Descripcion   string             `json:"descripcion"`
	Categoria     *CategoriaResumen  `json:"categoria,omitempty"`
	Proveedor     *ProveedorResumen  `json:"proveedor,omitempty"`
	PrecioCompra  decimal.Decimal    `json:"precio_compra"`
	PrecioVenta   decimal.Decimal    `json:"precio_venta"`
	StockActual   int                `json:"stock_actual"`
	StockMinimo   int                `json:"stock_minimo"`
	StockCritico  int                `json:"stock_critico"`
	EstadoStock   string             `json:"estado_stock"`
	UnidadMedida  string             `json:"unidad_medida"`
	Ubicacion     string             `json:"ubicacion,omitempty"`
	Imagen        string             `json:"imagen,omitempty"`
	Activo        bool               `json:"activo"`
	FechaCreacion time.Time          `json:"fecha_creacion"`
}

// CategoriaResumen referencia mínima a una categoría.
type CategoriaResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ProveedorResumen referencia mínima a un proveedor.
type ProveedorResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoResumen referencia mínima a un producto.
type ProductoResumen struct {
	ID     string `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// ListarProductosRequest filtros del listado de productos.
type ListarProductosRequest struct {
	PageRequest
	Buscar      string `query:"buscar"`
	CategoriaID string `query:"categoria_id"`
	ProveedorID string `query:"proveedor_id"`
	EstadoStock string `query:"estado_stock"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Productos  []ProductoResponse `json:"productos"`
	Paginacion Paginacion         `json:"paginacion"`
}
