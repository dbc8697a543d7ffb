package dto

import "time"

// RegistrarMovimientoRequest body para POST /api/movimientos.
// El usuario que registra sale del token, no del body.
type RegistrarMovimientoRequest struct {
	ProductoID    string `json:"producto_id"`
	Tipo          string `json:"tipo_movimiento"`
	Cantidad      int    `json:"cantidad"`
	Motivo        string `json:"motivo"`
	Observaciones string `json:"observaciones"`
}

// UsuarioResumen referencia mínima a un usuario.
type UsuarioResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// MovimientoResponse movimiento con resúmenes de producto y usuario.
type MovimientoResponse struct {
	ID              string           `json:"id"`
	Tipo            string           `json:"tipo_movimiento"`
	Cantidad        int              `json:"cantidad"`
	Motivo          string           `json:"motivo,omitempty"`
	Observaciones   string           `json:"observaciones,omitempty"`
	FechaMovimiento time.Time        `json:"fecha_movimiento"`
	Producto        *ProductoResumen `json:"producto,omitempty"`
	Usuario         *UsuarioResumen  `json:"usuario,omitempty"`
}

// ListarMovimientosRequest filtros del historial de movimientos.
type ListarMovimientosRequest struct {
	PageRequest
	ProductoID string `query:"producto_id"`
	Tipo       string `query:"tipo_movimiento"`
	Desde      string `query:"desde"` // RFC 3339 o 2006-01-02
	Hasta      string `query:"hasta"`
}

// MovimientoListResponse historial paginado.
type MovimientoListResponse struct {
	Movimientos []MovimientoResponse `json:"movimientos"`
	Paginacion  Paginacion           `json:"paginacion"`
}

// HistorialProductoResponse historial de un producto con su ficha.
type HistorialProductoResponse struct {
	Producto    ProductoResponse     `json:"producto"`
	Movimientos []MovimientoResponse `json:"movimientos"`
	Paginacion  Paginacion           `json:"paginacion"`
}

// AlertaProducto producto clasificado por nivel de stock.
type AlertaProducto struct {
	ID           string `json:"id"`
	Codigo       string `json:"codigo"`
	Nombre       string `json:"nombre"`
	StockActual  int    `json:"stock_actual"`
	StockMinimo  int    `json:"stock_minimo"`
	StockCritico int    `json:"stock_critico"`
	Nivel        string `json:"nivel"`
}

// AlertasStockResponse clasificación completa de productos activos.
// Todo producto activo aparece en exactamente una de las tres listas.
type AlertasStockResponse struct {
	Critico []AlertaProducto `json:"critico"`
	Bajo    []AlertaProducto `json:"bajo"`
	Normal  []AlertaProducto `json:"normal"`
}

// ResumenMovimientosResponse conteo por tipo en un período.
type ResumenMovimientosResponse struct {
	Entrada int `json:"entrada"`
	Salida  int `json:"salida"`
	Ajuste  int `json:"ajuste"`
	Total   int `json:"total"`
}
