package dto

import "time"

// CrearProveedorRequest entrada para crear un proveedor.
type CrearProveedorRequest struct {
	Nombre          string `json:"nombre"`
	Contacto        string `json:"contacto"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Direccion       string `json:"direccion"`
	CUIT            string `json:"cuit"`
	CondicionesPago string `json:"condiciones_pago"`
}

// ActualizarProveedorRequest entrada parcial para actualizar un proveedor.
type ActualizarProveedorRequest struct {
	Nombre          *string `json:"nombre"`
	Contacto        *string `json:"contacto"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
	Direccion       *string `json:"direccion"`
	CondicionesPago *string `json:"condiciones_pago"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	Contacto        string    `json:"contacto,omitempty"`
	Telefono        string    `json:"telefono,omitempty"`
	Email           string    `json:"email,omitempty"`
	Direccion       string    `json:"direccion,omitempty"`
	CUIT            string    `json:"cuit"`
	CondicionesPago string    `json:"condiciones_pago,omitempty"`
	Activo          bool      `json:"activo"`
	FechaCreacion   time.Time `json:"fecha_creacion"`
}

// ProveedorDetalleResponse proveedor con sus productos activos.
type ProveedorDetalleResponse struct {
	ProveedorResponse
	Productos []ProductoResponse `json:"productos"`
}

// ListarProveedoresRequest filtros del listado de proveedores.
type ListarProveedoresRequest struct {
	PageRequest
	Buscar string `query:"buscar"`
}

// ProveedorListResponse listado paginado de proveedores.
type ProveedorListResponse struct {
	Proveedores []ProveedorResponse `json:"proveedores"`
	Paginacion  Paginacion          `json:"paginacion"`
}
