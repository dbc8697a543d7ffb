package dto

import "time"

// CrearCategoriaRequest entrada para crear una categoría.
type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// ActualizarCategoriaRequest entrada parcial para actualizar una categoría.
type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion,omitempty"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// CategoriaDetalleResponse categoría con sus productos activos.
type CategoriaDetalleResponse struct {
	CategoriaResponse
	Productos []ProductoResponse `json:"productos"`
}
