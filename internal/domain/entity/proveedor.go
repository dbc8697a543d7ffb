package entity

import "time"

// Proveedor representa un proveedor de productos. CUIT es único y obligatorio.
type Proveedor struct {
	ID              string
	Nombre          string
	Contacto        string
	Telefono        string
	Email           string
	Direccion       string
	CUIT            string
	CondicionesPago string
	Activo          bool // borrado lógico
	FechaCreacion   time.Time
}
