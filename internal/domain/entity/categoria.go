package entity

import "time"

// Categoria agrupa productos. Nombre es único.
type Categoria struct {
	ID            string
	Nombre        string
	Descripcion   string
	FechaCreacion time.Time
}
