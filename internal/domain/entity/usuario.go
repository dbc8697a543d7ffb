package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdministrador = "administrador"
	RolEncargado     = "encargado"
	RolConsultor     = "consultor"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID            string
	Nombre        string
	Email         string
	PasswordHash  string // hash bcrypt, nunca en claro después de persistir
	Rol           string // administrador, encargado, consultor
	Activo        bool
	FechaCreacion time.Time
}

// UsuarioResumen proyección mínima para joins (movimientos).
type UsuarioResumen struct {
	ID     string
	Nombre string
	Email  string
}
