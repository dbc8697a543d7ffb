package dto

import "time"

// RegistroRequest entrada para registrar un usuario.
type RegistroRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"` // opcional; por defecto consultor
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse salida de un usuario. Nunca incluye el hash de password.
type UsuarioResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// ActualizarUsuarioRequest entrada parcial para actualizar un usuario.
type ActualizarUsuarioRequest struct {
	Nombre *string `json:"nombre"`
	Email  *string `json:"email"`
	Rol    *string `json:"rol"`
	Activo *bool   `json:"activo"`
}
