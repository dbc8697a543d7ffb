package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
	"github.com/inventra/inventario-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Registrar(in dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if in.Nombre == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolConsultor
	}
	switch rol {
	case entity.RolAdministrador, entity.RolEncargado, entity.RolConsultor:
	default:
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Rol:           rol,
		Activo:        true,
		FechaCreacion: time.Now(),
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica email/password, genera el JWT y retorna token + usuario.
// Credenciales malas y usuario inexistente devuelven el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *toUsuarioResponse(u)}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion,
	}
}
