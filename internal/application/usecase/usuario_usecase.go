package usecase

import (
	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios (el registro y login viven en auth).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Listar devuelve todos los usuarios, sin hashes de password.
func (uc *UsuarioUseCase) Listar() ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// ObtenerPorID devuelve un usuario por ID.
func (uc *UsuarioUseCase) ObtenerPorID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := toUsuarioResponse(u)
	return &out, nil
}

// Actualizar aplica un patch sobre el usuario. El rol debe pertenecer al enum.
func (uc *UsuarioUseCase) Actualizar(id string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		u.Email = *in.Email
	}
	if in.Rol != nil {
		switch *in.Rol {
		case entity.RolAdministrador, entity.RolEncargado, entity.RolConsultor:
			u.Rol = *in.Rol
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Activo != nil {
		u.Activo = *in.Activo
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	out := toUsuarioResponse(u)
	return &out, nil
}

// Eliminar borra el usuario.
func (uc *UsuarioUseCase) Eliminar(id string) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion,
	}
}
