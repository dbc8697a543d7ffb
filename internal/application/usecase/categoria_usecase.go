package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorías. El borrado es físico pero se bloquea
// mientras existan productos activos asignados.
type CategoriaUseCase struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, productoRepo repository.ProductoRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, productoRepo: productoRepo}
}

// Listar devuelve todas las categorías en orden alfabético.
func (uc *CategoriaUseCase) Listar() ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// ObtenerPorID devuelve la categoría con sus productos activos.
func (uc *CategoriaUseCase) ObtenerPorID(id string) (*dto.CategoriaDetalleResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	productos, err := uc.productoRepo.ListByCategoria(id)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoriaDetalleResponse{
		CategoriaResponse: toCategoriaResponse(c),
		Productos:         make([]dto.ProductoResponse, 0, len(productos)),
	}
	for _, p := range productos {
		out.Productos = append(out.Productos, toProductoResponseSimple(p))
	}
	return out, nil
}

// Crear crea una categoría. El nombre es requerido y único.
func (uc *CategoriaUseCase) Crear(in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Categoria{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	out := toCategoriaResponse(c)
	return &out, nil
}

// Actualizar aplica un patch sobre la categoría.
func (uc *CategoriaUseCase) Actualizar(id string, in dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	out := toCategoriaResponse(c)
	return &out, nil
}

// Eliminar borra la categoría; falla con ErrConflict si aún tiene productos activos.
func (uc *CategoriaUseCase) Eliminar(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productoRepo.CountActivosByCategoria(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Descripcion:   c.Descripcion,
		FechaCreacion: c.FechaCreacion,
	}
}
