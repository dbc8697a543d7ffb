package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// ProveedorUseCase CRUD de proveedores (borrado lógico).
type ProveedorUseCase struct {
	repo         repository.ProveedorRepository
	productoRepo repository.ProductoRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository, productoRepo repository.ProductoRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, productoRepo: productoRepo}
}

// Listar devuelve proveedores activos, con búsqueda por nombre/email/cuit.
func (uc *ProveedorUseCase) Listar(in dto.ListarProveedoresRequest) (*dto.ProveedorListResponse, error) {
	in.Normalizar()
	list, total, err := uc.repo.List(repository.FiltroProveedores{
		Buscar: in.Buscar,
		Limit:  in.Limite,
		Offset: in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	proveedores := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		proveedores = append(proveedores, toProveedorResponse(p))
	}
	return &dto.ProveedorListResponse{
		Proveedores: proveedores,
		Paginacion:  dto.NuevaPaginacion(total, in.PageRequest),
	}, nil
}

// ObtenerPorID devuelve el proveedor con sus productos activos.
func (uc *ProveedorUseCase) ObtenerPorID(id string) (*dto.ProveedorDetalleResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	productos, err := uc.productoRepo.ListByProveedor(id)
	if err != nil {
		return nil, err
	}
	out := &dto.ProveedorDetalleResponse{
		ProveedorResponse: toProveedorResponse(p),
		Productos:         make([]dto.ProductoResponse, 0, len(productos)),
	}
	for _, prod := range productos {
		out.Productos = append(out.Productos, toProductoResponseSimple(prod))
	}
	return out, nil
}

// Crear crea un proveedor. Nombre y CUIT son requeridos; CUIT es único.
func (uc *ProveedorUseCase) Crear(in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" || in.CUIT == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Proveedor{
		ID:              uuid.New().String(),
		Nombre:          in.Nombre,
		Contacto:        in.Contacto,
		Telefono:        in.Telefono,
		Email:           in.Email,
		Direccion:       in.Direccion,
		CUIT:            in.CUIT,
		CondicionesPago: in.CondicionesPago,
		Activo:          true,
		FechaCreacion:   time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	out := toProveedorResponse(p)
	return &out, nil
}

// Actualizar aplica un patch. El CUIT no se modifica una vez creado.
func (uc *ProveedorUseCase) Actualizar(id string, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Nombre = *in.Nombre
	}
	if in.Contacto != nil {
		p.Contacto = *in.Contacto
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Direccion != nil {
		p.Direccion = *in.Direccion
	}
	if in.CondicionesPago != nil {
		p.CondicionesPago = *in.CondicionesPago
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	out := toProveedorResponse(p)
	return &out, nil
}

// Desactivar marca el proveedor como inactivo (borrado lógico).
func (uc *ProveedorUseCase) Desactivar(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

func toProveedorResponse(p *entity.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Contacto:        p.Contacto,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Direccion:       p.Direccion,
		CUIT:            p.CUIT,
		CondicionesPago: p.CondicionesPago,
		Activo:          p.Activo,
		FechaCreacion:   p.FechaCreacion,
	}
}
