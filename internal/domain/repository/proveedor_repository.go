package repository

import "github.com/inventra/inventario-api/internal/domain/entity"

// FiltroProveedores filtros para el listado de proveedores (solo activos).
type FiltroProveedores struct {
	Buscar string // ILIKE sobre nombre, email y cuit
	Limit  int
	Offset int
}

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	List(f FiltroProveedores) ([]*entity.Proveedor, int, error)
	Update(p *entity.Proveedor) error
	Deactivate(id string) error
}
