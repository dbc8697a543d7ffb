package repository

import "github.com/inventra/inventario-api/internal/domain/entity"

// FiltroProductos filtros para el listado de productos (solo activos).
type FiltroProductos struct {
	Buscar      string // ILIKE sobre codigo, nombre y descripcion
	CategoriaID string
	ProveedorID string
	EstadoStock string // critico, bajo, normal (vacío = todos)
	Limit       int
	Offset      int
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// SetStock es de uso exclusivo del motor de inventario, dentro de su transacción.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetDetalle(id string) (*entity.ProductoDetalle, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	GetForUpdate(id string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	SetStock(id string, stock int) error
	Deactivate(id string) error
	List(f FiltroProductos) ([]*entity.ProductoDetalle, int, error)
	ListActivos() ([]*entity.Producto, error)
	ListByCategoria(categoriaID string) ([]*entity.Producto, error)
	ListByProveedor(proveedorID string) ([]*entity.Producto, error)
	CountActivosByCategoria(categoriaID string) (int, error)
}
