package usecase_test

import (
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso CRUD. Sin concurrencia: estos casos
// de uso no transaccionan, el motor de inventario tiene sus propios fakes.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: map[string]*entity.Producto{}}
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	for _, existente := range f.productos {
		if existente.Codigo == p.Codigo {
			return domain.ErrDuplicate
		}
	}
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductoRepo) GetDetalle(id string) (*entity.ProductoDetalle, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	return &entity.ProductoDetalle{Producto: *p}, nil
}

func (f *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.Codigo == codigo {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return f.GetByID(id)
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) SetStock(id string, stock int) error {
	if p, ok := f.productos[id]; ok {
		p.StockActual = stock
	}
	return nil
}

func (f *fakeProductoRepo) Deactivate(id string) error {
	if p, ok := f.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (f *fakeProductoRepo) List(fl repository.FiltroProductos) ([]*entity.ProductoDetalle, int, error) {
	var list []*entity.ProductoDetalle
	for _, p := range f.productos {
		if !p.Activo {
			continue
		}
		list = append(list, &entity.ProductoDetalle{Producto: *p})
	}
	return list, len(list), nil
}

func (f *fakeProductoRepo) ListActivos() ([]*entity.Producto, error) {
	var list []*entity.Producto
	for _, p := range f.productos {
		if p.Activo {
			copia := *p
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakeProductoRepo) ListByCategoria(categoriaID string) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for _, p := range f.productos {
		if p.Activo && p.CategoriaID == categoriaID {
			copia := *p
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakeProductoRepo) ListByProveedor(proveedorID string) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for _, p := range f.productos {
		if p.Activo && p.ProveedorID == proveedorID {
			copia := *p
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakeProductoRepo) CountActivosByCategoria(categoriaID string) (int, error) {
	list, _ := f.ListByCategoria(categoriaID)
	return len(list), nil
}

type fakeCategoriaRepo struct {
	categorias map[string]*entity.Categoria
}

var _ repository.CategoriaRepository = (*fakeCategoriaRepo)(nil)

func newFakeCategoriaRepo() *fakeCategoriaRepo {
	return &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{}}
}

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	for _, existente := range f.categorias {
		if existente.Nombre == c.Nombre {
			return domain.ErrDuplicate
		}
	}
	copia := *c
	f.categorias[c.ID] = &copia
	return nil
}

func (f *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	c, ok := f.categorias[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeCategoriaRepo) List() ([]*entity.Categoria, error) {
	var list []*entity.Categoria
	for _, c := range f.categorias {
		copia := *c
		list = append(list, &copia)
	}
	return list, nil
}

func (f *fakeCategoriaRepo) Update(c *entity.Categoria) error {
	copia := *c
	f.categorias[c.ID] = &copia
	return nil
}

func (f *fakeCategoriaRepo) Delete(id string) error {
	delete(f.categorias, id)
	return nil
}
