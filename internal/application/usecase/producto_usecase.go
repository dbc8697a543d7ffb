package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/alert"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// ProductoUseCase CRUD de productos. StockActual solo cambia vía movimientos;
// aquí se re-validan los invariantes semánticos aunque la capa HTTP ya haya
// hecho las comprobaciones de forma.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Crear valida campos requeridos, orden de precios (venta >= compra), orden de
// umbrales (critico < minimo) y unicidad de código; luego persiste.
func (uc *ProductoUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" || in.CategoriaID == "" || in.ProveedorID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioVenta.LessThan(in.PrecioCompra) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockCritico >= in.StockMinimo {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual < 0 || in.StockCritico < 0 {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	if in.UnidadMedida == "" {
		in.UnidadMedida = "unidad"
	}
	p := &entity.Producto{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		CategoriaID:   in.CategoriaID,
		ProveedorID:   in.ProveedorID,
		PrecioCompra:  in.PrecioCompra,
		PrecioVenta:   in.PrecioVenta,
		StockActual:   in.StockActual,
		StockMinimo:   in.StockMinimo,
		StockCritico:  in.StockCritico,
		UnidadMedida:  in.UnidadMedida,
		Ubicacion:     in.Ubicacion,
		Imagen:        in.Imagen,
		Activo:        true,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return uc.ObtenerPorID(p.ID)
}

// ObtenerPorID devuelve el producto con su categoría y proveedor.
func (uc *ProductoUseCase) ObtenerPorID(id string) (*dto.ProductoResponse, error) {
	detalle, err := uc.repo.GetDetalle(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductoResponse(detalle)
	return &out, nil
}

// Actualizar aplica un patch y re-valida el orden de precios y umbrales
// resultante (considerando los valores efectivos, vengan o no en el patch).
func (uc *ProductoUseCase) Actualizar(id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		p.CategoriaID = *in.CategoriaID
	}
	if in.ProveedorID != nil {
		p.ProveedorID = *in.ProveedorID
	}
	if in.PrecioCompra != nil {
		p.PrecioCompra = *in.PrecioCompra
	}
	if in.PrecioVenta != nil {
		p.PrecioVenta = *in.PrecioVenta
	}
	if in.StockMinimo != nil {
		p.StockMinimo = *in.StockMinimo
	}
	if in.StockCritico != nil {
		p.StockCritico = *in.StockCritico
	}
	if in.UnidadMedida != nil {
		p.UnidadMedida = *in.UnidadMedida
	}
	if in.Ubicacion != nil {
		p.Ubicacion = *in.Ubicacion
	}
	if in.Imagen != nil {
		p.Imagen = *in.Imagen
	}
	if p.PrecioVenta.LessThan(p.PrecioCompra) {
		return nil, domain.ErrInvalidInput
	}
	if p.StockCritico >= p.StockMinimo || p.StockCritico < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return uc.ObtenerPorID(id)
}

// Desactivar marca el producto como inactivo (borrado lógico, la fila queda).
func (uc *ProductoUseCase) Desactivar(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// Listar devuelve productos activos filtrados y paginados.
func (uc *ProductoUseCase) Listar(in dto.ListarProductosRequest) (*dto.ProductoListResponse, error) {
	in.Normalizar()
	if in.EstadoStock != "" {
		switch in.EstadoStock {
		case alert.NivelCritico, alert.NivelBajo, alert.NivelNormal:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	list, total, err := uc.repo.List(repository.FiltroProductos{
		Buscar:      in.Buscar,
		CategoriaID: in.CategoriaID,
		ProveedorID: in.ProveedorID,
		EstadoStock: in.EstadoStock,
		Limit:       in.Limite,
		Offset:      in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	productos := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		productos = append(productos, toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Productos:  productos,
		Paginacion: dto.NuevaPaginacion(total, in.PageRequest),
	}, nil
}

func toProductoResponse(p *entity.ProductoDetalle) dto.ProductoResponse {
	out := dto.ProductoResponse{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		PrecioCompra:  p.PrecioCompra,
		PrecioVenta:   p.PrecioVenta,
		StockActual:   p.StockActual,
		StockMinimo:   p.StockMinimo,
		StockCritico:  p.StockCritico,
		EstadoStock:   alert.Nivel(p.StockActual, p.StockMinimo, p.StockCritico),
		UnidadMedida:  p.UnidadMedida,
		Ubicacion:     p.Ubicacion,
		Imagen:        p.Imagen,
		Activo:        p.Activo,
		FechaCreacion: p.FechaCreacion,
	}
	if p.CategoriaID != "" {
		out.Categoria = &dto.CategoriaResumen{ID: p.CategoriaID, Nombre: p.CategoriaNombre}
	}
	if p.ProveedorID != "" {
		out.Proveedor = &dto.ProveedorResumen{ID: p.ProveedorID, Nombre: p.ProveedorNombre}
	}
	return out
}

// toProductoResponseSimple mapea un producto sin joins (para listados anidados).
func toProductoResponseSimple(p *entity.Producto) dto.ProductoResponse {
	return toProductoResponse(&entity.ProductoDetalle{Producto: *p})
}
