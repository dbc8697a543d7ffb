package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/alert"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// MovimientoUseCase es la única autoridad para transicionar el stock de un
// producto. Registra el movimiento y aplica su efecto de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) sobre el producto para serializar
// salidas concurrentes.
type MovimientoUseCase struct {
	txRunner     TxRunner
	movRepo      repository.MovimientoRepository
	productoRepo repository.ProductoRepository
}

// NewMovimientoUseCase construye el caso de uso. movRepo y productoRepo son los
// adaptadores sobre el pool, para las lecturas fuera de transacción.
func NewMovimientoUseCase(
	txRunner TxRunner,
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
) *MovimientoUseCase {
	return &MovimientoUseCase{txRunner: txRunner, movRepo: movRepo, productoRepo: productoRepo}
}

// Registrar valida la entrada, y dentro de una transacción: bloquea la fila del
// producto, calcula el stock candidato según el tipo, lo valida y persiste el
// movimiento junto con el nuevo stock. Commit o nada.
//
//	entrada: stock + cantidad
//	salida:  stock - cantidad; si queda negativo, ErrInsufficientStock y rollback
//	ajuste:  stock = cantidad (valor absoluto, no delta)
//
// Una salida rechazada no deja fila en el libro: la transacción entera se
// revierte, ningún lector concurrente observa estado parcial.
func (uc *MovimientoUseCase) Registrar(ctx context.Context, usuarioID string, in dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	if in.ProductoID == "" || usuarioID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoMovimientoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	// Cubre también el ajuste a un valor negativo: la cantidad es el stock
	// objetivo y debe ser positiva.
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movimiento{
		ID:              uuid.New().String(),
		ProductoID:      in.ProductoID,
		Tipo:            in.Tipo,
		Cantidad:        in.Cantidad,
		UsuarioID:       usuarioID,
		Motivo:          in.Motivo,
		Observaciones:   in.Observaciones,
		FechaMovimiento: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		nuevoStock := producto.StockActual
		switch in.Tipo {
		case entity.MovimientoEntrada:
			nuevoStock += in.Cantidad
		case entity.MovimientoSalida:
			if producto.StockActual < in.Cantidad {
				return domain.ErrInsufficientStock
			}
			nuevoStock -= in.Cantidad
		case entity.MovimientoAjuste:
			nuevoStock = in.Cantidad
		}

		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productoRepo.SetStock(in.ProductoID, nuevoStock)
	})
	if err != nil {
		return nil, err
	}

	detalle, err := uc.movRepo.GetDetalle(mov.ID)
	if err != nil {
		return nil, err
	}
	return toMovimientoResponse(detalle), nil
}

// ObtenerPorID devuelve un movimiento con producto y usuario.
func (uc *MovimientoUseCase) ObtenerPorID(id string) (*dto.MovimientoResponse, error) {
	detalle, err := uc.movRepo.GetDetalle(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrNotFound
	}
	return toMovimientoResponse(detalle), nil
}

// Listar devuelve el historial filtrado y paginado, del más reciente al más antiguo.
func (uc *MovimientoUseCase) Listar(in dto.ListarMovimientosRequest) (*dto.MovimientoListResponse, error) {
	in.Normalizar()
	if in.Tipo != "" && !entity.TipoMovimientoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	desde, hasta, err := parseRango(in.Desde, in.Hasta)
	if err != nil {
		return nil, err
	}
	filtro := repository.FiltroMovimientos{
		ProductoID: in.ProductoID,
		Tipo:       in.Tipo,
		Desde:      desde,
		Hasta:      hasta,
		Limit:      in.Limite,
		Offset:     in.Offset(),
	}
	movs, total, err := uc.movRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	return &dto.MovimientoListResponse{
		Movimientos: toMovimientoResponses(movs),
		Paginacion:  dto.NuevaPaginacion(total, in.PageRequest),
	}, nil
}

// HistorialProducto devuelve la ficha del producto y sus movimientos paginados.
func (uc *MovimientoUseCase) HistorialProducto(productoID string, page dto.PageRequest) (*dto.HistorialProductoResponse, error) {
	page.Normalizar()
	producto, err := uc.productoRepo.GetDetalle(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	movs, total, err := uc.movRepo.List(repository.FiltroMovimientos{
		ProductoID: productoID,
		Limit:      page.Limite,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.HistorialProductoResponse{
		Producto:    toProductoResponse(producto),
		Movimientos: toMovimientoResponses(movs),
		Paginacion:  dto.NuevaPaginacion(total, page),
	}, nil
}

// AlertasStock clasifica todos los productos activos por nivel de stock.
// Proyección pura de lectura: cada producto cae en exactamente una lista.
func (uc *MovimientoUseCase) AlertasStock() (*dto.AlertasStockResponse, error) {
	productos, err := uc.productoRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := &dto.AlertasStockResponse{
		Critico: []dto.AlertaProducto{},
		Bajo:    []dto.AlertaProducto{},
		Normal:  []dto.AlertaProducto{},
	}
	for _, p := range productos {
		a := dto.AlertaProducto{
			ID:           p.ID,
			Codigo:       p.Codigo,
			Nombre:       p.Nombre,
			StockActual:  p.StockActual,
			StockMinimo:  p.StockMinimo,
			StockCritico: p.StockCritico,
		}
		a.Nivel = alert.NivelProducto(p)
		switch a.Nivel {
		case alert.NivelCritico:
			out.Critico = append(out.Critico, a)
		case alert.NivelBajo:
			out.Bajo = append(out.Bajo, a)
		default:
			out.Normal = append(out.Normal, a)
		}
	}
	return out, nil
}

// Resumen cuenta movimientos por tipo en un período opcional.
func (uc *MovimientoUseCase) Resumen(desdeStr, hastaStr string) (*dto.ResumenMovimientosResponse, error) {
	desde, hasta, err := parseRango(desdeStr, hastaStr)
	if err != nil {
		return nil, err
	}
	r, err := uc.movRepo.Resumen(desde, hasta)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenMovimientosResponse{
		Entrada: r.Entrada,
		Salida:  r.Salida,
		Ajuste:  r.Ajuste,
		Total:   r.Total,
	}, nil
}

// parseRango interpreta fechas en RFC 3339 o 2006-01-02; vacío = sin límite.
func parseRango(desdeStr, hastaStr string) (desde, hasta *time.Time, err error) {
	parse := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return &t, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		return &t, nil
	}
	if desde, err = parse(desdeStr); err != nil {
		return nil, nil, err
	}
	if hasta, err = parse(hastaStr); err != nil {
		return nil, nil, err
	}
	return desde, hasta, nil
}

func toMovimientoResponse(m *entity.MovimientoDetalle) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}
	out := &dto.MovimientoResponse{
		ID:              m.ID,
		Tipo:            m.Tipo,
		Cantidad:        m.Cantidad,
		Motivo:          m.Motivo,
		Observaciones:   m.Observaciones,
		FechaMovimiento: m.FechaMovimiento,
	}
	if m.Producto != nil {
		out.Producto = &dto.ProductoResumen{ID: m.Producto.ID, Codigo: m.Producto.Codigo, Nombre: m.Producto.Nombre}
	}
	if m.Usuario != nil {
		out.Usuario = &dto.UsuarioResumen{ID: m.Usuario.ID, Nombre: m.Usuario.Nombre, Email: m.Usuario.Email}
	}
	return out
}

func toMovimientoResponses(movs []*entity.MovimientoDetalle) []dto.MovimientoResponse {
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovimientoResponse(m))
	}
	return out
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
