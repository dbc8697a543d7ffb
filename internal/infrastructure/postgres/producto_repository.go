package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, nombre, descripcion, COALESCE(categoria_id::text, ''), COALESCE(proveedor_id::text, ''),
	precio_compra, precio_venta, stock_actual, stock_minimo, stock_critico, unidad_medida, ubicacion, imagen, activo, fecha_creacion`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, codigo, nombre, descripcion, categoria_id, proveedor_id, precio_compra, precio_venta,
			stock_actual, stock_minimo, stock_critico, unidad_medida, ubicacion, imagen, activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NULLIF($6, '')::uuid, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.CategoriaID, p.ProveedorID,
		p.PrecioCompra, p.PrecioVenta, p.StockActual, p.StockMinimo, p.StockCritico,
		p.UnidadMedida, p.Ubicacion, p.Imagen, p.Activo, p.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetByCodigo obtiene un producto por su código único. Devuelve nil si no existe.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo), "get producto by codigo")
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción: serializa los movimientos por producto.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto for update")
}

// GetDetalle obtiene un producto con los nombres de categoría y proveedor. Devuelve nil si no existe.
func (r *ProductoRepo) GetDetalle(id string) (*entity.ProductoDetalle, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre, p.descripcion, COALESCE(p.categoria_id::text, ''), COALESCE(p.proveedor_id::text, ''),
			p.precio_compra, p.precio_venta, p.stock_actual, p.stock_minimo, p.stock_critico,
			p.unidad_medida, p.ubicacion, p.imagen, p.activo, p.fecha_creacion,
			COALESCE(c.nombre, ''), COALESCE(pr.nombre, '')
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		LEFT JOIN proveedores pr ON pr.id = p.proveedor_id
		WHERE p.id = $1`
	var d entity.ProductoDetalle
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Codigo, &d.Nombre, &d.Descripcion, &d.CategoriaID, &d.ProveedorID,
		&d.PrecioCompra, &d.PrecioVenta, &d.StockActual, &d.StockMinimo, &d.StockCritico,
		&d.UnidadMedida, &d.Ubicacion, &d.Imagen, &d.Activo, &d.FechaCreacion,
		&d.CategoriaNombre, &d.ProveedorNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto detalle: %w", err)
	}
	return &d, nil
}

// Update actualiza un producto. No toca stock_actual: eso es del motor de inventario (SetStock).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET codigo = $2, nombre = $3, descripcion = $4,
			categoria_id = NULLIF($5, '')::uuid, proveedor_id = NULLIF($6, '')::uuid,
			precio_compra = $7, precio_venta = $8, stock_minimo = $9, stock_critico = $10,
			unidad_medida = $11, ubicacion = $12, imagen = $13, activo = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.CategoriaID, p.ProveedorID,
		p.PrecioCompra, p.PrecioVenta, p.StockMinimo, p.StockCritico,
		p.UnidadMedida, p.Ubicacion, p.Imagen, p.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SetStock fija el stock del producto. Uso exclusivo del motor de inventario, dentro de su tx.
func (r *ProductoRepo) SetStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = $2 WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// Deactivate marca el producto como inactivo (borrado lógico).
func (r *ProductoRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate producto: %w", err)
	}
	return nil
}

// buildProductoListQuery arma las consultas de conteo y de listado a partir
// de los filtros. Los más recientes van primero.
func buildProductoListQuery(f repository.FiltroProductos) (countQuery, listQuery string, countArgs, listArgs []any) {
	conds := []string{"p.activo = true"}
	args := []any{}

	if f.Buscar != "" {
		args = append(args, "%"+f.Buscar+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.codigo ILIKE $%d OR p.nombre ILIKE $%d OR p.descripcion ILIKE $%d)", n, n, n))
	}
	if f.CategoriaID != "" {
		args = append(args, f.CategoriaID)
		conds = append(conds, fmt.Sprintf("p.categoria_id = $%d", len(args)))
	}
	if f.ProveedorID != "" {
		args = append(args, f.ProveedorID)
		conds = append(conds, fmt.Sprintf("p.proveedor_id = $%d", len(args)))
	}
	if cond := estadoStockCond(f.EstadoStock); cond != "" {
		conds = append(conds, cond)
	}
	where := "WHERE " + strings.Join(conds, " AND ")

	countQuery = `SELECT COUNT(*) FROM productos p ` + where
	countArgs = args

	listArgs = append(append([]any{}, args...), f.Limit, f.Offset)
	listQuery = fmt.Sprintf(`
		SELECT p.id, p.codigo, p.nombre, p.descripcion, COALESCE(p.categoria_id::text, ''), COALESCE(p.proveedor_id::text, ''),
			p.precio_compra, p.precio_venta, p.stock_actual, p.stock_minimo, p.stock_critico,
			p.unidad_medida, p.ubicacion, p.imagen, p.activo, p.fecha_creacion,
			COALESCE(c.nombre, ''), COALESCE(pr.nombre, '')
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		LEFT JOIN proveedores pr ON pr.id = p.proveedor_id
		%s
		ORDER BY p.fecha_creacion DESC
		LIMIT $%d OFFSET $%d`, where, len(listArgs)-1, len(listArgs))
	return countQuery, listQuery, countArgs, listArgs
}

// List lista productos activos con filtros y paginación. Devuelve también el total sin paginar.
func (r *ProductoRepo) List(f repository.FiltroProductos) ([]*entity.ProductoDetalle, int, error) {
	countQuery, listQuery, countArgs, listArgs := buildProductoListQuery(f)

	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	rows, err := r.q.Query(context.Background(), listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductoDetalle
	for rows.Next() {
		var d entity.ProductoDetalle
		if err := rows.Scan(
			&d.ID, &d.Codigo, &d.Nombre, &d.Descripcion, &d.CategoriaID, &d.ProveedorID,
			&d.PrecioCompra, &d.PrecioVenta, &d.StockActual, &d.StockMinimo, &d.StockCritico,
			&d.UnidadMedida, &d.Ubicacion, &d.Imagen, &d.Activo, &d.FechaCreacion,
			&d.CategoriaNombre, &d.ProveedorNombre,
		); err != nil {
			return nil, 0, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &d)
	}
	return list, total, rows.Err()
}

// ListActivos lista todos los productos activos (sin paginar; para alertas de stock).
func (r *ProductoRepo) ListActivos() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE activo = true ORDER BY nombre ASC`
	return r.scanMany(query, nil, "list productos activos")
}

// ListByCategoria lista productos activos de una categoría.
func (r *ProductoRepo) ListByCategoria(categoriaID string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE activo = true AND categoria_id = $1 ORDER BY nombre ASC`
	return r.scanMany(query, []any{categoriaID}, "list productos by categoria")
}

// ListByProveedor lista productos activos de un proveedor.
func (r *ProductoRepo) ListByProveedor(proveedorID string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE activo = true AND proveedor_id = $1 ORDER BY nombre ASC`
	return r.scanMany(query, []any{proveedorID}, "list productos by proveedor")
}

// CountActivosByCategoria cuenta los productos activos asociados a una categoría.
func (r *ProductoRepo) CountActivosByCategoria(categoriaID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE activo = true AND categoria_id = $1`,
		categoriaID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count productos by categoria: %w", err)
	}
	return total, nil
}

// estadoStockCond traduce el filtro de estado de stock a una condición SQL.
// Los umbrales son inclusivos y crítico tiene precedencia sobre bajo.
func estadoStockCond(estado string) string {
	switch estado {
	case "critico":
		return "p.stock_actual <= p.stock_critico"
	case "bajo":
		return "p.stock_actual > p.stock_critico AND p.stock_actual <= p.stock_minimo"
	case "normal":
		return "p.stock_actual > p.stock_minimo"
	default:
		return ""
	}
}

func (r *ProductoRepo) scanOne(row pgx.Row, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.ProveedorID,
		&p.PrecioCompra, &p.PrecioVenta, &p.StockActual, &p.StockMinimo, &p.StockCritico,
		&p.UnidadMedida, &p.Ubicacion, &p.Imagen, &p.Activo, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductoRepo) scanMany(query string, args []any, op string) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.ProveedorID,
			&p.PrecioCompra, &p.PrecioVenta, &p.StockActual, &p.StockMinimo, &p.StockCritico,
			&p.UnidadMedida, &p.Ubicacion, &p.Imagen, &p.Activo, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
