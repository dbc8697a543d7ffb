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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

const proveedorColumns = `id, nombre, contacto, telefono, email, direccion, cuit, condiciones_pago, activo, fecha_creacion`

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un proveedor nuevo. CUIT es único.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, nombre, contacto, telefono, email, direccion, cuit, condiciones_pago, activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Contacto, p.Telefono, p.Email, p.Direccion, p.CUIT, p.CondicionesPago, p.Activo, p.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email, &p.Direccion, &p.CUIT, &p.CondicionesPago, &p.Activo, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// List lista proveedores activos con búsqueda y paginación. Devuelve también el total sin paginar.
func (r *ProveedorRepo) List(f repository.FiltroProveedores) ([]*entity.Proveedor, int, error) {
	conds := []string{"activo = true"}
	args := []any{}
	if f.Buscar != "" {
		args = append(args, "%"+f.Buscar+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(nombre ILIKE $%d OR email ILIKE $%d OR cuit ILIKE $%d)", n, n, n))
	}
	where := "WHERE " + strings.Join(conds, " AND ")

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM proveedores `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count proveedores: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM proveedores %s ORDER BY nombre ASC LIMIT $%d OFFSET $%d`,
		proveedorColumns, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email, &p.Direccion, &p.CUIT, &p.CondicionesPago, &p.Activo, &p.FechaCreacion,
		); err != nil {
			return nil, 0, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Update actualiza los datos del proveedor. El CUIT no se modifica.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, contacto = $3, telefono = $4, email = $5, direccion = $6, condiciones_pago = $7, activo = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Contacto, p.Telefono, p.Email, p.Direccion, p.CondicionesPago, p.Activo,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Deactivate marca el proveedor como inactivo (borrado lógico).
func (r *ProveedorRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE proveedores SET activo = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate proveedor: %w", err)
	}
	return nil
}
