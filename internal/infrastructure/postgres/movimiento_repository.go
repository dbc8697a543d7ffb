package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
// Los movimientos son inmutables: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create inserta un movimiento en el libro.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, producto_id, tipo_movimiento, cantidad, usuario_id, motivo, observaciones, fecha_movimiento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.Tipo, m.Cantidad, m.UsuarioID, m.Motivo, m.Observaciones, m.FechaMovimiento,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetDetalle obtiene un movimiento con su producto y usuario. Devuelve nil si no existe.
func (r *MovimientoRepo) GetDetalle(id string) (*entity.MovimientoDetalle, error) {
	query := movimientoDetalleSelect + ` WHERE m.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	d, err := scanMovimientoDetalle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return d, nil
}

// List lista movimientos con filtros, del más reciente al más antiguo.
// Devuelve también el total sin paginar.
func (r *MovimientoRepo) List(f repository.FiltroMovimientos) ([]*entity.MovimientoDetalle, int, error) {
	conds := []string{}
	args := []any{}

	if f.ProductoID != "" {
		args = append(args, f.ProductoID)
		conds = append(conds, fmt.Sprintf("m.producto_id = $%d", len(args)))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		conds = append(conds, fmt.Sprintf("m.tipo_movimiento = $%d", len(args)))
	}
	if f.Desde != nil {
		args = append(args, *f.Desde)
		conds = append(conds, fmt.Sprintf("m.fecha_movimiento >= $%d", len(args)))
	}
	if f.Hasta != nil {
		args = append(args, *f.Hasta)
		conds = append(conds, fmt.Sprintf("m.fecha_movimiento <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM movimientos m ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimientos: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`%s %s ORDER BY m.fecha_movimiento DESC LIMIT $%d OFFSET $%d`,
		movimientoDetalleSelect, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimientoDetalle
	for rows.Next() {
		d, err := scanMovimientoDetalle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// Resumen cuenta movimientos por tipo, opcionalmente acotado por fechas.
func (r *MovimientoRepo) Resumen(desde, hasta *time.Time) (*entity.ResumenMovimientos, error) {
	conds := []string{}
	args := []any{}
	if desde != nil {
		args = append(args, *desde)
		conds = append(conds, fmt.Sprintf("fecha_movimiento >= $%d", len(args)))
	}
	if hasta != nil {
		args = append(args, *hasta)
		conds = append(conds, fmt.Sprintf("fecha_movimiento <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	query := `SELECT tipo_movimiento, COUNT(*) FROM movimientos ` + where + ` GROUP BY tipo_movimiento`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("resumen movimientos: %w", err)
	}
	defer rows.Close()

	var res entity.ResumenMovimientos
	for rows.Next() {
		var tipo string
		var count int
		if err := rows.Scan(&tipo, &count); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		switch tipo {
		case entity.MovimientoEntrada:
			res.Entrada = count
		case entity.MovimientoSalida:
			res.Salida = count
		case entity.MovimientoAjuste:
			res.Ajuste = count
		}
		res.Total += count
	}
	return &res, rows.Err()
}

const movimientoDetalleSelect = `
	SELECT m.id, m.producto_id, m.tipo_movimiento, m.cantidad, m.usuario_id, m.motivo, m.observaciones, m.fecha_movimiento,
		p.id, p.codigo, p.nombre,
		u.id, u.nombre, u.email
	FROM movimientos m
	JOIN productos p ON p.id = m.producto_id
	JOIN usuarios u ON u.id = m.usuario_id`

func scanMovimientoDetalle(row pgx.Row) (*entity.MovimientoDetalle, error) {
	var d entity.MovimientoDetalle
	var prod entity.ProductoResumen
	var usr entity.UsuarioResumen
	err := row.Scan(
		&d.ID, &d.ProductoID, &d.Tipo, &d.Cantidad, &d.UsuarioID, &d.Motivo, &d.Observaciones, &d.FechaMovimiento,
		&prod.ID, &prod.Codigo, &prod.Nombre,
		&usr.ID, &usr.Nombre, &usr.Email,
	)
	if err != nil {
		return nil, err
	}
	d.Producto = &prod
	d.Usuario = &usr
	return &d, nil
}
