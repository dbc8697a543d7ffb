package repository

import (
	"time"

	"github.com/inventra/inventario-api/internal/domain/entity"
)

// FiltroMovimientos filtros para el historial de movimientos.
type FiltroMovimientos struct {
	ProductoID string
	Tipo       string
	Desde      *time.Time
	Hasta      *time.Time
	Limit      int
	Offset     int
}

// MovimientoRepository define el puerto de persistencia para el libro de
// movimientos. Solo hay inserción y lecturas: los movimientos son inmutables.
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetDetalle(id string) (*entity.MovimientoDetalle, error)
	List(f FiltroMovimientos) ([]*entity.MovimientoDetalle, int, error)
	Resumen(desde, hasta *time.Time) (*entity.ResumenMovimientos, error)
}
