package repository

import (
	"time"

	"github.com/inventra/inventario-api/internal/domain/entity"
)

// ReporteRepository consultas de agregación para reportes (solo lectura).
type ReporteRepository interface {
	EstadisticasGenerales() (*entity.Estadisticas, error)
	MovimientosPorTipo(desde, hasta time.Time) ([]entity.MovimientoTipoAgg, error)
	ProductosMasMovidos(limite int, desde, hasta time.Time) ([]entity.ProductoMovidoAgg, error)
	ValorPromedioPorCategoria() ([]entity.CategoriaValorAgg, error)
}
