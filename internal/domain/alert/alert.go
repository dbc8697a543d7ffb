// Package alert clasifica el nivel de stock de un producto contra sus umbrales
// configurados. Es cómputo puro de lectura: no toca persistencia.
package alert

import "github.com/inventra/inventario-api/internal/domain/entity"

// Niveles de stock. La regla usa <= en ambos umbrales y el crítico tiene
// precedencia: un producto en o bajo ambos umbrales es crítico, nunca bajo.
const (
	NivelCritico = "critico"
	NivelBajo    = "bajo"
	NivelNormal  = "normal"
)

// Nivel clasifica un stock contra los umbrales mínimo y crítico.
func Nivel(stockActual, stockMinimo, stockCritico int) string {
	switch {
	case stockActual <= stockCritico:
		return NivelCritico
	case stockActual <= stockMinimo:
		return NivelBajo
	default:
		return NivelNormal
	}
}

// NivelProducto clasifica un producto según sus propios umbrales.
func NivelProducto(p *entity.Producto) string {
	return Nivel(p.StockActual, p.StockMinimo, p.StockCritico)
}

// EnAlerta indica si el producto está en nivel bajo o crítico.
func EnAlerta(p *entity.Producto) bool {
	return NivelProducto(p) != NivelNormal
}
