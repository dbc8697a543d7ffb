package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "entrada" // suma Cantidad al stock
	MovimientoSalida  = "salida"  // resta Cantidad del stock
	MovimientoAjuste  = "ajuste"  // fija el stock en Cantidad (valor absoluto, no delta)
)

// TipoMovimientoValido indica si el tipo pertenece al enum permitido.
func TipoMovimientoValido(tipo string) bool {
	return tipo == MovimientoEntrada || tipo == MovimientoSalida || tipo == MovimientoAjuste
}

// Movimiento es un registro inmutable del libro de movimientos: se crea una vez,
// nunca se actualiza ni se borra.
type Movimiento struct {
	ID              string
	ProductoID      string
	Tipo            string // entrada, salida, ajuste
	Cantidad        int    // entero positivo; para ajuste es el stock objetivo
	UsuarioID       string
	Motivo          string
	Observaciones   string
	FechaMovimiento time.Time
}

// MovimientoDetalle movimiento con resúmenes de producto y usuario (joins de lectura).
type MovimientoDetalle struct {
	Movimiento
	Producto *ProductoResumen
	Usuario  *UsuarioResumen
}
