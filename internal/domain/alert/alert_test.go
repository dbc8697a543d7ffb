package alert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventra/inventario-api/internal/domain/alert"
	"github.com/inventra/inventario-api/internal/domain/entity"
)

func TestNivel_Clasificacion(t *testing.T) {
	cases := []struct {
		nombre   string
		actual   int
		minimo   int
		critico  int
		esperado string
	}{
		{"stock sobre el minimo es normal", 10, 5, 2, alert.NivelNormal},
		{"stock igual al minimo es bajo", 5, 5, 2, alert.NivelBajo},
		{"stock entre critico y minimo es bajo", 3, 5, 2, alert.NivelBajo},
		{"stock igual al critico es critico", 2, 5, 2, alert.NivelCritico},
		{"stock bajo el critico es critico", 1, 5, 2, alert.NivelCritico},
		{"stock cero con critico cero es critico", 0, 5, 0, alert.NivelCritico},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.esperado, alert.Nivel(tc.actual, tc.minimo, tc.critico))
		})
	}
}

// El crítico tiene precedencia: un producto en o bajo ambos umbrales nunca es "bajo".
func TestNivel_CriticoTienePrecedencia(t *testing.T) {
	assert.Equal(t, alert.NivelCritico, alert.Nivel(3, 3, 3))
	assert.Equal(t, alert.NivelCritico, alert.Nivel(0, 0, 0))
}

// La clasificación es total y disyunta: todo stock cae en exactamente un nivel.
func TestNivel_TotalYDisyunta(t *testing.T) {
	const minimo, critico = 5, 2
	for stock := 0; stock <= 10; stock++ {
		nivel := alert.Nivel(stock, minimo, critico)
		count := 0
		for _, n := range []string{alert.NivelCritico, alert.NivelBajo, alert.NivelNormal} {
			if nivel == n {
				count++
			}
		}
		assert.Equal(t, 1, count, "stock %d debe caer en exactamente un nivel", stock)
	}
}

func TestNivelProducto_YEnAlerta(t *testing.T) {
	p := &entity.Producto{StockActual: 2, StockMinimo: 5, StockCritico: 2}
	assert.Equal(t, alert.NivelCritico, alert.NivelProducto(p))
	assert.True(t, alert.EnAlerta(p))

	p.StockActual = 6
	assert.Equal(t, alert.NivelNormal, alert.NivelProducto(p))
	assert.False(t, alert.EnAlerta(p))
}
