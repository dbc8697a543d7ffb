package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inventra/inventario-api/internal/domain/repository"
)

func TestBuildProductoListQuery_OrdenPorFechaCreacionDescendente(t *testing.T) {
	_, listQuery, _, _ := buildProductoListQuery(repository.FiltroProductos{Limit: 20})

	assert.Contains(t, listQuery, "ORDER BY p.fecha_creacion DESC")
	assert.NotContains(t, listQuery, "ORDER BY p.nombre")
}

func TestBuildProductoListQuery_SinFiltros(t *testing.T) {
	countQuery, listQuery, countArgs, listArgs := buildProductoListQuery(repository.FiltroProductos{Limit: 20, Offset: 40})

	assert.Contains(t, countQuery, "WHERE p.activo = true")
	assert.Empty(t, countArgs)
	assert.Contains(t, listQuery, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{20, 40}, listArgs)
}

func TestBuildProductoListQuery_FiltrosCombinados(t *testing.T) {
	f := repository.FiltroProductos{
		Buscar:      "tornillo",
		CategoriaID: "cat-1",
		EstadoStock: "critico",
		Limit:       10,
		Offset:      0,
	}
	countQuery, listQuery, countArgs, listArgs := buildProductoListQuery(f)

	assert.Contains(t, countQuery, "p.codigo ILIKE $1")
	assert.Contains(t, countQuery, "p.categoria_id = $2")
	assert.Contains(t, countQuery, "p.stock_actual <= p.stock_critico")
	assert.Equal(t, []any{"%tornillo%", "cat-1"}, countArgs)

	// el listado reutiliza los placeholders del conteo y agrega paginación
	assert.Contains(t, listQuery, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{"%tornillo%", "cat-1", 10, 0}, listArgs)
}

func TestEstadoStockCond(t *testing.T) {
	casos := map[string]string{
		"critico": "p.stock_actual <= p.stock_critico",
		"bajo":    "p.stock_actual > p.stock_critico AND p.stock_actual <= p.stock_minimo",
		"normal":  "p.stock_actual > p.stock_minimo",
		"":        "",
	}
	for estado, esperado := range casos {
		cond := estadoStockCond(estado)
		if esperado == "" {
			assert.Empty(t, cond)
			continue
		}
		assert.True(t, strings.Contains(cond, esperado), "estado %q", estado)
	}
}
