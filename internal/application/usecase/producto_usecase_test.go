package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/usecase"
	"github.com/inventra/inventario-api/internal/domain"
)

func crearRequestValida() dto.CrearProductoRequest {
	return dto.CrearProductoRequest{
		Codigo:       "PRD-001",
		Nombre:       "Tornillo 3/8",
		CategoriaID:  "cat-1",
		ProveedorID:  "prov-1",
		PrecioCompra: decimal.NewFromInt(100),
		PrecioVenta:  decimal.NewFromInt(150),
		StockActual:  20,
		StockMinimo:  10,
		StockCritico: 3,
	}
}

func TestCrearProducto_OK(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	out, err := uc.Crear(crearRequestValida())
	require.NoError(t, err)

	assert.Equal(t, "PRD-001", out.Codigo)
	assert.Equal(t, 20, out.StockActual)
	assert.Equal(t, "normal", out.EstadoStock)
	assert.Equal(t, "unidad", out.UnidadMedida, "la unidad por defecto debe ser unidad")
	assert.True(t, out.Activo)
}

// El precio de venta no puede quedar por debajo del de compra.
func TestCrearProducto_PrecioVentaMenorQueCompra(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	in := crearRequestValida()
	in.PrecioCompra = decimal.NewFromInt(200)
	in.PrecioVenta = decimal.NewFromInt(150)

	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El umbral crítico debe quedar estrictamente por debajo del mínimo.
func TestCrearProducto_CriticoNoMenorQueMinimo(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	casos := []struct {
		nombre  string
		minimo  int
		critico int
	}{
		{"critico igual a minimo", 10, 10},
		{"critico mayor que minimo", 10, 15},
		{"critico negativo con minimo cero", 0, -1},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := crearRequestValida()
			in.StockMinimo = c.minimo
			in.StockCritico = c.critico
			_, err := uc.Crear(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCrearProducto_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	_, err := uc.Crear(crearRequestValida())
	require.NoError(t, err)

	otra := crearRequestValida()
	otra.Nombre = "Otro producto"
	_, err = uc.Crear(otra)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCrearProducto_CamposRequeridos(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	in := crearRequestValida()
	in.Codigo = ""
	_, err := uc.Crear(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El patch se valida sobre los valores efectivos: subir el precio de compra
// por encima de la venta vigente debe rechazarse aunque la venta no venga.
func TestActualizarProducto_RevalidaPreciosEfectivos(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	out, err := uc.Crear(crearRequestValida())
	require.NoError(t, err)

	compraAlta := decimal.NewFromInt(500)
	_, err = uc.Actualizar(out.ID, dto.ActualizarProductoRequest{PrecioCompra: &compraAlta})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El producto no debe haber cambiado
	actual, err := uc.ObtenerPorID(out.ID)
	require.NoError(t, err)
	assert.True(t, actual.PrecioCompra.Equal(decimal.NewFromInt(100)))
}

func TestActualizarProducto_RevalidaUmbrales(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	out, err := uc.Crear(crearRequestValida())
	require.NoError(t, err)

	criticoAlto := 10 // igual al minimo vigente
	_, err = uc.Actualizar(out.ID, dto.ActualizarProductoRequest{StockCritico: &criticoAlto})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarProducto_NoExiste(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	nombre := "Nuevo"
	_, err := uc.Actualizar("no-existe", dto.ActualizarProductoRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDesactivarProducto(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := usecase.NewProductoUseCase(repo)

	out, err := uc.Crear(crearRequestValida())
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(out.ID))

	p, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.False(t, p.Activo, "desactivar es borrado lógico, la fila queda")

	// Desactivado ya no aparece en el listado
	list, err := uc.Listar(dto.ListarProductosRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Productos)
}

func TestListarProductos_EstadoStockInvalido(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	_, err := uc.Listar(dto.ListarProductosRequest{EstadoStock: "agotado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
