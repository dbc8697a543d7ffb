package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/inventory"
	"github.com/inventra/inventario-api/internal/domain"
	"github.com/inventra/inventario-api/internal/domain/alert"
	"github.com/inventra/inventario-api/internal/domain/entity"
	"github.com/inventra/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// almacen emula la base: productos por ID y el libro de movimientos. El
// fakeTxRunner serializa las transacciones con un mutex (equivalente al
// SELECT FOR UPDATE por fila) y restaura un snapshot si fn falla (rollback).
// ──────────────────────────────────────────────────────────────────────────────

const testUsuarioID = "00000000-0000-0000-0000-000000000001"

type almacen struct {
	mu        sync.Mutex
	productos map[string]*entity.Producto
	movs      []*entity.Movimiento
}

func nuevoAlmacen(productos ...*entity.Producto) *almacen {
	a := &almacen{productos: map[string]*entity.Producto{}}
	for _, p := range productos {
		a.productos[p.ID] = p
	}
	return a
}

type fakeMovRepo struct{ a *almacen }

func (r *fakeMovRepo) Create(m *entity.Movimiento) error {
	cp := *m
	r.a.movs = append(r.a.movs, &cp)
	return nil
}

func (r *fakeMovRepo) GetDetalle(id string) (*entity.MovimientoDetalle, error) {
	for _, m := range r.a.movs {
		if m.ID == id {
			d := &entity.MovimientoDetalle{Movimiento: *m}
			if p, ok := r.a.productos[m.ProductoID]; ok {
				d.Producto = &entity.ProductoResumen{ID: p.ID, Codigo: p.Codigo, Nombre: p.Nombre}
			}
			d.Usuario = &entity.UsuarioResumen{ID: m.UsuarioID, Nombre: "Tester", Email: "tester@example.com"}
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeMovRepo) List(f repository.FiltroMovimientos) ([]*entity.MovimientoDetalle, int, error) {
	var out []*entity.MovimientoDetalle
	for i := len(r.a.movs) - 1; i >= 0; i-- { // más reciente primero
		m := r.a.movs[i]
		if f.ProductoID != "" && m.ProductoID != f.ProductoID {
			continue
		}
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		out = append(out, &entity.MovimientoDetalle{Movimiento: *m})
	}
	return out, len(out), nil
}

func (r *fakeMovRepo) Resumen(desde, hasta *time.Time) (*entity.ResumenMovimientos, error) {
	res := &entity.ResumenMovimientos{}
	for _, m := range r.a.movs {
		switch m.Tipo {
		case entity.MovimientoEntrada:
			res.Entrada++
		case entity.MovimientoSalida:
			res.Salida++
		case entity.MovimientoAjuste:
			res.Ajuste++
		}
		res.Total++
	}
	return res, nil
}

type fakeProductoRepo struct{ a *almacen }

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.a.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeProductoRepo) GetDetalle(id string) (*entity.ProductoDetalle, error) {
	p, ok := r.a.productos[id]
	if !ok {
		return nil, nil
	}
	return &entity.ProductoDetalle{Producto: *p}, nil
}

func (r *fakeProductoRepo) SetStock(id string, stock int) error {
	p, ok := r.a.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual = stock
	return nil
}

func (r *fakeProductoRepo) ListActivos() ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.a.productos {
		if p.Activo {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Métodos no usados por el motor de inventario.
func (r *fakeProductoRepo) Create(*entity.Producto) error          { return nil }
func (r *fakeProductoRepo) GetByCodigo(string) (*entity.Producto, error) { return nil, nil }
func (r *fakeProductoRepo) Update(*entity.Producto) error          { return nil }
func (r *fakeProductoRepo) Deactivate(string) error                { return nil }
func (r *fakeProductoRepo) List(repository.FiltroProductos) ([]*entity.ProductoDetalle, int, error) {
	return nil, 0, nil
}
func (r *fakeProductoRepo) ListByCategoria(string) ([]*entity.Producto, error) { return nil, nil }
func (r *fakeProductoRepo) ListByProveedor(string) ([]*entity.Producto, error) { return nil, nil }
func (r *fakeProductoRepo) CountActivosByCategoria(string) (int, error)        { return 0, nil }

type fakeTxRunner struct{ a *almacen }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	t.a.mu.Lock()
	defer t.a.mu.Unlock()

	// Snapshot para simular rollback.
	stocks := make(map[string]int, len(t.a.productos))
	for id, p := range t.a.productos {
		stocks[id] = p.StockActual
	}
	nMovs := len(t.a.movs)

	err := fn(&fakeMovRepo{a: t.a}, &fakeProductoRepo{a: t.a})
	if err != nil {
		for id, s := range stocks {
			t.a.productos[id].StockActual = s
		}
		t.a.movs = t.a.movs[:nMovs]
	}
	return err
}

func nuevoUseCase(a *almacen) *inventory.MovimientoUseCase {
	return inventory.NewMovimientoUseCase(
		&fakeTxRunner{a: a},
		&fakeMovRepo{a: a},
		&fakeProductoRepo{a: a},
	)
}

func producto(id string, stock, minimo, critico int) *entity.Producto {
	return &entity.Producto{
		ID:           id,
		Codigo:       "P-" + id,
		Nombre:       "Producto " + id,
		StockActual:  stock,
		StockMinimo:  minimo,
		StockCritico: critico,
		Activo:       true,
	}
}

func registrar(t *testing.T, uc *inventory.MovimientoUseCase, productoID, tipo string, cantidad int) (*dto.MovimientoResponse, error) {
	t.Helper()
	return uc.Registrar(context.Background(), testUsuarioID, dto.RegistrarMovimientoRequest{
		ProductoID: productoID,
		Tipo:       tipo,
		Cantidad:   cantidad,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaSumaStock(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 0, 5, 2))
	uc := nuevoUseCase(a)

	mov, err := registrar(t, uc, "p1", entity.MovimientoEntrada, 50)
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.Equal(t, 50, a.productos["p1"].StockActual)
	assert.Equal(t, entity.MovimientoEntrada, mov.Tipo)
	require.NotNil(t, mov.Producto, "la respuesta debe incluir el resumen del producto")
	assert.Equal(t, "P-p1", mov.Producto.Codigo)
	require.NotNil(t, mov.Usuario, "la respuesta debe incluir el resumen del usuario")
	assert.Equal(t, testUsuarioID, mov.Usuario.ID)
}

// Escenario B: stock 10/min 5/crit 2, salida de 8 → stock 2 → nivel crítico.
func TestRegistrar_SalidaDejaProductoCritico(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 10, 5, 2))
	uc := nuevoUseCase(a)

	_, err := registrar(t, uc, "p1", entity.MovimientoSalida, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, a.productos["p1"].StockActual)

	alertas, err := uc.AlertasStock()
	require.NoError(t, err)
	require.Len(t, alertas.Critico, 1)
	assert.Equal(t, "p1", alertas.Critico[0].ID)
	assert.Equal(t, alert.NivelCritico, alertas.Critico[0].Nivel)
}

// Escenario A: la salida que excede el stock falla y no deja rastro:
// ni cambio de stock ni fila en el libro.
func TestRegistrar_SalidaInsuficienteRevierteTodo(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 10, 5, 2))
	uc := nuevoUseCase(a)

	_, err := registrar(t, uc, "p1", entity.MovimientoSalida, 15)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, a.productos["p1"].StockActual, "el stock no debe cambiar")
	assert.Empty(t, a.movs, "el libro no debe conservar la salida rechazada")
}

// Escenario C: el ajuste fija el stock en el valor absoluto, no suma.
func TestRegistrar_AjusteEsAbsoluto(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 0, 5, 2))
	uc := nuevoUseCase(a)

	_, err := registrar(t, uc, "p1", entity.MovimientoEntrada, 50)
	require.NoError(t, err)
	require.Equal(t, 50, a.productos["p1"].StockActual)

	_, err = registrar(t, uc, "p1", entity.MovimientoAjuste, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, a.productos["p1"].StockActual, "ajuste debe fijar, no sumar")
}

func TestRegistrar_ValidacionesPreviasNoEscriben(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 10, 5, 2))
	uc := nuevoUseCase(a)

	cases := []struct {
		nombre string
		req    dto.RegistrarMovimientoRequest
	}{
		{"tipo inválido", dto.RegistrarMovimientoRequest{ProductoID: "p1", Tipo: "traslado", Cantidad: 1}},
		{"cantidad cero", dto.RegistrarMovimientoRequest{ProductoID: "p1", Tipo: entity.MovimientoEntrada, Cantidad: 0}},
		{"cantidad negativa", dto.RegistrarMovimientoRequest{ProductoID: "p1", Tipo: entity.MovimientoAjuste, Cantidad: -3}},
		{"sin producto", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoEntrada, Cantidad: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.Registrar(context.Background(), testUsuarioID, tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := uc.Registrar(context.Background(), "", dto.RegistrarMovimientoRequest{
		ProductoID: "p1", Tipo: entity.MovimientoEntrada, Cantidad: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "usuario vacío debe rechazarse")

	assert.Equal(t, 10, a.productos["p1"].StockActual)
	assert.Empty(t, a.movs, "ninguna validación previa debe escribir en el libro")
}

func TestRegistrar_ProductoInexistente(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())

	_, err := registrar(t, uc, "no-existe", entity.MovimientoEntrada, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Reproducir el libro ordenado debe llegar al mismo stock final (fold de efectos).
func TestRegistrar_ReplayReproduceStock(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 0, 5, 2))
	uc := nuevoUseCase(a)

	pasos := []struct {
		tipo     string
		cantidad int
	}{
		{entity.MovimientoEntrada, 20},
		{entity.MovimientoSalida, 7},
		{entity.MovimientoEntrada, 3},
		{entity.MovimientoAjuste, 40},
		{entity.MovimientoSalida, 15},
	}
	for _, paso := range pasos {
		_, err := registrar(t, uc, "p1", paso.tipo, paso.cantidad)
		require.NoError(t, err)
	}

	replay := 0
	for _, m := range a.movs {
		switch m.Tipo {
		case entity.MovimientoEntrada:
			replay += m.Cantidad
		case entity.MovimientoSalida:
			replay -= m.Cantidad
		case entity.MovimientoAjuste:
			replay = m.Cantidad
		}
	}
	assert.Equal(t, replay, a.productos["p1"].StockActual)
	assert.Equal(t, 25, a.productos["p1"].StockActual)
	assert.GreaterOrEqual(t, a.productos["p1"].StockActual, 0)
}

// Escenario F: dos salidas concurrentes de 6 contra stock 10 → exactamente una
// entra; el stock final es 4 y nunca queda negativo.
func TestRegistrar_SalidasConcurrentes(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 10, 5, 2))
	uc := nuevoUseCase(a)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := registrar(t, uc, "p1", entity.MovimientoSalida, 6)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	exitos, fallos := 0, 0
	for err := range errs {
		if err == nil {
			exitos++
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			fallos++
		}
	}
	assert.Equal(t, 1, exitos, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, fallos)
	assert.Equal(t, 4, a.productos["p1"].StockActual)
	assert.Len(t, a.movs, 1, "solo la salida aplicada queda en el libro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertasStock_ClasificacionTotalYDisyunta(t *testing.T) {
	a := nuevoAlmacen(
		producto("critico", 2, 5, 2),
		producto("bajo", 4, 5, 2),
		producto("normal", 9, 5, 2),
	)
	inactivo := producto("inactivo", 0, 5, 2)
	inactivo.Activo = false
	a.productos[inactivo.ID] = inactivo

	uc := nuevoUseCase(a)
	alertas, err := uc.AlertasStock()
	require.NoError(t, err)

	assert.Len(t, alertas.Critico, 1)
	assert.Len(t, alertas.Bajo, 1)
	assert.Len(t, alertas.Normal, 1)

	total := len(alertas.Critico) + len(alertas.Bajo) + len(alertas.Normal)
	assert.Equal(t, 3, total, "los inactivos no se clasifican")
}

func TestHistorialProducto_NoExiste(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())

	_, err := uc.HistorialProducto("no-existe", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumen_CuentaPorTipo(t *testing.T) {
	a := nuevoAlmacen(producto("p1", 0, 5, 2))
	uc := nuevoUseCase(a)

	_, err := registrar(t, uc, "p1", entity.MovimientoEntrada, 10)
	require.NoError(t, err)
	_, err = registrar(t, uc, "p1", entity.MovimientoSalida, 4)
	require.NoError(t, err)
	_, err = registrar(t, uc, "p1", entity.MovimientoAjuste, 8)
	require.NoError(t, err)

	resumen, err := uc.Resumen("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, resumen.Entrada)
	assert.Equal(t, 1, resumen.Salida)
	assert.Equal(t, 1, resumen.Ajuste)
	assert.Equal(t, 3, resumen.Total)
}

func TestListar_TipoInvalido(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())

	_, err := uc.Listar(dto.ListarMovimientosRequest{Tipo: "prestamo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListar_FechaInvalida(t *testing.T) {
	uc := nuevoUseCase(nuevoAlmacen())

	_, err := uc.Listar(dto.ListarMovimientosRequest{Desde: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
