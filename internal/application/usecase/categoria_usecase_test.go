package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/usecase"
	"github.com/inventra/inventario-api/internal/domain"
)

func TestCrearCategoria_NombreRequerido(t *testing.T) {
	uc := usecase.NewCategoriaUseCase(newFakeCategoriaRepo(), newFakeProductoRepo())

	_, err := uc.Crear(dto.CrearCategoriaRequest{Descripcion: "sin nombre"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearCategoria_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoriaUseCase(newFakeCategoriaRepo(), newFakeProductoRepo())

	_, err := uc.Crear(dto.CrearCategoriaRequest{Nombre: "Ferretería"})
	require.NoError(t, err)

	_, err = uc.Crear(dto.CrearCategoriaRequest{Nombre: "Ferretería"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Borrar una categoría con productos activos asignados debe fallar con conflicto.
func TestEliminarCategoria_ConProductosActivos(t *testing.T) {
	categoriaRepo := newFakeCategoriaRepo()
	productoRepo := newFakeProductoRepo()
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, productoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)

	cat, err := categoriaUC.Crear(dto.CrearCategoriaRequest{Nombre: "Ferretería"})
	require.NoError(t, err)

	in := crearRequestValida()
	in.CategoriaID = cat.ID
	prod, err := productoUC.Crear(in)
	require.NoError(t, err)

	err = categoriaUC.Eliminar(cat.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"no debe poder eliminarse una categoría con productos activos")

	// Desactivado el producto, la categoría ya puede borrarse
	require.NoError(t, productoUC.Desactivar(prod.ID))
	require.NoError(t, categoriaUC.Eliminar(cat.ID))

	_, err = categoriaUC.ObtenerPorID(cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminarCategoria_NoExiste(t *testing.T) {
	uc := usecase.NewCategoriaUseCase(newFakeCategoriaRepo(), newFakeProductoRepo())

	err := uc.Eliminar("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActualizarCategoria_NombreVacioRechazado(t *testing.T) {
	uc := usecase.NewCategoriaUseCase(newFakeCategoriaRepo(), newFakeProductoRepo())

	cat, err := uc.Crear(dto.CrearCategoriaRequest{Nombre: "Ferretería"})
	require.NoError(t, err)

	vacio := ""
	_, err = uc.Actualizar(cat.ID, dto.ActualizarCategoriaRequest{Nombre: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
