package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP para Producto (protegido).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ObtenerPorID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) ObtenerPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.ObtenerPorID(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        buscar        query  string  false  "Busca en código, nombre y descripción"
// @Param        categoria_id  query  string  false  "Filtrar por categoría"
// @Param        proveedor_id  query  string  false  "Filtrar por proveedor"
// @Param        estado_stock  query  string  false  "critico, bajo o normal"
// @Param        pagina        query  int     false  "Página"  default(1)
// @Param        limite        query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.ProductoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	var in dto.ListarProductosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Listar(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Desactivar godoc
// @Summary      Desactivar producto (borrado lógico)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Desactivar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Desactivar(id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
