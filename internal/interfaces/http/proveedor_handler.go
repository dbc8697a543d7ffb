package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/usecase"
)

// ProveedorHandler maneja las peticiones HTTP para Proveedor (protegido).
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar proveedores activos
// @Tags         proveedores
// @Produce      json
// @Param        buscar  query  string  false  "Busca en nombre, email y CUIT"
// @Param        pagina  query  int     false  "Página"  default(1)
// @Param        limite  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.ProveedorListResponse
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	var in dto.ListarProveedoresRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Listar(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ObtenerPorID godoc
// @Summary      Obtener proveedor con sus productos
// @Tags         proveedores
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.ProveedorDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) ObtenerPorID(c *fiber.Ctx) error {
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

// Crear godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProveedorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar proveedor
// @Description  El CUIT es inmutable y no se acepta en el body.
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.ActualizarProveedorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProveedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [put]
func (h *ProveedorHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.ActualizarProveedorRequest
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
// @Summary      Desactivar proveedor (borrado lógico)
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [delete]
func (h *ProveedorHandler) Desactivar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Desactivar(id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
