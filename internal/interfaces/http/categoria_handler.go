package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/usecase"
)

// CategoriaHandler maneja las peticiones HTTP para Categoria (protegido).
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ObtenerPorID godoc
// @Summary      Obtener categoría con sus productos
// @Tags         categorias
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoriaDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoriaHandler) ObtenerPorID(c *fiber.Ctx) error {
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
// @Summary      Crear categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCategoriaRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
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
// @Summary      Actualizar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.ActualizarCategoriaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CategoriaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoriaHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.ActualizarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar categoría
// @Description  Falla con 409 si la categoría tiene productos activos asociados.
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoriaHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Eliminar(id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
