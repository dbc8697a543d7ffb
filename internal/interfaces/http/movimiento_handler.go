package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventra/inventario-api/internal/application/dto"
	"github.com/inventra/inventario-api/internal/application/inventory"
)

// MovimientoHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type MovimientoHandler struct {
	uc *inventory.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *inventory.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  Registra entrada, salida o ajuste y actualiza el stock en una sola transacción.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	usuarioID := GetUserID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario requerido"})
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Registrar(c.UserContext(), usuarioID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ObtenerPorID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [get]
func (h *MovimientoHandler) ObtenerPorID(c *fiber.Ctx) error {
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
// @Summary      Listar movimientos
// @Description  Historial completo, del más reciente al más antiguo, con filtros opcionales.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        producto_id      query  string  false  "Filtrar por producto"
// @Param        tipo_movimiento  query  string  false  "entrada, salida o ajuste"
// @Param        desde            query  string  false  "Fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        hasta            query  string  false  "Fecha final"
// @Param        pagina           query  int     false  "Página"  default(1)
// @Param        limite           query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.MovimientoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	var in dto.ListarMovimientosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Listar(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Resumen de movimientos por tipo
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        hasta  query  string  false  "Fecha final"
// @Success      200  {object}  dto.ResumenMovimientosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos/resumen [get]
func (h *MovimientoHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Alertas godoc
// @Summary      Alertas de stock
// @Description  Clasifica todos los productos activos en critico, bajo y normal.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertasStockResponse
// @Router       /api/movimientos/alertas [get]
func (h *MovimientoHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.uc.AlertasStock()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// HistorialProducto godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        pagina  query  int     false  "Página"  default(1)
// @Param        limite  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.HistorialProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/producto/{id} [get]
func (h *MovimientoHandler) HistorialProducto(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.HistorialProducto(id, page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
