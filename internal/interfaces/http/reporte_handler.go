package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/inventra/inventario-api/internal/application/inventory"
	"github.com/inventra/inventario-api/internal/application/usecase"
)

// ReporteHandler maneja los reportes JSON y PDF (protegido).
type ReporteHandler struct {
	uc    *usecase.ReporteUseCase
	movUC *inventory.MovimientoUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase, movUC *inventory.MovimientoUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc, movUC: movUC}
}

// Estadisticas godoc
// @Summary      Estadísticas generales del inventario
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasResponse
// @Router       /api/reportes/json/estadisticas [get]
func (h *ReporteHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// MovimientosPorTipo godoc
// @Summary      Movimientos agregados por tipo en un período
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  true  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  true  "Fecha final"
// @Success      200  {object}  dto.MovimientosPorTipoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/json/movimientos-por-tipo [get]
func (h *ReporteHandler) MovimientosPorTipo(c *fiber.Ctx) error {
	out, err := h.uc.MovimientosPorTipo(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ProductosMasMovidos godoc
// @Summary      Top de productos por movimientos en un período
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int     false  "Cantidad de productos"  default(10)
// @Param        desde   query  string  true   "Fecha inicial (2006-01-02)"
// @Param        hasta   query  string  true   "Fecha final"
// @Success      200  {object}  dto.ProductosMasMovidosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/json/productos-mas-movidos [get]
func (h *ReporteHandler) ProductosMasMovidos(c *fiber.Ctx) error {
	limite := c.QueryInt("limite", 10)
	out, err := h.uc.ProductosMasMovidos(limite, c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ValorPromedioCategoria godoc
// @Summary      Valoración de inventario por categoría
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValorPromedioCategoriaResponse
// @Router       /api/reportes/json/valor-promedio-categoria [get]
func (h *ReporteHandler) ValorPromedioCategoria(c *fiber.Ctx) error {
	out, err := h.uc.ValorPromedioPorCategoria()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// EstadisticasPDF godoc
// @Summary      Estadísticas generales en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/pdf/estadisticas [get]
func (h *ReporteHandler) EstadisticasPDF(c *fiber.Ctx) error {
	data, err := h.uc.EstadisticasPDF(c.UserContext())
	if err != nil {
		return errorJSON(c, err)
	}
	return sendPDF(c, "estadisticas", data)
}

// AlertasStockPDF godoc
// @Summary      Alertas de stock en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/pdf/alertas-stock [get]
func (h *ReporteHandler) AlertasStockPDF(c *fiber.Ctx) error {
	alertas, err := h.movUC.AlertasStock()
	if err != nil {
		return errorJSON(c, err)
	}
	data, err := h.uc.AlertasStockPDF(c.UserContext(), *alertas)
	if err != nil {
		return errorJSON(c, err)
	}
	return sendPDF(c, "alertas-stock", data)
}

func sendPDF(c *fiber.Ctx, nombre string, data []byte) error {
	filename := fmt.Sprintf("%s-%s.pdf", nombre, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
