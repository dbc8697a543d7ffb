package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventra/inventario-api/internal/application/auth"
	"github.com/inventra/inventario-api/internal/application/inventory"
	"github.com/inventra/inventario-api/internal/application/usecase"
	"github.com/inventra/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC   *usecase.ProductoUseCase
	MovimientoUC *inventory.MovimientoUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	ReporteUC    *usecase.ReporteUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Los catálogos de categorías y
// proveedores se leen sin autenticación; el resto de lecturas requiere
// usuario autenticado, las escrituras administrador o encargado y la
// administración de usuarios solo administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	escritura := RequireRole(entity.RolAdministrador, entity.RolEncargado)
	soloAdmin := RequireRole(entity.RolAdministrador)

	// Usuarios: registro y login públicos
	usuarioHandler := NewUsuarioHandler(deps.AuthUC, deps.UsuarioUC)
	usuarios := api.Group("/usuarios")
	usuarios.Post("/registro", usuarioHandler.Registro)
	usuarios.Post("/login", usuarioHandler.Login)

	// Catálogos de lectura pública (se registran antes del middleware
	// de autenticación para que no exijan token)
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categoriasPublico := api.Group("/categorias")
	categoriasPublico.Get("/", categoriaHandler.Listar)
	categoriasPublico.Get("/:id", categoriaHandler.ObtenerPorID)

	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedoresPublico := api.Group("/proveedores")
	proveedoresPublico.Get("/", proveedorHandler.Listar)
	proveedoresPublico.Get("/:id", proveedorHandler.ObtenerPorID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (administración, solo administrador)
	usuariosAdmin := protected.Group("/usuarios", soloAdmin)
	usuariosAdmin.Get("/", usuarioHandler.Listar)
	usuariosAdmin.Get("/:id", usuarioHandler.ObtenerPorID)
	usuariosAdmin.Put("/:id", usuarioHandler.Actualizar)
	usuariosAdmin.Delete("/:id", usuarioHandler.Eliminar)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/:id", productoHandler.ObtenerPorID)
	productos.Post("/", escritura, productoHandler.Crear)
	productos.Put("/:id", escritura, productoHandler.Actualizar)
	productos.Delete("/:id", soloAdmin, productoHandler.Desactivar)

	// Movimientos (las rutas fijas van antes que /:id)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Get("/resumen", movimientoHandler.Resumen)
	movimientos.Get("/alertas", movimientoHandler.Alertas)
	movimientos.Get("/producto/:id", movimientoHandler.HistorialProducto)
	movimientos.Get("/", movimientoHandler.Listar)
	movimientos.Get("/:id", movimientoHandler.ObtenerPorID)
	movimientos.Post("/", escritura, movimientoHandler.Registrar)

	// Categorías (escrituras)
	categorias := protected.Group("/categorias")
	categorias.Post("/", escritura, categoriaHandler.Crear)
	categorias.Put("/:id", escritura, categoriaHandler.Actualizar)
	categorias.Delete("/:id", soloAdmin, categoriaHandler.Eliminar)

	// Proveedores (escrituras)
	proveedores := protected.Group("/proveedores")
	proveedores.Post("/", escritura, proveedorHandler.Crear)
	proveedores.Put("/:id", escritura, proveedorHandler.Actualizar)
	proveedores.Delete("/:id", soloAdmin, proveedorHandler.Desactivar)

	// Reportes
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC, deps.MovimientoUC)
	reportes.Get("/json/estadisticas", reporteHandler.Estadisticas)
	reportes.Get("/json/movimientos-por-tipo", reporteHandler.MovimientosPorTipo)
	reportes.Get("/json/productos-mas-movidos", reporteHandler.ProductosMasMovidos)
	reportes.Get("/json/valor-promedio-categoria", reporteHandler.ValorPromedioCategoria)
	reportes.Get("/pdf/estadisticas", reporteHandler.EstadisticasPDF)
	reportes.Get("/pdf/alertas-stock", reporteHandler.AlertasStockPDF)
}
