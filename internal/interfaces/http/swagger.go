package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// Swagger devuelve el middleware que sirve la UI de swagger en /docs a
// partir del archivo generado indicado. Devuelve nil cuando el archivo no
// existe, para que el servidor pueda arrancar sin documentación montada.
func Swagger(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Inventario API",
	})
}
