package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"quickcal/docs"
)

// RegisterSwagger mounts the Swagger UI under /swagger. The advertised host
// is fixed at startup; request headers never change the shared spec.
func RegisterSwagger(app *fiber.App, host string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	app.Get("/swagger/*", swagger.HandlerDefault)
}
