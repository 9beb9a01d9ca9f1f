package handlers

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Swagger Handlers
// ============================================================

// SwaggerSpec отдаёт OpenAPI YAML из файла path. Файл читается на каждый
// запрос, правки документации видны без перезапуска gateway.
func SwaggerSpec(path string) fiber.Handler {
	return func(c fiber.Ctx) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "api description not found"})
		}
		c.Type("yaml")
		return c.Send(data)
	}
}

const swaggerPage = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Grid Studio API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: %q,
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      tryItOutEnabled: true,
    });
  };
</script>
</body>
</html>`

// SwaggerUI отдаёт страницу Swagger UI, загружающую описание с specURL.
func SwaggerUI(specURL string) fiber.Handler {
	page := fmt.Sprintf(swaggerPage, specURL)
	return func(c fiber.Ctx) error {
		c.Type("html")
		return c.SendString(page)
	}
}
