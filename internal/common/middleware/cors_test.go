package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name      string
		origins   []string
		origin    string
		wantAllow string
	}{
		{"any origin by default", nil, "http://example.com", "*"},
		{"listed origin", []string{"http://localhost:5173"}, "http://localhost:5173", "http://localhost:5173"},
		{"unlisted origin", []string{"http://localhost:5173"}, "http://evil.test", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(CORS(tt.origins))
			app.Get("/render/png", func(c fiber.Ctx) error {
				c.Set("Content-Disposition", `attachment; filename="grid.png"`)
				return c.SendString("ok")
			})

			req := httptest.NewRequest("GET", "/render/png", nil)
			req.Header.Set("Origin", tt.origin)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("allow origin = %q, want %q", got, tt.wantAllow)
			}
			if got := resp.Header.Get("Access-Control-Expose-Headers"); got != "Content-Disposition" {
				t.Errorf("expose headers = %q", got)
			}
		})
	}
}
