package health

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestProbes(t *testing.T) {
	failing := false
	app := fiber.New()
	Register(app, func(context.Context) error {
		if failing {
			return errors.New("db closed")
		}
		return nil
	})

	tests := []struct {
		path    string
		failing bool
		want    int
	}{
		{"/health/live", false, 200},
		{"/health/startup", false, 200},
		{"/health/ready", false, 200},
		{"/health/ready", true, 503},
		{"/health/live", true, 200},
	}
	for _, tt := range tests {
		failing = tt.failing
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		if err != nil {
			t.Fatalf("%s: %v", tt.path, err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("%s (failing=%v) = %d, want %d", tt.path, tt.failing, resp.StatusCode, tt.want)
		}
	}
}
