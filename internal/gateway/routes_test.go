package gateway

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"grid-studio/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

type seen struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

func upstream(t *testing.T, name string, log *[]seen) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := ""
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if f, _, err := r.FormFile("file"); err == nil {
				data, _ := io.ReadAll(f)
				body = "file:" + string(data)
			}
		} else {
			data, _ := io.ReadAll(r.Body)
			body = string(data)
		}
		*log = append(*log, seen{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization"), body})
		w.Header().Set("X-Upstream", name)
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(t *testing.T, rendererURL, libraryURL string) *fiber.App {
	t.Helper()
	docs := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(docs, []byte("openapi: 3.0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app := fiber.New()
	Register(app, proxy.New(5*time.Second, zerolog.Nop()), Upstreams{
		RendererURL: rendererURL,
		LibraryURL:  libraryURL,
		DocsPath:    docs,
	})
	return app
}

func TestRoutesForward(t *testing.T) {
	var renderer, library []seen
	app := newGateway(t,
		upstream(t, "renderer", &renderer).URL,
		upstream(t, "library", &library).URL)

	requests := []struct {
		method, target, body, auth string
		upstream                   string
	}{
		{"GET", "/api/v1/patterns", "", "", "renderer"},
		{"POST", "/api/v1/render/svg?transparent=true", `{"a":1}`, "", "renderer"},
		{"POST", "/api/v1/randomize?layer=2", "", "", "renderer"},
		{"POST", "/api/v1/login", `{"login":"admin"}`, "", "library"},
		{"PATCH", "/api/v1/users/u1/grids/g1", `{"name":"x"}`, "Bearer tok", "library"},
		{"GET", "/api/v1/users/u1/grids/g1/export?format=svg", "", "Bearer tok", "library"},
	}
	for _, r := range requests {
		req := httptest.NewRequest(r.method, r.target, strings.NewReader(r.body))
		req.Header.Set("Content-Type", "application/json")
		if r.auth != "" {
			req.Header.Set("Authorization", r.auth)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", r.method, r.target, err)
		}
		if resp.StatusCode != http.StatusTeapot || resp.Header.Get("X-Upstream") != r.upstream {
			t.Errorf("%s %s -> %d from %q", r.method, r.target, resp.StatusCode, resp.Header.Get("X-Upstream"))
		}
	}

	wantRenderer := []seen{
		{"GET", "/patterns", "", "", ""},
		{"POST", "/render/svg", "transparent=true", "", `{"a":1}`},
		{"POST", "/randomize", "layer=2", "", ""},
	}
	if diff := cmp.Diff(wantRenderer, renderer); diff != "" {
		t.Errorf("renderer requests (-want +got):\n%s", diff)
	}
	wantLibrary := []seen{
		{"POST", "/login", "", "", `{"login":"admin"}`},
		{"PATCH", "/users/u1/grids/g1", "", "Bearer tok", `{"name":"x"}`},
		{"GET", "/users/u1/grids/g1/export", "format=svg", "Bearer tok", ""},
	}
	if diff := cmp.Diff(wantLibrary, library); diff != "" {
		t.Errorf("library requests (-want +got):\n%s", diff)
	}
}

func TestMultipartForward(t *testing.T) {
	var renderer []seen
	app := newGateway(t, upstream(t, "renderer", &renderer).URL, "http://127.0.0.1:1")

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("file", "grid.svg")
	part.Write([]byte("<svg/>"))
	w.Close()

	req := httptest.NewRequest("POST", "/api/v1/inspect", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}
	if len(renderer) != 1 || renderer[0].Body != "file:<svg/>" {
		t.Errorf("renderer saw %+v", renderer)
	}
}

func TestUnreachableUpstream(t *testing.T) {
	app := newGateway(t, "http://127.0.0.1:1", "http://127.0.0.1:1")
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/patterns", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestDocs(t *testing.T) {
	app := newGateway(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/openapi.yaml", nil))
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 || !strings.HasPrefix(string(data), "openapi:") {
		t.Errorf("spec = %d %q", resp.StatusCode, data)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/docs", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Errorf("ui = %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	page, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(page), `url: "/docs/openapi.yaml"`) {
		t.Errorf("ui page does not point at the api description:\n%s", page)
	}

	missing := fiber.New()
	Register(missing, proxy.New(time.Second, zerolog.Nop()), Upstreams{DocsPath: filepath.Join(t.TempDir(), "none.yaml")})
	resp, err = missing.Test(httptest.NewRequest("GET", "/docs/openapi.yaml", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("missing description status = %d, want 404", resp.StatusCode)
	}
}
