package proxy

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"grid-studio/internal/common/logging"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// ============================================================
// Proxy Handler
// ============================================================

type Proxy struct {
	client *http.Client
	log    zerolog.Logger
}

func New(timeout time.Duration, log zerolog.Logger) *Proxy {
	return &Proxy{
		client: &http.Client{Timeout: timeout},
		log:    logging.Component(log, "proxy"),
	}
}

// To проксирует запрос на фиксированный URL upstream.
func (p *Proxy) To(targetURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return p.Forward(c, withQuery(c, targetURL))
	}
}

// Prefix проксирует запрос, подставляя хвост wildcard-маршрута
// после base: /api/v1/users/* -> {base}/{*}.
func (p *Proxy) Prefix(base string) fiber.Handler {
	base = strings.TrimSuffix(base, "/")
	return func(c fiber.Ctx) error {
		return p.Forward(c, withQuery(c, base+"/"+c.Params("*")))
	}
}

// Forward проксирует любой метод с учетом multipart/raw.
func (p *Proxy) Forward(c fiber.Ctx, targetURL string) error {
	p.log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("content_type", c.Get("Content-Type")).
		Int("content_length", len(c.Body())).
		Str("target", targetURL).
		Msg("forward")

	contentType := c.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return p.sendRaw(c, targetURL, contentType)
	}

	return p.sendMultipart(c, targetURL)
}

func withQuery(c fiber.Ctx, target string) string {
	if q := string(c.Request().URI().QueryString()); q != "" {
		return target + "?" + q
	}
	return target
}

func (p *Proxy) sendRaw(c fiber.Ctx, targetURL, contentType string) error {
	body := bytes.NewReader(c.Body())
	req, err := http.NewRequestWithContext(c.Context(), c.Method(), targetURL, body)
	if err != nil {
		p.log.Error().Err(err).Msg("build request")
		return c.Status(500).JSON(fiber.Map{"error": "proxy failed"})
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return p.do(c, req)
}

func (p *Proxy) sendMultipart(c fiber.Ctx, targetURL string) error {
	form, err := c.MultipartForm()
	if err != nil {
		p.log.Warn().Err(err).Msg("parse multipart")
		return c.Status(400).JSON(fiber.Map{"error": "invalid multipart data"})
	}

	body, contentType, err := encodeMultipart(form)
	if err != nil {
		p.log.Warn().Err(err).Msg("re-encode multipart")
		return c.Status(400).JSON(fiber.Map{"error": "invalid multipart data"})
	}

	req, err := http.NewRequestWithContext(c.Context(), c.Method(), targetURL, bytes.NewReader(body))
	if err != nil {
		p.log.Error().Err(err).Msg("build multipart request")
		return c.Status(500).JSON(fiber.Map{"error": "proxy failed"})
	}

	req.Header.Set("Content-Type", contentType)
	return p.do(c, req)
}

// encodeMultipart собирает форму заново; любая ошибка части прерывает запрос.
func encodeMultipart(form *multipart.Form) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, files := range form.File {
		for _, fileHeader := range files {
			if err := copyPart(writer, key, fileHeader); err != nil {
				return nil, "", fmt.Errorf("file %q: %w", fileHeader.Filename, err)
			}
		}
	}

	for key, values := range form.Value {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return nil, "", fmt.Errorf("field %q: %w", key, err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return body.Bytes(), writer.FormDataContentType(), nil
}

func copyPart(writer *multipart.Writer, key string, fileHeader *multipart.FileHeader) error {
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, key, fileHeader.Filename))
	h.Set("Content-Type", fileHeader.Header.Get("Content-Type"))

	part, err := writer.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}

func (p *Proxy) do(c fiber.Ctx, req *http.Request) error {
	if auth := c.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error().Err(err).Str("target", req.URL.String()).Msg("upstream unreachable")
		return c.Status(502).JSON(fiber.Map{"error": "failed to reach upstream service"})
	}
	defer resp.Body.Close()

	return p.copyResponse(c, resp)
}

func (p *Proxy) copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.Error().Err(err).Msg("read upstream response")
		return c.Status(502).JSON(fiber.Map{"error": "invalid upstream response"})
	}

	for key, values := range resp.Header {
		if len(values) > 0 {
			c.Set(key, values[0])
		}
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}
