package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"grid-studio/internal/common/logging"
	"grid-studio/internal/grid/export"
	gridmodels "grid-studio/internal/grid/models"
	"grid-studio/internal/library/models"
	"grid-studio/internal/library/repository"
	"grid-studio/internal/library/service"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// ============================================================
// Library Handler
// ============================================================

type LibraryHandler struct {
	repo     *repository.Repository
	sessions *service.SessionManager
	storage  *service.FileStorage
	exporter *export.Exporter
	log      zerolog.Logger
}

func NewLibraryHandler(repo *repository.Repository, sessions *service.SessionManager, storage *service.FileStorage, exporter *export.Exporter, log zerolog.Logger) *LibraryHandler {
	return &LibraryHandler{
		repo:     repo,
		sessions: sessions,
		storage:  storage,
		exporter: exporter,
		log:      logging.Component(log, "library"),
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type saveRequest struct {
	Name   string                 `json:"name"`
	Config *gridmodels.GridConfig `json:"config"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type batchRequest struct {
	IDs    []string `json:"ids"`
	Format string   `json:"format"`
}

// Login выдает токен по паре login/password.
func (h *LibraryHandler) Login(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var req loginRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	if req.Login == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "login and password required"})
	}

	user, err := h.repo.GetByCredentials(c.Context(), req.Login, req.Password)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.log.Error().Err(err).Msg("login lookup")
		}
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token := h.sessions.Issue(user.ID)
	h.log.Info().Str("user", user.ID).Msg("login")

	return c.JSON(loginResponse{Token: token, User: user})
}

// Logout отзывает текущий токен.
func (h *LibraryHandler) Logout(c fiber.Ctx) error {
	token, ok := bearer(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	h.sessions.Revoke(token)
	return c.SendStatus(http.StatusNoContent)
}

// ============================================================
// Grids
// ============================================================

// ListGrids возвращает сетки пользователя, новые первыми.
func (h *LibraryHandler) ListGrids(c fiber.Ctx) error {
	userID := owner(c)

	grids, err := h.repo.ListGrids(c.Context(), userID)
	if err != nil {
		return h.internal(c, err, "list grids")
	}
	return c.JSON(grids)
}

// CreateGrid сохраняет конфигурацию; без имени используется "Grid WxH".
func (h *LibraryHandler) CreateGrid(c fiber.Ctx) error {
	userID := owner(c)

	var req saveRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || req.Config == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "config required"})
	}
	if err := h.exporter.Validate(*req.Config); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	grid, err := h.repo.CreateGrid(c.Context(), userID, req.Name, *req.Config)
	if err != nil {
		return h.internal(c, err, "create grid")
	}
	h.log.Info().Str("user", userID).Str("grid", grid.ID).Msg("grid saved")
	return c.Status(http.StatusCreated).JSON(grid)
}

func (h *LibraryHandler) GetGrid(c fiber.Ctx) error {
	userID := owner(c)

	grid, err := h.repo.GetGrid(c.Context(), userID, c.Params("gridID"))
	if err != nil {
		return h.lookupError(c, err)
	}
	return c.JSON(grid)
}

// RenameGrid меняет только имя.
func (h *LibraryHandler) RenameGrid(c fiber.Ctx) error {
	userID := owner(c)

	var req renameRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || strings.TrimSpace(req.Name) == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name required"})
	}

	grid, err := h.repo.RenameGrid(c.Context(), userID, c.Params("gridID"), strings.TrimSpace(req.Name))
	if err != nil {
		return h.lookupError(c, err)
	}
	return c.JSON(grid)
}

// UpdateGrid перезаписывает конфигурацию и сбрасывает превью.
func (h *LibraryHandler) UpdateGrid(c fiber.Ctx) error {
	userID := owner(c)

	var req saveRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || req.Config == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "config required"})
	}
	if err := h.exporter.Validate(*req.Config); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	gridID := c.Params("gridID")
	grid, err := h.repo.UpdateGridConfig(c.Context(), userID, gridID, *req.Config)
	if err != nil {
		return h.lookupError(c, err)
	}
	if err := h.storage.RemoveThumbnail(userID, gridID); err != nil {
		h.log.Warn().Err(err).Str("grid", gridID).Msg("stale thumbnail")
	}
	return c.JSON(grid)
}

func (h *LibraryHandler) DeleteGrid(c fiber.Ctx) error {
	userID := owner(c)

	gridID := c.Params("gridID")
	if err := h.repo.DeleteGrid(c.Context(), userID, gridID); err != nil {
		return h.lookupError(c, err)
	}
	if err := h.storage.RemoveThumbnail(userID, gridID); err != nil {
		h.log.Warn().Err(err).Str("grid", gridID).Msg("stale thumbnail")
	}
	return c.SendStatus(http.StatusNoContent)
}

// ============================================================
// Rendering
// ============================================================

// Thumbnail отдаёт PNG-превью, строя его при первом запросе.
func (h *LibraryHandler) Thumbnail(c fiber.Ctx) error {
	userID := owner(c)

	gridID := c.Params("gridID")
	grid, err := h.repo.GetGrid(c.Context(), userID, gridID)
	if err != nil {
		return h.lookupError(c, err)
	}

	data, err := h.storage.ReadThumbnail(userID, gridID)
	if errors.Is(err, os.ErrNotExist) {
		data, err = h.exporter.Thumbnail(grid.Config, export.ThumbnailSide)
		if err != nil {
			return h.internal(c, err, "render thumbnail")
		}
		if err := h.storage.SaveThumbnail(userID, gridID, data); err != nil {
			h.log.Warn().Err(err).Str("grid", gridID).Msg("cache thumbnail")
		}
	} else if err != nil {
		return h.internal(c, err, "read thumbnail")
	}

	c.Set("Content-Type", "image/png")
	return c.Send(data)
}

// Export отдаёт сохранённую сетку файлом ?format=png|svg.
func (h *LibraryHandler) Export(c fiber.Ctx) error {
	userID := owner(c)

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	grid, err := h.repo.GetGrid(c.Context(), userID, c.Params("gridID"))
	if err != nil {
		return h.lookupError(c, err)
	}

	data, err := h.exporter.Render(grid.Config, format, c.Query("transparent") == "true")
	if err != nil {
		return h.internal(c, err, "export grid")
	}

	c.Set("Content-Type", format.ContentType())
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(grid.Config.State, format)))
	return c.Send(data)
}

// BatchExport упаковывает выбранные сетки в zip.
func (h *LibraryHandler) BatchExport(c fiber.Ctx) error {
	userID := owner(c)

	var req batchRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil || len(req.IDs) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "ids required"})
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	grids, err := h.repo.GetGrids(c.Context(), userID, req.IDs)
	if err != nil {
		return h.lookupError(c, err)
	}

	items := make([]export.Item, len(grids))
	for i, g := range grids {
		items[i] = export.Item{Name: g.Name, Config: g.Config}
	}
	data, err := h.exporter.Batch(c.Context(), items, format)
	if err != nil {
		return h.internal(c, err, "batch export")
	}

	c.Set("Content-Type", "application/zip")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.ArchiveName(format)))
	return c.Send(data)
}

// ============================================================
// Helpers
// ============================================================

func bearer(c fiber.Ctx) (string, bool) {
	auth := c.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

func (h *LibraryHandler) authorize(c fiber.Ctx) (string, bool) {
	token, ok := bearer(c)
	if !ok {
		return "", false
	}
	return h.sessions.Resolve(token)
}

type ctxKey int

const userKey ctxKey = 0

// RequireOwner пропускает запрос, только если токен принадлежит :id.
func (h *LibraryHandler) RequireOwner(c fiber.Ctx) error {
	userID, ok := h.authorize(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	targetID := c.Params("id")
	if targetID == "" || targetID != userID {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}
	c.Locals(userKey, userID)
	return c.Next()
}

func owner(c fiber.Ctx) string {
	id, _ := c.Locals(userKey).(string)
	return id
}

func (h *LibraryHandler) lookupError(c fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "grid not found"})
	}
	return h.internal(c, err, "lookup grid")
}

func (h *LibraryHandler) internal(c fiber.Ctx, err error, op string) error {
	if errors.Is(err, context.Canceled) {
		return c.Status(http.StatusRequestTimeout).JSON(fiber.Map{"error": "request cancelled"})
	}
	h.log.Error().Err(err).Str("op", op).Msg("request failed")
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
