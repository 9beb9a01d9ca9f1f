package repository

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"grid-studio/internal/library/models"

	gridmodels "grid-studio/internal/grid/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("not found")

//go:embed migrations/*.sql
var migrations embed.FS

// AdminID: id пользователя, которого создаёт Init.
const AdminID = "11111111-1111-1111-1111-111111111111"

const timeLayout = "2006-01-02T15:04:05.000000Z"

type Repository struct {
	db   *sql.DB
	cost int
	now  func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, cost: bcrypt.DefaultCost, now: time.Now}
}

// Init запускает миграции и убеждается в наличии admin.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return r.ensureAdmin(ctx)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ============================================================
// Users
// ============================================================

// GetByCredentials сверяет пароль с bcrypt-хешем. Неверный пароль и
// неизвестный логин одинаково дают ErrNotFound.
func (r *Repository) GetByCredentials(ctx context.Context, login, password string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, login, password_hash, created_at
        FROM users
        WHERE login = ?
    `, login)

	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, login, password_hash, created_at
        FROM users
        WHERE id = ?
    `, id)
	return scanUser(row)
}

// CreateUser добавляет пользователя с захешированным паролем.
func (r *Repository) CreateUser(ctx context.Context, id, login, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO users (id, login, password_hash)
        VALUES (?, ?, ?)
    `, id, login, string(hash))
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ============================================================
// Grids
// ============================================================

func (r *Repository) CreateGrid(ctx context.Context, userID, name string, cfg gridmodels.GridConfig) (*models.SavedGrid, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = cfg.DefaultName()
	}

	ts := r.now().UTC().Format(timeLayout)
	g := &models.SavedGrid{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Config:    cfg,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO grids (id, user_id, name, config, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, g.ID, g.UserID, g.Name, string(data), g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert grid: %w", err)
	}
	return g, nil
}

// ListGrids возвращает сетки пользователя, новые первыми.
func (r *Repository) ListGrids(ctx context.Context, userID string) ([]models.SavedGrid, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, user_id, name, config, created_at, updated_at
        FROM grids
        WHERE user_id = ?
        ORDER BY created_at DESC, rowid DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("list grids: %w", err)
	}
	defer rows.Close()

	out := []models.SavedGrid{}
	for rows.Next() {
		g, err := scanGrid(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

func (r *Repository) GetGrid(ctx context.Context, userID, id string) (*models.SavedGrid, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, user_id, name, config, created_at, updated_at
        FROM grids
        WHERE user_id = ? AND id = ?
    `, userID, id)
	g, err := scanGrid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return g, err
}

// GetGrids возвращает сетки в порядке ids; для отсутствующего id возвращает ErrNotFound.
func (r *Repository) GetGrids(ctx context.Context, userID string, ids []string) ([]models.SavedGrid, error) {
	out := make([]models.SavedGrid, 0, len(ids))
	for _, id := range ids {
		g, err := r.GetGrid(ctx, userID, id)
		if err != nil {
			return nil, fmt.Errorf("grid %s: %w", id, err)
		}
		out = append(out, *g)
	}
	return out, nil
}

func (r *Repository) RenameGrid(ctx context.Context, userID, id, name string) (*models.SavedGrid, error) {
	return r.update(ctx, userID, id, "name = ?", name)
}

func (r *Repository) UpdateGridConfig(ctx context.Context, userID, id string, cfg gridmodels.GridConfig) (*models.SavedGrid, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return r.update(ctx, userID, id, "config = ?", string(data))
}

func (r *Repository) update(ctx context.Context, userID, id, set string, value any) (*models.SavedGrid, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE grids SET "+set+", updated_at = ? WHERE user_id = ? AND id = ?",
		value, r.now().UTC().Format(timeLayout), userID, id)
	if err != nil {
		return nil, fmt.Errorf("update grid: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return r.GetGrid(ctx, userID, id)
}

func (r *Repository) DeleteGrid(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grids WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete grid: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGrid(s scanner) (*models.SavedGrid, error) {
	var g models.SavedGrid
	var cfg string
	if err := s.Scan(&g.ID, &g.UserID, &g.Name, &cfg, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(cfg), &g.Config); err != nil {
		return nil, fmt.Errorf("decode config of %s: %w", g.ID, err)
	}
	return &g, nil
}

// ============================================================
// Migrations & Seeding
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		data, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

func (r *Repository) ensureAdmin(ctx context.Context) error {
	_, err := r.GetByID(ctx, AdminID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := r.CreateUser(ctx, AdminID, "admin", "admin"); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
