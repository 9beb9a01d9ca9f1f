package models

import (
	gridmodels "grid-studio/internal/grid/models"
)

// ============================================================
// Library Models
// ============================================================

type User struct {
	ID           string `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"`
}

// SavedGrid: сохранённая конфигурация генератора.
type SavedGrid struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Name      string                `json:"name"`
	Config    gridmodels.GridConfig `json:"config"`
	CreatedAt string                `json:"created_at"`
	UpdatedAt string                `json:"updated_at"`
}
