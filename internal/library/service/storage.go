package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ============================================================
// File Storage
// ============================================================

// FileStorage кэширует превью сохранённых сеток на диске:
// {root}/{userID}/thumbnails/{gridID}.png.
type FileStorage struct {
	root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{root: root}
}

func (s *FileStorage) UserDir(userID string) string {
	return filepath.Join(s.root, userID)
}

func (s *FileStorage) ThumbnailsDir(userID string) string {
	return filepath.Join(s.UserDir(userID), "thumbnails")
}

func (s *FileStorage) ThumbnailPath(userID, gridID string) string {
	return filepath.Join(s.ThumbnailsDir(userID), filepath.Base(gridID)+".png")
}

func (s *FileStorage) EnsureThumbnailsDir(userID string) error {
	path := s.ThumbnailsDir(userID)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir thumbnails dir: %w", err)
	}
	return nil
}

// ReadThumbnail возвращает os.ErrNotExist, если превью ещё не строилось.
func (s *FileStorage) ReadThumbnail(userID, gridID string) ([]byte, error) {
	return os.ReadFile(s.ThumbnailPath(userID, gridID))
}

func (s *FileStorage) SaveThumbnail(userID, gridID string, data []byte) error {
	if err := s.EnsureThumbnailsDir(userID); err != nil {
		return err
	}
	return os.WriteFile(s.ThumbnailPath(userID, gridID), data, 0o644)
}

// RemoveThumbnail сбрасывает кэш после изменения сетки.
func (s *FileStorage) RemoveThumbnail(userID, gridID string) error {
	err := os.Remove(s.ThumbnailPath(userID, gridID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove thumbnail: %w", err)
	}
	return nil
}

// Writable проверяет, что корень хранилища доступен на запись.
func (s *FileStorage) Writable() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("storage root: %w", err)
	}
	f, err := os.CreateTemp(s.root, ".probe-*")
	if err != nil {
		return fmt.Errorf("storage root: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
