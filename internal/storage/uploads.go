// Package storage persists uploaded files on local disk and hands out the
// public "uploads/<name>" URLs stored on domain models.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads is the store used by the handlers; main assigns it after loading
// the config.
var Uploads *Store

const PublicPrefix = "uploads"

type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir is the directory served statically under /uploads.
func (s *Store) BaseDir() string { return s.baseDir }

// Save writes one multipart file under a unique name and returns its public
// URL.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uniqueName(fh.Filename)
	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// SaveAll saves every file or none: on any failure the files already written
// are removed before the error is returned.
func (s *Store) SaveAll(fhs []*multipart.FileHeader) ([]string, error) {
	saved := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		p, err := s.Save(fh)
		if err != nil {
			s.RemoveAll(saved)
			return nil, err
		}
		saved = append(saved, p)
	}
	return saved, nil
}

// Remove deletes the file behind a public URL. Unknown or already-deleted
// paths are not an error.
func (s *Store) Remove(publicPath string) error {
	p, err := s.safeJoin(publicPath)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *Store) RemoveAll(publicPaths []string) {
	for _, p := range publicPaths {
		_ = s.Remove(p)
	}
}

// safeJoin resolves a public URL inside baseDir and rejects traversal.
func (s *Store) safeJoin(publicPath string) (string, error) {
	name := strings.TrimPrefix(publicPath, PublicPrefix+"/")

	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}

func uniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}
