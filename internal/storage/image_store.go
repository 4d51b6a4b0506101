package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Errors returned by the image store
var (
	ErrUnsupportedExtension = errors.New("unsupported image extension")
)

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// ImageStore saves uploaded livestock images under a base directory and
// hands back the relative path stored on the listing row.
type ImageStore struct {
	baseDir string
	logger  *slog.Logger
}

// NewImageStore creates the upload directory if needed
func NewImageStore(baseDir string, logger *slog.Logger) (*ImageStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &ImageStore{baseDir: baseDir, logger: logger}, nil
}

// Save writes the uploaded file to disk under a random filename.
// The original extension is kept; anything outside the whitelist is rejected.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedExtension
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(s.baseDir, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		// Half-written file is useless, clean it up
		os.Remove(dst)
		return "", err
	}

	s.logger.Info("📷 [ImageStore] Image saved", "file", filename, "size", file.Size)
	return filename, nil
}

// Path resolves a stored relative filename to its on-disk location
func (s *ImageStore) Path(filename string) string {
	return filepath.Join(s.baseDir, filename)
}
