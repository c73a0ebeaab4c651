package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedType is returned when an uploaded file is not one of the
// accepted image formats.
var ErrUnsupportedType = errors.New("only jpeg, jpg, png and gif images are accepted")

// PublicPrefix is the URL prefix avatars are served under.
const PublicPrefix = "/uploads/avatars"

var allowedExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Store saves avatar images into a directory on disk.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SaveAvatar validates the upload (declared MIME and file extension both
// have to match an accepted image type), writes it under a
// collision-resistant name and returns the public path it will be served
// at.
func (s *Store) SaveAvatar(userID string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	mime := file.Header.Get("Content-Type")
	if !allowedExts[ext] || !allowedMIMEs[mime] {
		return "", ErrUnsupportedType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create avatar dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d%s", userID, time.Now().UnixMilli(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	return PublicPrefix + "/" + name, nil
}
