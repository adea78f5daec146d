package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicUploadPath is the URL prefix the upload directory is served under.
const PublicUploadPath = "/uploads"

// UploadStore persists uploaded images on the local filesystem and hands
// back the public path they are served at.
type UploadStore struct {
	Dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadStore{Dir: dir}, nil
}

// Save writes the whole image buffer under a name combining the property's
// business key, a random suffix and the sanitized original filename. The
// random suffix keeps two uploads for the same property and filename from
// clobbering each other.
func (u *UploadStore) Save(propertyID, originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s_%s", propertyID, uuid.NewString(), sanitizeFilename(originalName))

	dst, err := os.Create(filepath.Join(u.Dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return PublicUploadPath + "/" + name, nil
}

// sanitizeFilename strips directory components and anything outside a safe
// character set from a caller-supplied filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "image"
	}
	return cleaned
}
