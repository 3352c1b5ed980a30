package objectstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalDir keeps objects as files in one directory, served elsewhere under publicBaseURL.
type LocalDir struct {
	dir           string
	publicBaseURL string
}

func NewLocalDir(dir, publicBaseURL string) (*LocalDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &LocalDir{dir: dir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (d *LocalDir) Dir() string {
	return d.dir
}

// Put writes data to a temporary file and renames it over key, so readers
// never see a partial object.
func (d *LocalDir) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(d.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close object: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod object: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(d.dir, key)); err != nil {
		return "", fmt.Errorf("store object: %w", err)
	}

	return d.publicBaseURL + "/" + key, nil
}
