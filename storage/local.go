package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const projectImagePrefix = "projects"

// LocalStore writes images under <root>/projects and serves them from
// /uploads/projects via the API's static mount.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, projectImagePrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Root returns the directory the store writes under.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Save(_ context.Context, filename, _ string, body io.Reader) (string, error) {
	name := ObjectName(filename)
	path := filepath.Join(s.root, projectImagePrefix, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}
	return fmt.Sprintf("/uploads/%s/%s", projectImagePrefix, name), nil
}
