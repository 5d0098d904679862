package localdb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileKV stores each key as a JSON file under a base directory.
type FileKV struct {
	basePath string
	mu       sync.Mutex
}

func NewFileKV(basePath string) (*FileKV, error) {
	// Resolve relative paths such as "./data" up front so key
	// containment checks compare against a stable absolute base.
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileKV{basePath: abs}, nil
}

func (s *FileKV) Get(ctx context.Context, key string, out any) (bool, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *FileKV) Set(ctx context.Context, key string, value any) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename so readers never see a torn file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (s *FileKV) keyPath(key string) (string, error) {
	cleanKey := filepath.Clean(key)
	fullPath := filepath.Join(s.basePath, cleanKey+".json")

	// Keys must resolve inside the base directory.
	if !strings.HasPrefix(fullPath, s.basePath) || strings.ContainsAny(key, "/\\") {
		return "", fmt.Errorf("invalid store key: %s", key)
	}
	return fullPath, nil
}
