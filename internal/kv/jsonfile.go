package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSONFile stores each key as one file under a base directory, so the
// persisted entry stays inspectable with a text editor.
type JSONFile struct {
	dir string
}

func NewJSONFile(dir string) (*JSONFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONFile{dir: dir}, nil
}

func (f *JSONFile) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read entry %q: %w", key, err)
	}
	return string(data), true, nil
}

func (f *JSONFile) Set(_ context.Context, key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("write entry %q: %w", key, err)
	}
	return nil
}

func (f *JSONFile) Close() error {
	return nil
}

func (f *JSONFile) path(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

// sanitizeKey maps a storage key to a safe file name.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, key)
}
