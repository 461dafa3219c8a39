package backend

import (
	"path/filepath"
	"testing"

	"siga/internal/config"
)

func TestCreatePerBackendType(t *testing.T) {
	dir := t.TempDir()
	f := NewFactory(nil)

	cases := []config.Config{
		{DataBackend: "memory"},
		{DataBackend: "jsonfile", DataDirectory: filepath.Join(dir, "data")},
		{DataBackend: "sqlite", SQLiteDBPath: filepath.Join(dir, "siga.db")},
	}
	for _, cfg := range cases {
		res, err := f.Create(&cfg)
		if err != nil {
			t.Fatalf("%s: %v", cfg.DataBackend, err)
		}
		if res.Store == nil {
			t.Fatalf("%s: nil store", cfg.DataBackend)
		}
		if res.Cleanup != nil {
			if err := res.Cleanup(); err != nil {
				t.Fatalf("%s cleanup: %v", cfg.DataBackend, err)
			}
		}
	}
}

func TestCreateRejectsUnknownBackend(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.Create(&config.Config{DataBackend: "sheets"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
