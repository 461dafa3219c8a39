package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected absent entry, ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "k"); !ok || v != "v1" {
		t.Fatalf("unexpected get: %q ok=%v", v, ok)
	}

	// Overwrite
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _, _ := s.Get(ctx, "k"); v != "v2" {
		t.Fatalf("expected overwrite, got %q", v)
	}
}

func TestJSONFileGetSet(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONFile(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "siga-transactions"); ok || err != nil {
		t.Fatalf("expected absent entry, ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "siga-transactions", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "siga-transactions"); !ok || v != `[]` {
		t.Fatalf("unexpected get: %q ok=%v", v, ok)
	}

	// Entry lands in a predictable file
	if _, err := os.Stat(filepath.Join(dir, "siga-transactions.json")); err != nil {
		t.Fatalf("expected entry file: %v", err)
	}
}

func TestJSONFileSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONFile(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, "../escape/attempt", "x"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "../escape/attempt"); !ok || v != "x" {
		t.Fatalf("unexpected get: %q ok=%v", v, ok)
	}
	// Nothing outside the base directory
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape")); !os.IsNotExist(err) {
		t.Fatalf("key escaped the data directory")
	}
}

func TestSQLiteGetSet(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "siga.db")
	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected absent entry, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "k"); !ok || v != "v2" {
		t.Fatalf("unexpected get: %q ok=%v", v, ok)
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "siga.db")
	ctx := context.Background()

	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Set(ctx, "k", "persisted"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	if v, ok, _ := s2.Get(ctx, "k"); !ok || v != "persisted" {
		t.Fatalf("unexpected get after reopen: %q ok=%v", v, ok)
	}
}
