package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadText_NormalizesLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\rc\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := loadText(path)
	if err != nil {
		t.Fatalf("loadText: %v", err)
	}
	if want := "a\nb\nc\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestLoadText_MissingFile(t *testing.T) {
	if _, err := loadText(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRun_RequiresFile(t *testing.T) {
	if err := run(nil); err == nil {
		t.Fatalf("expected usage error without a file")
	}
}

func TestRun_Version(t *testing.T) {
	if err := run([]string{"-version"}); err != nil {
		t.Fatalf("run -version: %v", err)
	}
}
