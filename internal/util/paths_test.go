package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalizeResolvesSymlinks(t *testing.T) {
	base := t.TempDir()
	real := filepath.Join(base, "real")
	link := filepath.Join(base, "link")
	if err := os.Mkdir(real, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	fromReal, err := Canonicalize(real)
	if err != nil {
		t.Fatalf("canonicalize failed: %v", err)
	}
	fromLink, err := Canonicalize(link)
	if err != nil {
		t.Fatalf("canonicalize failed: %v", err)
	}

	if fromReal != fromLink {
		t.Errorf("expected identical canonical paths, got %s and %s", fromReal, fromLink)
	}
	if !filepath.IsAbs(fromLink) {
		t.Errorf("expected absolute path, got %s", fromLink)
	}
}

func TestCanonicalizeMissingPath(t *testing.T) {
	if _, err := Canonicalize(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestBareName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/music/b.mp3", "b"},
		{"b.mp3", "b"},
		{"/music/some song.flac", "some song"},
		{"/music/noext", "noext"},
		{"/music/dotted.name.mp3", "dotted.name"},
	}

	for _, tt := range tests {
		if got := BareName(tt.path); got != tt.expected {
			t.Errorf("BareName(%s) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
