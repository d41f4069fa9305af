package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/cursorcage/internal/vkey"
)

// TestLoadRecenterKey_CreatesMissingFile verifies a missing key file is
// created with the default content.
func TestLoadRecenterKey_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")

	key, name := LoadRecenterKey(path)
	if key != vkey.KeyE || name != "E" {
		t.Fatalf("expected default E, got (%#x, %q)", key, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("key file should have been created: %v", err)
	}
	if string(data) != "E" {
		t.Fatalf("expected file content E, got %q", data)
	}
}

// TestLoadRecenterKey_ResolvesNamedKey verifies a named key parses,
// case-insensitively.
func TestLoadRecenterKey_ResolvesNamedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("tab\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	key, name := LoadRecenterKey(path)
	if key != 0x09 || name != "TAB" {
		t.Fatalf("expected (0x09, TAB), got (%#x, %q)", key, name)
	}
}

// TestLoadRecenterKey_SingleCharacter verifies a bare letter resolves.
func TestLoadRecenterKey_SingleCharacter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("  r  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	key, name := LoadRecenterKey(path)
	if key != 'R' || name != "R" {
		t.Fatalf("expected (R, R), got (%#x, %q)", key, name)
	}
}

// TestLoadRecenterKey_EmptyAndInvalidFallBack verifies the degradation paths.
func TestLoadRecenterKey_EmptyAndInvalidFallBack(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("   \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if key, name := LoadRecenterKey(empty); key != vkey.KeyE || name != "E" {
		t.Fatalf("empty file should default to E, got (%#x, %q)", key, name)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("NOTAKEY\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if key, name := LoadRecenterKey(bad); key != vkey.KeyE || name != "E" {
		t.Fatalf("unparseable file should default to E, got (%#x, %q)", key, name)
	}
}

// TestLoadRecenterKey_UsesFirstLineOnly verifies trailing lines are ignored.
func TestLoadRecenterKey_UsesFirstLineOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("F5\ngarbage\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	key, name := LoadRecenterKey(path)
	if key != 0x74 || name != "F5" {
		t.Fatalf("expected (F5, F5), got (%#x, %q)", key, name)
	}
}
