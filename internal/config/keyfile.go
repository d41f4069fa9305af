// Package config loads environment configuration for CursorCage.
package config

import (
	"bufio"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/frudas24/cursorcage/internal/vkey"
)

// defaultRecenterKeyName is used whenever the key file is missing,
// empty, or unparseable.
const defaultRecenterKeyName = "E"

// LoadRecenterKey reads the single-line key file naming the recenter key.
// A missing file is created with the default content; bad content falls
// back to the default key with a logged warning. Returns the resolved
// code and its canonical name.
func LoadRecenterKey(path string) (vkey.Key, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("config: %s not found, creating with default key %s", path, defaultRecenterKeyName)
			if werr := os.WriteFile(path, []byte(defaultRecenterKeyName), 0o644); werr != nil {
				log.Printf("config: could not create %s: %v", path, werr)
			}
		} else {
			log.Printf("config: could not read %s: %v, using default key %s", path, err, defaultRecenterKeyName)
		}
		return vkey.KeyE, defaultRecenterKeyName
	}

	line := firstLine(string(data))
	if line == "" {
		log.Printf("config: %s is empty, using default key %s", path, defaultRecenterKeyName)
		return vkey.KeyE, defaultRecenterKeyName
	}

	key, ok := vkey.Resolve(line)
	if !ok {
		log.Printf("config: unrecognized key name %q in %s, using default key %s", line, path, defaultRecenterKeyName)
		return vkey.KeyE, defaultRecenterKeyName
	}
	return key, vkey.Name(key)
}

// firstLine returns the first line of s with surrounding whitespace removed.
func firstLine(s string) string {
	scanner := bufio.NewScanner(strings.NewReader(s))
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
