// Package config loads environment configuration for CursorCage.
package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultTargetExe       = "Minecraft.Windows.exe"
	defaultTargetTitle     = "Minecraft"
	defaultPolicy          = "focus"
	defaultPollMs          = 10
	defaultKeyFile         = "config.txt"
	defaultToggleHotkey    = "ctrl+shift+c"
	defaultEdgeTolerancePx = 8
	defaultMinCoverage     = 0.90
	defaultSampleGrid      = 4
	defaultSampleMargin    = 0.12
	defaultSampleThreshold = 0.75
	defaultDataDir         = "./data"
)

// Config holds runtime configuration values.
type Config struct {
	TargetExe       string
	TargetTitle     string
	Policy          string
	PollMs          int
	KeyFile         string
	ToggleHotkey    string
	EdgeTolerancePx int
	MinCoverage     float64
	SampleGrid      int
	SampleMargin    float64
	SampleThreshold float64
	StatusAddr      string
	DataDir         string
}

// fileConfig mirrors Config for the optional yaml tunables file. Pointer
// fields distinguish absent keys from zero values.
type fileConfig struct {
	TargetExe       *string  `yaml:"target_exe"`
	TargetTitle     *string  `yaml:"target_title"`
	Policy          *string  `yaml:"policy"`
	PollMs          *int     `yaml:"poll_ms"`
	KeyFile         *string  `yaml:"key_file"`
	ToggleHotkey    *string  `yaml:"toggle_hotkey"`
	EdgeTolerancePx *int     `yaml:"edge_tolerance_px"`
	MinCoverage     *float64 `yaml:"min_coverage"`
	SampleGrid      *int     `yaml:"sample_grid"`
	SampleMargin    *float64 `yaml:"sample_margin"`
	SampleThreshold *float64 `yaml:"sample_threshold"`
	StatusAddr      *string  `yaml:"status_addr"`
}

// Load reads configuration in ascending precedence: built-in defaults,
// data/cursorcage.yml, data/.env, process environment. Invalid values
// fall back to their defaults with a logged warning; loading never fails
// on bad content.
func Load() (Config, error) {
	cfg := Config{
		TargetExe:       defaultTargetExe,
		TargetTitle:     defaultTargetTitle,
		Policy:          defaultPolicy,
		PollMs:          defaultPollMs,
		KeyFile:         defaultKeyFile,
		ToggleHotkey:    defaultToggleHotkey,
		EdgeTolerancePx: defaultEdgeTolerancePx,
		MinCoverage:     defaultMinCoverage,
		SampleGrid:      defaultSampleGrid,
		SampleMargin:    defaultSampleMargin,
		SampleThreshold: defaultSampleThreshold,
		DataDir:         defaultDataDir,
	}
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)

	if err := cfg.applyFile(filepath.Join(cfg.DataDir, "cursorcage.yml")); err != nil {
		return Config{}, err
	}
	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.TargetExe = envString("TARGET_EXE", cfg.TargetExe)
	cfg.TargetTitle = envString("TARGET_TITLE", cfg.TargetTitle)
	cfg.Policy = envString("POLICY", cfg.Policy)
	cfg.PollMs = envInt("POLL_MS", cfg.PollMs)
	cfg.KeyFile = envString("KEY_FILE", cfg.KeyFile)
	cfg.ToggleHotkey = envString("TOGGLE_HOTKEY", cfg.ToggleHotkey)
	cfg.EdgeTolerancePx = envInt("EDGE_TOLERANCE_PX", cfg.EdgeTolerancePx)
	cfg.MinCoverage = envFloat("MIN_COVERAGE", cfg.MinCoverage)
	cfg.SampleGrid = envInt("SAMPLE_GRID", cfg.SampleGrid)
	cfg.SampleMargin = envFloat("SAMPLE_MARGIN", cfg.SampleMargin)
	cfg.SampleThreshold = envFloat("SAMPLE_THRESHOLD", cfg.SampleThreshold)
	cfg.StatusAddr = envString("STATUS_ADDR", cfg.StatusAddr)

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range tunables back to their defaults.
func (c *Config) normalize() {
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	if c.Policy != "focus" && c.Policy != "fullscreen" {
		log.Printf("config: unknown policy %q, using %s", c.Policy, defaultPolicy)
		c.Policy = defaultPolicy
	}
	if c.PollMs <= 0 {
		log.Printf("config: POLL_MS must be > 0, using %d", defaultPollMs)
		c.PollMs = defaultPollMs
	}
	if c.EdgeTolerancePx < 0 {
		log.Printf("config: EDGE_TOLERANCE_PX must be >= 0, using %d", defaultEdgeTolerancePx)
		c.EdgeTolerancePx = defaultEdgeTolerancePx
	}
	if c.MinCoverage <= 0 || c.MinCoverage > 1 {
		log.Printf("config: MIN_COVERAGE must be in (0,1], using %v", defaultMinCoverage)
		c.MinCoverage = defaultMinCoverage
	}
	if c.SampleGrid <= 0 {
		log.Printf("config: SAMPLE_GRID must be > 0, using %d", defaultSampleGrid)
		c.SampleGrid = defaultSampleGrid
	}
	if c.SampleMargin < 0 || c.SampleMargin >= 0.5 {
		log.Printf("config: SAMPLE_MARGIN must be in [0,0.5), using %v", defaultSampleMargin)
		c.SampleMargin = defaultSampleMargin
	}
	if c.SampleThreshold <= 0 || c.SampleThreshold > 1 {
		log.Printf("config: SAMPLE_THRESHOLD must be in (0,1], using %v", defaultSampleThreshold)
		c.SampleThreshold = defaultSampleThreshold
	}
}

// applyFile overlays values from the optional yaml tunables file.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("config: %s is not valid yaml, ignoring: %v", path, err)
		return nil
	}

	if fc.TargetExe != nil {
		c.TargetExe = *fc.TargetExe
	}
	if fc.TargetTitle != nil {
		c.TargetTitle = *fc.TargetTitle
	}
	if fc.Policy != nil {
		c.Policy = *fc.Policy
	}
	if fc.PollMs != nil {
		c.PollMs = *fc.PollMs
	}
	if fc.KeyFile != nil {
		c.KeyFile = *fc.KeyFile
	}
	if fc.ToggleHotkey != nil {
		c.ToggleHotkey = *fc.ToggleHotkey
	}
	if fc.EdgeTolerancePx != nil {
		c.EdgeTolerancePx = *fc.EdgeTolerancePx
	}
	if fc.MinCoverage != nil {
		c.MinCoverage = *fc.MinCoverage
	}
	if fc.SampleGrid != nil {
		c.SampleGrid = *fc.SampleGrid
	}
	if fc.SampleMargin != nil {
		c.SampleMargin = *fc.SampleMargin
	}
	if fc.SampleThreshold != nil {
		c.SampleThreshold = *fc.SampleThreshold
	}
	if fc.StatusAddr != nil {
		c.StatusAddr = *fc.StatusAddr
	}
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present and valid, otherwise a
// default with a logged warning.
func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s must be an integer, using %d", key, def)
		return def
	}
	return value
}

// envFloat returns a float env override when present and valid, otherwise
// a default with a logged warning.
func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s must be a number, using %v", key, def)
		return def
	}
	return value
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
