// Package config defines the canonical, JSON-serializable configuration
// model for the catalog explorer. It is intentionally small and explicit so
// a deployment can be described in one file (or entirely by environment
// variables) and passed through the program without glue code.
//
// Design goals:
//
//  1. Stability: changes should be additive and backwards-compatible.
//  2. Clarity: Go field names mirror the JSON structure.
//  3. Minimalism: decoding is performed by the standard library; environment
//     overrides are a flat HEALF_* namespace applied after decoding.
//
// Example (trimmed):
//
//	{
//	  "server":  { "addr": ":8080" },
//	  "dataset": { "path": "exports/products.csv", "max_file_size": 52428800 },
//	  "query":   { "page_size": 50, "fuzzy": true }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the top-level object decoded from a config file.
type Config struct {
	// Server configures the HTTP listener.
	Server Server `json:"server"`

	// Dataset configures the initial dataset and load limits.
	Dataset Dataset `json:"dataset"`

	// Validation configures the strict validation pass defaults.
	Validation Validation `json:"validation"`

	// Query configures the query engine defaults served over the API.
	Query Query `json:"query"`

	// Metrics toggles the Prometheus scrape endpoint.
	Metrics Metrics `json:"metrics"`
}

// Server holds HTTP listener settings.
type Server struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `json:"addr"`
}

// Dataset selects where the initial catalog comes from and how much of it
// may be read. Path and URL are mutually exclusive; both empty means the
// server starts without a dataset and waits for an upload.
type Dataset struct {
	// Path is a local CSV export loaded at startup.
	Path string `json:"path"`

	// URL is a remote CSV export fetched at startup.
	URL string `json:"url"`

	// MaxFileSize caps load size in bytes. Zero means the 50MB default.
	MaxFileSize int64 `json:"max_file_size"`

	// MaxRows caps the non-empty line count accepted by validation,
	// header included. Zero means the 100k default.
	MaxRows int `json:"max_rows"`

	// Delimiter forces the CSV field separator; empty auto-detects.
	Delimiter string `json:"delimiter"`
}

// Validation holds the strict-pass defaults.
type Validation struct {
	// RequiredFields lists headers that must exist. Empty means the
	// ID/TITLE/VENDOR default.
	RequiredFields []string `json:"required_fields"`

	// RejectMissingFields marks rows with empty required values invalid
	// instead of letting them pass.
	RejectMissingFields bool `json:"reject_missing_fields"`

	// SkipTypeChecks disables the JSON/number hard errors on sub-fields.
	SkipTypeChecks bool `json:"skip_type_checks"`
}

// Query holds query-engine defaults.
type Query struct {
	// PageSize is the default API page size. Zero means 50.
	PageSize int `json:"page_size"`

	// ChunkSize and MaxVisibleRows tune the incremental table view. Zero
	// means 500 and 1000.
	ChunkSize      int `json:"chunk_size"`
	MaxVisibleRows int `json:"max_visible_rows"`

	// Fuzzy enables approximate matching for text search by default.
	Fuzzy bool `json:"fuzzy"`

	// FuzzyThreshold overrides the default 0.3 cutoff when > 0.
	FuzzyThreshold float64 `json:"fuzzy_threshold"`
}

// Metrics toggles metric exposition.
type Metrics struct {
	Enabled bool `json:"enabled"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Query:  Query{PageSize: 50, ChunkSize: 500, MaxVisibleRows: 1000},
		Metrics: Metrics{
			Enabled: true,
		},
	}
}

// Load reads a JSON config file over the defaults, then applies environment
// overrides. An empty path skips the file and uses defaults plus
// environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	applyEnv(&cfg, os.Getenv)
	return cfg, nil
}

// applyEnv overlays HEALF_* environment variables onto cfg. The getenv
// function is injected for tests.
func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("HEALF_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv("HEALF_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := getenv("HEALF_DATASET_URL"); v != "" {
		cfg.Dataset.URL = v
	}
	if v := getenv("HEALF_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Dataset.MaxFileSize = n
		}
	}
	if v := getenv("HEALF_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dataset.MaxRows = n
		}
	}
	if v := getenv("HEALF_DELIMITER"); v != "" {
		cfg.Dataset.Delimiter = v
	}
	if v := getenv("HEALF_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Query.PageSize = n
		}
	}
	if v := getenv("HEALF_FUZZY"); v != "" {
		cfg.Query.Fuzzy = isTruthy(v)
	}
	if v := getenv("HEALF_METRICS"); v != "" {
		cfg.Metrics.Enabled = isTruthy(v)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
