// Package config loads runtime settings from the environment, with an
// optional .env file applied first. Every setting has a default that works
// for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAddr       = "LATTE_LAB_ADDR"
	EnvDBPath     = "LATTE_LAB_DB"
	EnvDBInMemory = "LATTE_LAB_DB_IN_MEMORY"
	EnvCORS       = "LATTE_LAB_CORS"
	EnvSeed       = "LATTE_LAB_SEED"
	EnvSuitesFile = "LATTE_LAB_SUITES"
	EnvMockMode   = "MOCK_MODE"
)

const (
	defaultAddr   = ":8000"
	defaultDBPath = "lattelab.db"
	defaultCORS   = "http://localhost:5173,http://localhost:3000"
)

// Settings holds the resolved runtime configuration.
type Settings struct {
	// Addr is the listen address for the API server.
	Addr string

	// DBPath is the directory for the embedded snapshot/run database.
	DBPath string

	// DBInMemory disables disk persistence, mainly for tests and demos.
	DBInMemory bool

	// CORSOrigins are the origins allowed to call the API from a browser.
	CORSOrigins []string

	// Seed makes simulation noise reproducible. Negative means draw a
	// fresh non-deterministic seed.
	Seed int64

	// SuitesFile optionally points at a YAML catalog that replaces the
	// built-in suites.
	SuitesFile string

	// MockMode gates simulation: when false, run requests are refused
	// because real benchmark execution is not part of this system.
	MockMode bool
}

// Option overrides a loaded setting.
type Option func(*Settings)

// WithAddr overrides the listen address.
func WithAddr(addr string) Option {
	return func(s *Settings) {
		if addr != "" {
			s.Addr = addr
		}
	}
}

// WithDBPath overrides the database directory.
func WithDBPath(path string) Option {
	return func(s *Settings) {
		if path != "" {
			s.DBPath = path
		}
	}
}

// WithSeed overrides the simulation seed.
func WithSeed(seed int64) Option {
	return func(s *Settings) { s.Seed = seed }
}

// Load resolves settings from the environment. A .env file in the working
// directory is applied first when present; real environment variables win
// over .env entries.
func Load(opts ...Option) (*Settings, error) {
	// godotenv.Load never overwrites variables that are already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	s := &Settings{
		Addr:        getEnv(EnvAddr, defaultAddr),
		DBPath:      getEnv(EnvDBPath, defaultDBPath),
		CORSOrigins: splitOrigins(getEnv(EnvCORS, defaultCORS)),
		Seed:        -1,
		SuitesFile:  os.Getenv(EnvSuitesFile),
		MockMode:    true,
	}

	var err error
	if s.DBInMemory, err = getBool(EnvDBInMemory, false); err != nil {
		return nil, err
	}
	if s.MockMode, err = getBool(EnvMockMode, true); err != nil {
		return nil, err
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s=%q: %w", EnvSeed, raw, err)
		}
		s.Seed = seed
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parsing %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
