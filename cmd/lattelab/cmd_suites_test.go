package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/lattelab/internal/catalog"
)

const validCatalogYAML = `suites:
  - id: smoke
    label: Smoke Suite
    benchmarks:
      - id: smoke-check
        name: Smoke Check
        iterations: 2
        baseSuccess: 0.9
        latencySeconds: 0.4
        costUsd: 0.0001
`

func TestSuitesList(t *testing.T) {
	out, err := runCLI(t, "", "suites", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "output")
	assert.Contains(t, out, "Calculator Demo Suite")
	assert.Contains(t, out, "custom")
	assert.Contains(t, out, "crisis")
	assert.Contains(t, out, catalog.SuiteAll)
}

func TestSuitesShow(t *testing.T) {
	out, err := runCLI(t, "", "suites", "show", "output")
	require.NoError(t, err)

	assert.Contains(t, out, "Calculator Demo Suite")
	assert.Contains(t, out, "Addition String Check")
	assert.Contains(t, out, "BASE RATE")
}

func TestSuitesShow_Unknown(t *testing.T) {
	_, err := runCLI(t, "", "suites", "show", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestSuitesValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoke.suites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalogYAML), 0o644))

	out, err := runCLI(t, "", "suites", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestSuitesValidate_Invalid(t *testing.T) {
	// Missing the required label field.
	bad := `suites:
  - id: smoke
    benchmarks:
      - id: smoke-check
        name: Smoke Check
        iterations: 2
        baseSuccess: 0.9
        latencySeconds: 0.4
        costUsd: 0.0001
`
	path := filepath.Join(t.TempDir(), "bad.suites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	out, err := runCLI(t, "", "suites", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
	assert.Contains(t, out, "label")
}

func TestSuitesInit_NonInteractive(t *testing.T) {
	// A non-file stdin means no TTY, so init falls back to defaults.
	out, err := runCLI(t, "", "suites", "init", "nightly-regression")
	require.NoError(t, err)
	assert.Contains(t, out, "Created nightly-regression.suites.yaml")
	assert.Contains(t, out, "LATTE_LAB_SUITES=")

	data, err := os.ReadFile("nightly-regression.suites.yaml")
	require.NoError(t, err)

	cat, err := catalog.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"nightly-regression"}, cat.SuiteIDs())
	assert.Equal(t, "Nightly Regression Suite", cat.Label("nightly-regression"))
}

func TestSuitesInit_RejectsBadID(t *testing.T) {
	_, err := runCLI(t, "", "suites", "init", "Bad_ID")
	require.Error(t, err)
}

func TestSuitesInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.suites.yaml")
	require.NoError(t, os.WriteFile(path, []byte("placeholder"), 0o644))

	_, err := runCLI(t, "", "suites", "init", "existing", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSuitesList_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoke.suites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalogYAML), 0o644))
	t.Setenv("LATTE_LAB_SUITES", path)

	out, err := runCLI(t, "", "suites", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "smoke")
	assert.Contains(t, out, "Smoke Suite")
	assert.NotContains(t, out, "Calculator Demo Suite")
}
