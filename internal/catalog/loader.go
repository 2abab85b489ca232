package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// suiteFile is the on-disk shape of an operator-provided catalog.
type suiteFile struct {
	Suites []Suite `yaml:"suites"`
}

// Load reads a suite catalog YAML file, validates it against the embedded
// schema, and builds a Catalog from it. The loaded catalog fully replaces
// the built-in one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates and decodes raw catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	if errs := ValidateSuiteBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid suite catalog: %s", strings.Join(errs, "; "))
	}

	var file suiteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing suite catalog: %w", err)
	}
	return New(file.Suites), nil
}
