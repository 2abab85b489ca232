// Package catalog is the registry of benchmark suites: the built-in suite
// templates the dashboard ships with, their display labels, and optional
// operator-provided catalogs loaded from YAML files.
package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spboyer/lattelab/internal/models"
)

// SuiteAll is the synthetic suite id that resolves to every known suite's
// templates, concatenated in catalog order.
const SuiteAll = "all"

var titleCaser = cases.Title(language.English)

// Catalog maps suite ids to their ordered benchmark templates and labels.
// A Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	order  []string
	suites map[string][]models.BenchmarkTemplate
	labels map[string]string
}

// New builds a catalog from ordered suite definitions. Templates keep the
// order they are given in; suite ids keep the order of first appearance.
func New(suites []Suite) *Catalog {
	c := &Catalog{
		suites: make(map[string][]models.BenchmarkTemplate, len(suites)),
		labels: make(map[string]string, len(suites)+1),
	}
	for _, s := range suites {
		if _, exists := c.suites[s.ID]; !exists {
			c.order = append(c.order, s.ID)
		}
		templates := make([]models.BenchmarkTemplate, len(s.Benchmarks))
		copy(templates, s.Benchmarks)
		for i := range templates {
			templates[i].Suite = s.ID
			if templates[i].FailureCategory == "" {
				templates[i].FailureCategory = defaultFailureCategory
			}
		}
		c.suites[s.ID] = append(c.suites[s.ID], templates...)
		c.labels[s.ID] = s.Label
	}
	c.labels[SuiteAll] = allLabel
	return c
}

// Suite is one named group of benchmark templates.
type Suite struct {
	ID         string                     `yaml:"id"`
	Label      string                     `yaml:"label"`
	Benchmarks []models.BenchmarkTemplate `yaml:"benchmarks"`
}

// Resolve returns the templates for a suite id. SuiteAll concatenates every
// suite in catalog order. Unknown ids resolve to an empty slice, never an
// error: simulating an unknown suite yields an empty, valid payload.
func (c *Catalog) Resolve(suite string) []models.BenchmarkTemplate {
	if suite == SuiteAll {
		var all []models.BenchmarkTemplate
		for _, id := range c.order {
			all = append(all, c.suites[id]...)
		}
		return all
	}
	templates := c.suites[suite]
	out := make([]models.BenchmarkTemplate, len(templates))
	copy(out, templates)
	return out
}

// Label returns the display label for a suite id. Unknown ids fall back to
// a title-cased form so run records always carry something presentable.
func (c *Catalog) Label(suite string) string {
	if label, ok := c.labels[suite]; ok {
		return label
	}
	return titleCaser.String(suite) + " Suite"
}

// SuiteIDs returns the known suite ids in catalog order, excluding SuiteAll.
func (c *Catalog) SuiteIDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Labels returns a copy of the id→label map, including SuiteAll.
func (c *Catalog) Labels() map[string]string {
	labels := make(map[string]string, len(c.labels))
	for id, label := range c.labels {
		labels[id] = label
	}
	return labels
}

// Has reports whether the suite id is known to the catalog. SuiteAll counts.
func (c *Catalog) Has(suite string) bool {
	if suite == SuiteAll {
		return true
	}
	_, ok := c.suites[suite]
	return ok
}
