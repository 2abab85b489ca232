package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SuiteOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"output", "custom", "crisis"}, c.SuiteIDs())
}

func TestResolve_KnownSuite(t *testing.T) {
	c := Default()

	templates := c.Resolve("output")
	require.Len(t, templates, 3)
	assert.Equal(t, "calc-string-check", templates[0].ID)
	assert.Equal(t, "Addition String Check", templates[0].Name)
	assert.Equal(t, "output", templates[0].Suite)
	assert.Equal(t, 5, templates[0].Iterations)
	assert.InDelta(t, 0.93, templates[0].BaseSuccess, 1e-9)
}

func TestResolve_AllConcatenatesInOrder(t *testing.T) {
	c := Default()

	all := c.Resolve(SuiteAll)
	require.Len(t, all, 9)
	assert.Equal(t, "calc-string-check", all[0].ID)
	assert.Equal(t, "custom-weather", all[3].ID)
	assert.Equal(t, "crisis-inventory", all[6].ID)

	var want int
	for _, id := range c.SuiteIDs() {
		want += len(c.Resolve(id))
	}
	assert.Equal(t, want, len(all))
}

func TestResolve_UnknownSuiteIsEmpty(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Resolve("bogus"))
}

func TestResolve_ReturnsCopies(t *testing.T) {
	c := Default()

	first := c.Resolve("output")
	first[0].Name = "mutated"

	again := c.Resolve("output")
	assert.Equal(t, "Addition String Check", again[0].Name)
}

func TestLabel(t *testing.T) {
	c := Default()

	assert.Equal(t, "Calculator Demo Suite", c.Label("output"))
	assert.Equal(t, "Custom Agents Suite", c.Label("custom"))
	assert.Equal(t, "Crisis Command Suite", c.Label("crisis"))
	assert.Equal(t, "Run Everything", c.Label(SuiteAll))
	assert.Equal(t, "Bogus Suite", c.Label("bogus"))
}

func TestDefault_FailureCategoryCarriedAsData(t *testing.T) {
	c := Default()
	for _, tpl := range c.Resolve(SuiteAll) {
		assert.Equal(t, "quality", tpl.FailureCategory, "template %s", tpl.ID)
	}
}

func TestHas(t *testing.T) {
	c := Default()

	assert.True(t, c.Has("output"))
	assert.True(t, c.Has(SuiteAll))
	assert.False(t, c.Has("bogus"))
}
