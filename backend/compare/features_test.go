package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFeatures(t *testing.T) {
	sel := DefaultFeatures()
	assert.Equal(t, 5, sel.Count())
	assert.Equal(t, []string{"pricing", "languages", "rating", "company_size", "subscription"}, sel.Selected())
}

func TestToggleInvolution(t *testing.T) {
	for _, key := range FeatureKeys {
		sel := DefaultFeatures()
		before := sel.Selected()

		assert.True(t, sel.Toggle(key))
		assert.True(t, sel.Toggle(key))

		// toggling twice restores the selection exactly
		assert.Equal(t, before, sel.Selected(), "involution for %q", key)
	}
}

func TestToggleUnknownKey(t *testing.T) {
	sel := DefaultFeatures()
	assert.False(t, sel.Toggle("price_per_seat"))
	assert.Equal(t, 5, sel.Count())
}

func TestSelectedKeepsDisplayOrder(t *testing.T) {
	sel := FeatureSelection{}
	sel.Toggle("subscription")
	sel.Toggle("pricing")
	sel.Toggle("headquarters")

	// canonical order, not toggle order
	assert.Equal(t, []string{"pricing", "headquarters", "subscription"}, sel.Selected())
}

func TestParseFeatures(t *testing.T) {
	assert.Equal(t, DefaultFeatures(), ParseFeatures(nil))

	sel := ParseFeatures([]string{"rating", "bogus", "pricing"})
	assert.Equal(t, []string{"pricing", "rating"}, sel.Selected())
}
