package compare

// FeatureKeys is the fixed set of comparable features, in display order.
var FeatureKeys = []string{
	"pricing",
	"languages",
	"rating",
	"company_size",
	"headquarters",
	"founded",
	"categories",
	"subscription",
}

// FeatureSelection is the set of feature rows shown in the compare table.
// It lives only in UI state; unlike the product slots it is never reflected
// in the shareable URL.
type FeatureSelection map[string]bool

// DefaultFeatures is the initial five-row selection.
func DefaultFeatures() FeatureSelection {
	return FeatureSelection{
		"pricing":      true,
		"languages":    true,
		"rating":       true,
		"company_size": true,
		"subscription": true,
	}
}

// ParseFeatures builds a selection from the given keys, ignoring unknown
// ones. An empty input falls back to the default selection.
func ParseFeatures(keys []string) FeatureSelection {
	if len(keys) == 0 {
		return DefaultFeatures()
	}
	sel := FeatureSelection{}
	for _, k := range keys {
		if validFeature(k) {
			sel[k] = true
		}
	}
	return sel
}

// Toggle flips the key in or out of the selection: a symmetric difference
// with the singleton set. Unknown keys are rejected.
func (s FeatureSelection) Toggle(key string) bool {
	if !validFeature(key) {
		return false
	}
	if s[key] {
		delete(s, key)
	} else {
		s[key] = true
	}
	return true
}

func (s FeatureSelection) Count() int {
	return len(s)
}

// Selected returns the chosen keys in canonical display order.
func (s FeatureSelection) Selected() []string {
	var out []string
	for _, k := range FeatureKeys {
		if s[k] {
			out = append(out, k)
		}
	}
	return out
}

func validFeature(key string) bool {
	for _, k := range FeatureKeys {
		if k == key {
			return true
		}
	}
	return false
}
