package validate

import "github.com/goliatone/go-rulebuilder/pkg/rules"

// Bounds holds the resolved numeric limits for a field. Nil means unbounded
// on that side.
type Bounds struct {
	Min *float64
	Max *float64
}

// BoundsFor resolves min/max with a fixed three-step precedence: an
// aggregate between rule seeds both ends, then a standalone min rule
// overrides the lower bound, then a standalone max rule overrides the upper
// bound. Each step runs over the whole list, so declaration order never
// changes the outcome; between always yields to standalone min/max. When the
// same tag appears more than once the last occurrence wins within its step.
func BoundsFor(declared []Rule) Bounds {
	var b Bounds

	for _, r := range declared {
		if r.Tag != rules.TagBetween {
			continue
		}
		if props, ok := r.Props.(rules.RangeProps); ok {
			if props.Min != nil {
				b.Min = clonePtr(props.Min)
			}
			if props.Max != nil {
				b.Max = clonePtr(props.Max)
			}
		}
	}

	for _, r := range declared {
		if r.Tag != rules.TagMin {
			continue
		}
		if props, ok := r.Props.(rules.ValueProps); ok && props.Value != nil {
			b.Min = clonePtr(props.Value)
		}
	}

	for _, r := range declared {
		if r.Tag != rules.TagMax {
			continue
		}
		if props, ok := r.Props.(rules.ValueProps); ok && props.Value != nil {
			b.Max = clonePtr(props.Value)
		}
	}

	return b
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
