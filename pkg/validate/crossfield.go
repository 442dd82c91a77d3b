package validate

import "github.com/goliatone/go-rulebuilder/pkg/rules"

// Comparison names a sibling field a whole-form pass must compare against.
// Per-field generators only extract the target; the comparison itself needs
// sibling values and runs at the form level.
type Comparison struct {
	// Tag is rules.TagSame or rules.TagDifferent.
	Tag rules.Tag

	// Field is the sibling field name to compare with.
	Field string
}

// Comparisons extracts the cross-field checks a field declares, in
// declaration order. Rules with an unset target are skipped.
func Comparisons(field Field) []Comparison {
	var out []Comparison
	for _, r := range field.Rules {
		if r.Tag != rules.TagSame && r.Tag != rules.TagDifferent {
			continue
		}
		props, ok := r.Props.(rules.CompareProps)
		if !ok || props.Field == nil || *props.Field == "" {
			continue
		}
		out = append(out, Comparison{Tag: r.Tag, Field: *props.Field})
	}
	return out
}
