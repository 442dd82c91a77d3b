package validate

import (
	"testing"

	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

func ptr[T any](v T) *T { return &v }

func betweenRule(min, max float64) Rule {
	return Rule{Tag: rules.TagBetween, Props: rules.RangeProps{Min: ptr(min), Max: ptr(max)}}
}

func minRule(value float64) Rule {
	return Rule{Tag: rules.TagMin, Props: rules.ValueProps{Value: ptr(value)}}
}

func maxRule(value float64) Rule {
	return Rule{Tag: rules.TagMax, Props: rules.ValueProps{Value: ptr(value)}}
}

func TestBoundsFor_OverrideChain(t *testing.T) {
	cases := []struct {
		name     string
		declared []Rule
		wantMin  *float64
		wantMax  *float64
	}{
		{
			name:     "between then max override",
			declared: []Rule{betweenRule(1, 10), maxRule(5)},
			wantMin:  ptr(1.0),
			wantMax:  ptr(5.0),
		},
		{
			name:     "max declared before between still overrides",
			declared: []Rule{maxRule(5), betweenRule(1, 10)},
			wantMin:  ptr(1.0),
			wantMax:  ptr(5.0),
		},
		{
			name:     "min overrides lower bound only",
			declared: []Rule{minRule(3), betweenRule(1, 10)},
			wantMin:  ptr(3.0),
			wantMax:  ptr(10.0),
		},
		{
			name:     "between alone",
			declared: []Rule{betweenRule(2, 4)},
			wantMin:  ptr(2.0),
			wantMax:  ptr(4.0),
		},
		{
			name:     "standalone min and max",
			declared: []Rule{minRule(0), maxRule(100)},
			wantMin:  ptr(0.0),
			wantMax:  ptr(100.0),
		},
		{
			name:     "no bounds",
			declared: []Rule{{Tag: rules.TagRequired, Props: rules.EmptyProps{}}},
		},
		{
			name:     "unset between props leave bounds open",
			declared: []Rule{{Tag: rules.TagBetween, Props: rules.RangeProps{}}},
		},
		{
			name:     "repeated min, last wins",
			declared: []Rule{minRule(1), minRule(7)},
			wantMin:  ptr(7.0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BoundsFor(tc.declared)
			checkBound(t, "min", got.Min, tc.wantMin)
			checkBound(t, "max", got.Max, tc.wantMax)
		})
	}
}

func checkBound(t *testing.T, side string, got, want *float64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s: want unbounded, got %v", side, *got)
	case want != nil && got == nil:
		t.Errorf("%s: want %v, got unbounded", side, *want)
	case want != nil && got != nil && *want != *got:
		t.Errorf("%s: want %v, got %v", side, *want, *got)
	}
}
