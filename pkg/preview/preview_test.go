package preview

import (
	"strings"
	"testing"

	"github.com/goliatone/go-rulebuilder/pkg/builder"
	"github.com/goliatone/go-rulebuilder/pkg/catalog"
	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

func ptr[T any](v T) *T { return &v }

func TestRender_OneRowPerEntry(t *testing.T) {
	cat := catalog.New(
		catalog.Definition{ID: 21, Name: "between", Description: "Keep it in range"},
		catalog.Definition{ID: 3, Name: "required"},
	)
	b := builder.New(builder.WithCatalog(cat))
	if _, ok := b.AddByName("required"); !ok {
		t.Fatal("add required failed")
	}
	id, ok := b.AddByName("between")
	if !ok {
		t.Fatal("add between failed")
	}
	b.Binding(id).Patch(rules.WithProps(rules.RangeProps{Min: ptr(1.0), Max: ptr(10.0)}))
	b.Binding(id).SetEnabled(true)

	renderer, err := New(WithCatalog(cat))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	html, err := renderer.Render(b.Rows())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := string(html)
	if got := strings.Count(out, "<li"); got != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "Required") || !strings.Contains(out, "Between") {
		t.Fatalf("labels missing:\n%s", out)
	}
	if !strings.Contains(out, "min 1, max 10") {
		t.Fatalf("range summary missing:\n%s", out)
	}
	if !strings.Contains(out, "Keep it in range") {
		t.Fatalf("catalog description missing:\n%s", out)
	}
	if !strings.Contains(out, "rule-disabled") {
		t.Fatalf("disabled row not marked:\n%s", out)
	}
}

func TestRender_SkipsUnknownTags(t *testing.T) {
	b := builder.New(builder.WithCatalog(catalog.New(
		catalog.Definition{ID: 3, Name: "required"},
	)))
	b.AddByName("required")
	b.Store().ReplaceAll(append(b.Store().Snapshot(), rules.Instance{
		ID: "rule_old", Tag: rules.Tag("retired"), Props: rules.EmptyProps{},
	}))

	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	// Rows() already filters unknown tags; the renderer sees only valid rows.
	html, err := renderer.Render(b.Rows())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(string(html), "<li"); got != 1 {
		t.Fatalf("expected unknown tag skipped, got %d rows", got)
	}
}

func TestPropsSummary(t *testing.T) {
	cases := []struct {
		name  string
		props rules.Props
		want  string
	}{
		{"empty", rules.EmptyProps{}, ""},
		{"unset date", rules.DateProps{}, ""},
		{"date", rules.DateProps{Date: ptr("2024-01-01")}, "2024-01-01"},
		{"value", rules.ValueProps{Value: ptr(2.5)}, "2.5"},
		{"list", rules.ListProps{Values: []string{"a", "b"}}, "a, b"},
		{"pattern", rules.PatternProps{Pattern: ptr("^x")}, "^x"},
		{"compare", rules.CompareProps{Field: ptr("password")}, "password"},
		{"range min only", rules.RangeProps{Min: ptr(3.0)}, "min 3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := propsSummary(tc.props); got != tc.want {
				t.Fatalf("summary %q, want %q", got, tc.want)
			}
		})
	}
}
