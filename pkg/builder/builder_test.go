package builder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-rulebuilder/pkg/catalog"
	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

func TestAddByName_EndToEnd(t *testing.T) {
	b := New(WithCatalog(catalog.New(
		catalog.Definition{ID: 17, Name: "after"},
	)))

	id, ok := b.AddByName("after")
	if !ok {
		t.Fatal("add failed")
	}

	snapshot := b.Store().Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("expected exactly one instance, got %d", len(snapshot))
	}
	inst := snapshot[0]
	if inst.ID != id {
		t.Fatalf("snapshot id %q, returned id %q", inst.ID, id)
	}
	if inst.DefinitionID != 17 {
		t.Fatalf("definition id %d, want 17", inst.DefinitionID)
	}
	if inst.Enabled {
		t.Fatal("new instance must start disabled")
	}
	props, ok := inst.Props.(rules.DateProps)
	if !ok {
		t.Fatalf("props shape %T", inst.Props)
	}
	if props.Date != nil {
		t.Fatalf("default date must be unset, got %q", *props.Date)
	}
}

func TestAddByName_VersionSkewFailsSoft(t *testing.T) {
	// Catalog advertises a rule this build's registry does not know.
	b := New(
		WithRegistry(rules.NewRegistry()),
		WithCatalog(catalog.New(catalog.Definition{ID: 1, Name: "required"})),
	)

	id, ok := b.AddByName("required")
	if ok || id != "" {
		t.Fatalf("expected soft failure, got id=%q ok=%v", id, ok)
	}
	if b.Store().Len() != 0 {
		t.Fatal("store mutated on version skew")
	}
}

func TestAddByName_NotInCatalog(t *testing.T) {
	b := New(WithCatalog(catalog.New()))
	if _, ok := b.AddByName("after"); ok {
		t.Fatal("expected failure for name absent from catalog")
	}
	if b.Store().Len() != 0 {
		t.Fatal("store mutated")
	}
}

func TestAvailable_IntersectsCatalogAndRegistry(t *testing.T) {
	b := New(WithCatalog(catalog.New(
		catalog.Definition{ID: 1, Name: "required"},
		catalog.Definition{ID: 2, Name: "shiny_new_rule"},
		catalog.Definition{ID: 3, Name: "min"},
	)))

	var names []string
	for _, def := range b.Available() {
		names = append(names, def.Name)
	}
	if diff := cmp.Diff([]string{"required", "min"}, names); diff != "" {
		t.Fatalf("available mismatch (-want +got):\n%s", diff)
	}
}

func TestRows_SkipsUnknownTags(t *testing.T) {
	b := New(WithCatalog(catalog.New(
		catalog.Definition{ID: 1, Name: "required"},
	)))
	if _, ok := b.AddByName("required"); !ok {
		t.Fatal("add failed")
	}

	// Hydrating a saved version can carry tags a newer build dropped.
	snapshot := b.Store().Snapshot()
	snapshot = append(snapshot, rules.Instance{
		ID: "rule_legacy", Tag: rules.Tag("retired_rule"), DefinitionID: 99, Props: rules.EmptyProps{},
	})
	b.Store().ReplaceAll(snapshot)

	rows := b.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Instance.Tag != rules.TagRequired {
		t.Fatalf("unexpected row tag %q", rows[0].Instance.Tag)
	}
	if rows[0].Entry.Label == "" {
		t.Fatal("row entry missing label")
	}
}

func TestSetCatalog_CarriesFetchState(t *testing.T) {
	b := New()
	fetchErr := errors.New("backend unavailable")

	b.SetCatalog(nil, false, fetchErr)
	loading, err := b.CatalogState()
	if loading || !errors.Is(err, fetchErr) {
		t.Fatalf("state: loading=%v err=%v", loading, err)
	}
	if len(b.Available()) != 0 {
		t.Fatal("nil catalog should present no rules")
	}

	b.SetCatalog(catalog.New(catalog.Definition{ID: 1, Name: "max"}), false, nil)
	if _, err := b.CatalogState(); err != nil {
		t.Fatalf("error not cleared: %v", err)
	}
	if len(b.Available()) != 1 {
		t.Fatal("catalog update not applied")
	}
}
