package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltin_CoversEveryTag(t *testing.T) {
	reg := Builtin()
	for _, tag := range Tags() {
		if !reg.Has(tag) {
			t.Errorf("builtin registry missing entry for %q", tag)
		}
	}
	if got, want := reg.Len(), len(Tags()); got != want {
		t.Fatalf("builtin registry has %d entries, want %d", got, want)
	}
}

func TestMakeDefault_DisabledWithUnsetProps(t *testing.T) {
	reg := Builtin()

	unset := map[Tag]Props{
		TagRequired:   EmptyProps{},
		TagAfter:      DateProps{},
		TagMin:        ValueProps{},
		TagBetween:    RangeProps{},
		TagIn:         ListProps{},
		TagRegex:      PatternProps{},
		TagSame:       CompareProps{},
		TagDimensions: DimensionsProps{},
	}

	for _, tag := range reg.Tags() {
		entry, ok := reg.Get(tag)
		if !ok {
			t.Fatalf("missing entry %q", tag)
		}
		inst := entry.MakeDefault(42)
		if inst.Enabled {
			t.Errorf("%q: default instance is enabled", tag)
		}
		if inst.DefinitionID != 42 {
			t.Errorf("%q: definition id %d, want 42", tag, inst.DefinitionID)
		}
		if inst.Tag != tag {
			t.Errorf("%q: instance tag %q", tag, inst.Tag)
		}
		if inst.ID == "" {
			t.Errorf("%q: empty instance id", tag)
		}
		if want, ok := unset[tag]; ok {
			if diff := cmp.Diff(want, inst.Props); diff != "" {
				t.Errorf("%q: default props not unset (-want +got):\n%s", tag, diff)
			}
		}
	}
}

func TestMakeDefault_UniqueIDs(t *testing.T) {
	entry, _ := Builtin().Get(TagRequired)
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		id := entry.MakeDefault(1).ID
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate instance id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewRegistry_SkipsInvalidAndDedupes(t *testing.T) {
	make1 := func(definitionID int) Instance {
		return Instance{ID: "a", Tag: TagMin, DefinitionID: definitionID, Props: ValueProps{}}
	}
	reg := NewRegistry(
		Entry{Tag: TagMin, Label: "first", MakeDefault: make1},
		Entry{Tag: "", Label: "no tag", MakeDefault: make1},
		Entry{Tag: TagMax, Label: "no factory"},
		Entry{Tag: TagMin, Label: "second", MakeDefault: make1},
	)

	if reg.Len() != 1 {
		t.Fatalf("expected single entry, got %d", reg.Len())
	}
	entry, ok := reg.Get(TagMin)
	if !ok || entry.Label != "second" {
		t.Fatalf("expected duplicate tag to replace earlier entry, got %+v (ok=%v)", entry, ok)
	}
	if reg.Has(TagMax) {
		t.Fatal("entry without MakeDefault should be skipped")
	}
}

func TestPropsShape_UnknownTag(t *testing.T) {
	if got := PropsShape(Tag("definitely_not_a_rule")); got != ShapeUnknown {
		t.Fatalf("expected ShapeUnknown, got %v", got)
	}
}
