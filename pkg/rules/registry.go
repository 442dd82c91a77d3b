package rules

// Entry describes how instances of one tag are constructed and edited.
type Entry struct {
	// Tag is the registry key. Exactly one entry may exist per tag.
	Tag Tag

	// Label is the human-readable name shown in rule selectors.
	Label string

	// Editor names the editor component the host UI mounts for instances of
	// this tag. Hosts with no component for the name skip the row.
	Editor string

	// MakeDefault builds a fresh, disabled instance whose props hold only
	// unset sentinels. Deterministic apart from ID generation.
	MakeDefault func(definitionID int) Instance
}

// Registry is an immutable catalog of rule entries, constructed explicitly
// and passed into stores and builders. Tests can hand in a reduced set.
type Registry struct {
	entries map[Tag]Entry
	order   []Tag
}

// NewRegistry builds a registry from the provided entries. Entries without a
// tag or a MakeDefault are skipped; a duplicate tag replaces the earlier
// entry but keeps its position.
func NewRegistry(entries ...Entry) *Registry {
	reg := &Registry{entries: make(map[Tag]Entry, len(entries))}
	for _, entry := range entries {
		if entry.Tag == "" || entry.MakeDefault == nil {
			continue
		}
		if _, exists := reg.entries[entry.Tag]; !exists {
			reg.order = append(reg.order, entry.Tag)
		}
		reg.entries[entry.Tag] = entry
	}
	return reg
}

// Get retrieves the entry for a tag.
func (r *Registry) Get(tag Tag) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	entry, ok := r.entries[tag]
	return entry, ok
}

// Has reports whether the registry knows a tag.
func (r *Registry) Has(tag Tag) bool {
	_, ok := r.Get(tag)
	return ok
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []Tag {
	if r == nil {
		return nil
	}
	return append([]Tag(nil), r.order...)
}

// Len reports the number of registered entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Builtin returns a registry covering every tag this build knows, with the
// stock labels and editor component names.
func Builtin() *Registry {
	return NewRegistry(
		builtinEntry(TagAfter, "After date", "date-compare"),
		builtinEntry(TagAfterOrEqual, "After or equal to date", "date-compare"),
		builtinEntry(TagRequired, "Required", "flag"),
		builtinEntry(TagMin, "Minimum", "threshold"),
		builtinEntry(TagMax, "Maximum", "threshold"),
		builtinEntry(TagRegex, "Matches pattern", "pattern"),
		builtinEntry(TagIn, "One of", "value-list"),
		builtinEntry(TagNotIn, "Not one of", "value-list"),
		builtinEntry(TagNumeric, "Numeric", "flag"),
		builtinEntry(TagInteger, "Integer", "flag"),
		builtinEntry(TagBetween, "Between", "range"),
		builtinEntry(TagSame, "Same as field", "field-compare"),
		builtinEntry(TagDifferent, "Different from field", "field-compare"),
		builtinEntry(TagJSON, "Valid JSON", "flag"),
		builtinEntry(TagURL, "Valid URL", "flag"),
		builtinEntry(TagAlpha, "Alphabetic", "flag"),
		builtinEntry(TagAlphaNum, "Alphanumeric", "flag"),
		builtinEntry(TagAlphaDash, "Alphanumeric with dashes", "flag"),
		builtinEntry(TagLatitude, "Latitude", "flag"),
		builtinEntry(TagLongitude, "Longitude", "flag"),
		builtinEntry(TagMinFileSize, "Minimum file size", "threshold"),
		builtinEntry(TagMaxFileSize, "Maximum file size", "threshold"),
		builtinEntry(TagDimensions, "Image dimensions", "dimensions"),
		builtinEntry(TagMimes, "Allowed file types", "value-list"),
	)
}

func builtinEntry(tag Tag, label, editor string) Entry {
	return Entry{
		Tag:    tag,
		Label:  label,
		Editor: editor,
		MakeDefault: func(definitionID int) Instance {
			return Instance{
				ID:           newInstanceID(),
				Tag:          tag,
				DefinitionID: definitionID,
				Enabled:      false,
				Props:        defaultProps(tag),
			}
		},
	}
}
