// Package builder reconciles the backend rule catalog with the local rule
// registry and drives the add/render cycle of a rule-configuration editor.
// The catalog fetch itself lives outside this package; the builder treats it
// as completed input carried alongside loading/error flags, so a retried or
// aborted fetch simply re-renders with the updated state.
package builder

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-rulebuilder/pkg/catalog"
	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

// Option customises the builder configuration.
type Option func(*Builder)

// WithRegistry injects the registry consulted for rule construction and
// row dispatch. Defaults to rules.Builtin().
func WithRegistry(registry *rules.Registry) Option {
	return func(b *Builder) {
		b.registry = registry
	}
}

// WithStore injects a pre-populated store, used when an editing session
// resumes from a saved form version.
func WithStore(store *rules.Store) Option {
	return func(b *Builder) {
		b.store = store
	}
}

// WithCatalog seeds the backend catalog at construction time.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(b *Builder) {
		b.catalog = cat
	}
}

// WithLogger injects the warn side channel. Defaults to a discard logger.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Builder) {
		b.log = log
		b.logSet = true
	}
}

// Builder composes the backend catalog, the local registry, and the rule
// store. Adds go through the catalog∩registry intersection so a malformed
// instance can never reach the store.
type Builder struct {
	registry *rules.Registry
	store    *rules.Store
	catalog  *catalog.Catalog
	loading  bool
	err      error
	log      zerolog.Logger
	logSet   bool
}

// New constructs a builder, filling any missing dependency with defaults.
func New(options ...Option) *Builder {
	b := &Builder{log: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.registry == nil {
		b.registry = rules.Builtin()
	}
	if b.store == nil {
		storeOpts := []rules.StoreOption{}
		if b.logSet {
			storeOpts = append(storeOpts, rules.WithLogger(b.log))
		}
		b.store = rules.NewStore(b.registry, storeOpts...)
	}
	if b.catalog == nil {
		b.catalog = catalog.New()
	}
	return b
}

// SetCatalog replaces the backend catalog state. The fetch layer calls this
// whenever its request settles; loading and err describe the fetch outcome,
// not a builder fault.
func (b *Builder) SetCatalog(cat *catalog.Catalog, loading bool, err error) {
	if cat == nil {
		cat = catalog.New()
	}
	b.catalog = cat
	b.loading = loading
	b.err = err
}

// CatalogState reports the carried fetch state.
func (b *Builder) CatalogState() (loading bool, err error) {
	return b.loading, b.err
}

// Available returns the catalog definitions whose names the local registry
// knows, in catalog order. Selectors are populated exclusively from this
// list, which makes adding a name unknown to the backend impossible by
// construction.
func (b *Builder) Available() []catalog.Definition {
	var out []catalog.Definition
	for _, def := range b.catalog.Definitions() {
		if b.registry.Has(rules.Tag(def.Name)) {
			out = append(out, def)
		}
	}
	return out
}

// AddByName adds one instance of the named rule. Names missing from the
// catalog or from the registry (frontend/backend version skew) fail soft:
// a warning, no state change, ok=false.
func (b *Builder) AddByName(name string) (string, bool) {
	def, ok := b.catalog.Lookup(name)
	if !ok {
		b.log.Warn().Str("rule", name).Msg("builder: add skipped, rule not in backend catalog")
		return "", false
	}

	tag := rules.Tag(def.Name)
	if !b.registry.Has(tag) {
		b.log.Warn().Str("rule", name).Msg("builder: add skipped, rule not in local registry")
		return "", false
	}

	return b.store.Add(tag, def.ID)
}

// Row pairs a store instance with its registry entry for rendering.
type Row struct {
	Instance rules.Instance
	Entry    rules.Entry
}

// Rows returns one row per store entry in insertion order. Instances whose
// tag has no registry entry are skipped after a warning so a single stale
// rule never takes down the rest of the editor.
func (b *Builder) Rows() []Row {
	snapshot := b.store.Snapshot()
	rows := make([]Row, 0, len(snapshot))
	for _, inst := range snapshot {
		entry, ok := b.registry.Get(inst.Tag)
		if !ok {
			b.log.Warn().Str("tag", string(inst.Tag)).Msg("builder: row skipped, tag not registered")
			continue
		}
		rows = append(rows, Row{Instance: inst, Entry: entry})
	}
	return rows
}

// Store exposes the underlying rule store.
func (b *Builder) Store() *rules.Store {
	return b.store
}

// Registry exposes the registry the builder dispatches against.
func (b *Builder) Registry() *rules.Registry {
	return b.registry
}

// Binding returns a per-instance accessor for an editor row.
func (b *Builder) Binding(id string) *rules.Binding {
	return b.store.Binding(id)
}
