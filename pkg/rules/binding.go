package rules

// Binding is a per-instance accessor over a store. Rows in an editor hold a
// binding rather than the store, so each row can only touch its own rule.
type Binding struct {
	store *Store
	id    string
}

// ID returns the bound instance id.
func (b *Binding) ID() string {
	if b == nil {
		return ""
	}
	return b.id
}

// Rule returns the bound instance, or nil while the store does not contain
// the id. Callers render nothing for nil; a removed rule whose row is still
// mounted during the same render pass is expected, not an error.
func (b *Binding) Rule() *Instance {
	if b == nil || b.store == nil {
		return nil
	}
	inst, ok := b.store.Get(b.id)
	if !ok {
		return nil
	}
	return &inst
}

// SetEnabled toggles the enabled flag. Sugar for Patch.
func (b *Binding) SetEnabled(enabled bool) {
	b.Patch(Enabled(enabled))
}

// Patch shallow-merges into the bound instance; stale bindings are no-ops.
func (b *Binding) Patch(patch Patch) {
	if b == nil || b.store == nil {
		return
	}
	b.store.Patch(b.id, patch)
}
