// Package rules defines the validation-rule editing model: the tag
// enumeration shared with the backend rule catalog, the sealed per-tag props
// union, the registry describing how instances of each tag are constructed
// and edited, and the ordered copy-on-write store that holds the instances
// configured during one editing session. Bindings scope store access to a
// single instance so editor rows can read and mutate only their own rule.
// Everything here is synchronous and in-memory; catalog fetching and payload
// serialization live in pkg/catalog and pkg/payload.
package rules
