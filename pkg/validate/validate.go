// Package validate turns a field's declared rule list into runtime
// validators. Generators are pure: they read the declared rules and field
// metadata once and return a closure that checks raw values. Failures come
// back as field-level messages in a Result; nothing panics across the
// boundary, and a non-required field accepts an absent value without running
// any downstream check.
package validate

import (
	"strings"

	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

// Result is the outcome of running a validator against a raw value. Error
// carries the first failing check's message and is empty when Valid.
type Result struct {
	Valid bool
	Error string
}

// Validator checks a single raw field value.
type Validator func(value any) Result

// Rule is one declared (tag, props) pair attached to a field. Declared rules
// come from the save payload, not the editor store, so there is no enabled
// flag here: disabled instances never reach serialization.
type Rule struct {
	Tag   rules.Tag
	Props rules.Props
}

// Field is the metadata a schema generator needs: identity for error
// messages, the declared rule list, and an optional default.
type Field struct {
	Name    string
	Label   string
	Default any
	Rules   []Rule
}

// DisplayLabel returns the label used in error messages, falling back to the
// field name.
func (f Field) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return f.Name
}

// Has reports whether the field declares a rule with the given tag.
func (f Field) Has(tag rules.Tag) bool {
	for _, r := range f.Rules {
		if r.Tag == tag {
			return true
		}
	}
	return false
}

func ok() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Valid: false, Error: message}
}
