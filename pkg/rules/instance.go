package rules

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Instance is one configured occurrence of a rule tag. IDs are local to an
// editing session and never leave the editor; DefinitionID is the foreign key
// into the backend rule catalog and does.
//
// Disabled instances are inert but retained so their configuration survives a
// toggle-off/toggle-on cycle.
type Instance struct {
	ID           string `json:"id"`
	Tag          Tag    `json:"tag"`
	DefinitionID int    `json:"definitionId"`
	Enabled      bool   `json:"enabled"`
	Props        Props  `json:"props"`
}

// Clone returns a deep copy safe to hand out of a snapshot.
func (i Instance) Clone() Instance {
	out := i
	if i.Props != nil {
		out.Props = i.Props.Clone()
	}
	return out
}

// Patch describes a shallow merge against an existing instance. Nil fields
// leave the current value untouched. Props, when set, replaces the payload
// wholesale; the variant type must match the instance tag.
type Patch struct {
	Enabled      *bool
	DefinitionID *int
	Props        Props
}

// Enabled returns a Patch toggling only the enabled flag.
func Enabled(enabled bool) Patch {
	return Patch{Enabled: &enabled}
}

// WithProps returns a Patch replacing only the props payload.
func WithProps(props Props) Patch {
	return Patch{Props: props}
}

func (p Patch) apply(inst Instance) Instance {
	out := inst.Clone()
	if p.Enabled != nil {
		out.Enabled = *p.Enabled
	}
	if p.DefinitionID != nil {
		out.DefinitionID = *p.DefinitionID
	}
	if p.Props != nil {
		out.Props = p.Props.Clone()
	}
	return out
}

const (
	idPrefix   = "rule_"
	idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 12
)

// newInstanceID returns an identifier unique within an editing session.
func newInstanceID() string {
	id, err := nanoid.Generate(idAlphabet, idLength)
	if err != nil {
		// Generate only fails when the platform RNG is unavailable.
		panic(fmt.Errorf("rules: generate instance id: %w", err))
	}
	return idPrefix + id
}
