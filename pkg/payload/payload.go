// Package payload serializes configured rule instances into the save shape
// the backend expects and hydrates instances back out of a saved form
// version. Disabled instances stay in the editor but never reach the wire.
package payload

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-rulebuilder/pkg/catalog"
	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

// RuleSave is the wire shape of one configured rule.
type RuleSave struct {
	InputRuleID int             `json:"inputruleid"`
	RuleProps   json.RawMessage `json:"ruleprops"`
}

// Codec maps between store instances and the save payload. Catalog and
// Registry recover tags and props shapes during decode; Log is the warn side
// channel for entries that no longer resolve.
type Codec struct {
	Catalog  *catalog.Catalog
	Registry *rules.Registry
	Log      zerolog.Logger
}

// Build returns the save entries for the enabled instances, in store order.
func (c Codec) Build(instances []rules.Instance) ([]RuleSave, error) {
	out := make([]RuleSave, 0, len(instances))
	for _, inst := range instances {
		if !inst.Enabled {
			continue
		}
		props := inst.Props
		if props == nil {
			props = rules.EmptyProps{}
		}
		encoded, err := json.Marshal(props)
		if err != nil {
			return nil, fmt.Errorf("payload: encode props for %q: %w", inst.Tag, err)
		}
		out = append(out, RuleSave{
			InputRuleID: inst.DefinitionID,
			RuleProps:   encoded,
		})
	}
	return out, nil
}

// Encode marshals the save entries for the enabled instances.
func (c Codec) Encode(instances []rules.Instance) ([]byte, error) {
	saves, err := c.Build(instances)
	if err != nil {
		return nil, err
	}
	return json.Marshal(saves)
}

// Decode rebuilds store instances from a saved payload. Entries whose
// definition id is missing from the catalog, or whose name the registry does
// not know, are skipped with a warning: a stale saved rule must not block
// loading the rest of the form. Decoded instances come back enabled, since
// disabled ones were stripped before saving.
func (c Codec) Decode(data []byte) ([]rules.Instance, error) {
	var saves []RuleSave
	if err := json.Unmarshal(data, &saves); err != nil {
		return nil, fmt.Errorf("payload: decode save payload: %w", err)
	}
	return c.Instances(saves)
}

// Instances converts save entries into store instances, applying the same
// skip-and-warn policy as Decode.
func (c Codec) Instances(saves []RuleSave) ([]rules.Instance, error) {
	out := make([]rules.Instance, 0, len(saves))
	for _, save := range saves {
		def, ok := c.Catalog.LookupID(save.InputRuleID)
		if !ok {
			c.Log.Warn().Int("inputruleid", save.InputRuleID).Msg("payload: skipped rule, id not in catalog")
			continue
		}

		tag := rules.Tag(def.Name)
		entry, ok := c.Registry.Get(tag)
		if !ok {
			c.Log.Warn().Str("rule", def.Name).Msg("payload: skipped rule, tag not registered")
			continue
		}

		props, err := rules.UnmarshalProps(tag, save.RuleProps)
		if err != nil {
			return nil, fmt.Errorf("payload: rule %q: %w", def.Name, err)
		}

		inst := entry.MakeDefault(def.ID)
		inst.Enabled = true
		inst.Props = props
		out = append(out, inst)
	}
	return out, nil
}
