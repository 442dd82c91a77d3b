package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

// dateLayouts are tried in order when parsing date inputs and rule props.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// Date builds a validator for a date field from its declared rules. An
// after rule requires the value to be strictly later than the configured
// date; after_or_equal admits the boundary. A comparison rule whose date
// prop is unset or unparseable is skipped.
func Date(field Field) Validator {
	label := field.DisplayLabel()
	required := field.Has(rules.TagRequired)

	var after, afterOrEqual *time.Time
	for _, r := range field.Rules {
		props, ok := r.Props.(rules.DateProps)
		if !ok || props.Date == nil {
			continue
		}
		parsed, err := parseDate(*props.Date)
		if err != nil {
			continue
		}
		switch r.Tag {
		case rules.TagAfter:
			after = &parsed
		case rules.TagAfterOrEqual:
			afterOrEqual = &parsed
		}
	}

	return func(value any) Result {
		text, present := coerceString(value)
		if !present {
			if required {
				return fail(fmt.Sprintf("%s is required", label))
			}
			return ok()
		}

		parsed, err := parseDate(text)
		if err != nil {
			return fail(fmt.Sprintf("%s must be a valid date", label))
		}
		if after != nil && !parsed.After(*after) {
			return fail(fmt.Sprintf("%s must be after %s", label, after.Format("2006-01-02")))
		}
		if afterOrEqual != nil && parsed.Before(*afterOrEqual) {
			return fail(fmt.Sprintf("%s must be on or after %s", label, afterOrEqual.Format("2006-01-02")))
		}
		return ok()
	}
}

func parseDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("validate: unparseable date %q", text)
}
