package validate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

var (
	alphaPattern     = regexp.MustCompile(`^[\pL\pM]+$`)
	alphaNumPattern  = regexp.MustCompile(`^[\pL\pM\pN]+$`)
	alphaDashPattern = regexp.MustCompile(`^[\pL\pM\pN_-]+$`)
)

// String builds a validator for a text field from its declared rules. The
// min/max/between chain applies to the character count. A regex rule whose
// pattern does not compile is skipped: one bad rule must not block the rest
// of the field's checks.
func String(field Field) Validator {
	label := field.DisplayLabel()
	required := field.Has(rules.TagRequired)
	bounds := BoundsFor(field.Rules)

	var pattern *regexp.Regexp
	for _, r := range field.Rules {
		if r.Tag != rules.TagRegex {
			continue
		}
		props, ok := r.Props.(rules.PatternProps)
		if !ok || props.Pattern == nil {
			continue
		}
		if compiled, err := regexp.Compile(*props.Pattern); err == nil {
			pattern = compiled
		}
	}

	allowed := listValues(field.Rules, rules.TagIn)
	forbidden := listValues(field.Rules, rules.TagNotIn)

	checkJSON := field.Has(rules.TagJSON)
	checkURL := field.Has(rules.TagURL)

	var alphaCheck *regexp.Regexp
	var alphaMessage string
	switch {
	case field.Has(rules.TagAlphaDash):
		alphaCheck, alphaMessage = alphaDashPattern, "letters, numbers, dashes and underscores"
	case field.Has(rules.TagAlphaNum):
		alphaCheck, alphaMessage = alphaNumPattern, "letters and numbers"
	case field.Has(rules.TagAlpha):
		alphaCheck, alphaMessage = alphaPattern, "letters"
	}

	return func(value any) Result {
		text, present := coerceString(value)
		if !present {
			if required {
				return fail(fmt.Sprintf("%s is required", label))
			}
			return ok()
		}

		length := float64(len([]rune(text)))
		if bounds.Min != nil && length < *bounds.Min {
			return fail(fmt.Sprintf("%s must be at least %s characters", label, formatNumber(*bounds.Min)))
		}
		if bounds.Max != nil && length > *bounds.Max {
			return fail(fmt.Sprintf("%s must be at most %s characters", label, formatNumber(*bounds.Max)))
		}
		if pattern != nil && !pattern.MatchString(text) {
			return fail(fmt.Sprintf("%s does not match the required pattern", label))
		}
		if len(allowed) > 0 && !contains(allowed, text) {
			return fail(fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", ")))
		}
		if len(forbidden) > 0 && contains(forbidden, text) {
			return fail(fmt.Sprintf("%s must not be one of: %s", label, strings.Join(forbidden, ", ")))
		}
		if checkJSON && !json.Valid([]byte(text)) {
			return fail(fmt.Sprintf("%s must be valid JSON", label))
		}
		if checkURL && !isURL(text) {
			return fail(fmt.Sprintf("%s must be a valid URL", label))
		}
		if alphaCheck != nil && !alphaCheck.MatchString(text) {
			return fail(fmt.Sprintf("%s may only contain %s", label, alphaMessage))
		}
		return ok()
	}
}

// DefaultString extracts a string default, or nil when none is declared.
func DefaultString(field Field) *string {
	text, present := coerceString(field.Default)
	if !present {
		return nil
	}
	return &text
}

func coerceString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	case fmt.Stringer:
		return coerceString(v.String())
	default:
		return "", false
	}
}

func listValues(declared []Rule, tag rules.Tag) []string {
	var out []string
	for _, r := range declared {
		if r.Tag != tag {
			continue
		}
		if props, ok := r.Props.(rules.ListProps); ok && len(props.Values) > 0 {
			out = props.Values
		}
	}
	return out
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func isURL(text string) bool {
	parsed, err := url.ParseRequestURI(text)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
