package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-rulebuilder/pkg/rules"
)

// Numeric builds a validator for a numeric field from its declared rules.
//
// Resolution order: requiredness comes from a required rule; bounds follow
// the BoundsFor override chain; decimals are allowed unless the field
// declares integer without also declaring numeric (numeric wins when both
// are present, and a field with neither still allows decimals). The
// validator coerces raw input to a number and reports the first failing
// check.
func Numeric(field Field) Validator {
	label := field.DisplayLabel()
	required := field.Has(rules.TagRequired)
	bounds := BoundsFor(field.Rules)
	allowDecimals := field.Has(rules.TagNumeric) || !field.Has(rules.TagInteger)
	checkLatitude := field.Has(rules.TagLatitude)
	checkLongitude := field.Has(rules.TagLongitude)

	return func(value any) Result {
		num, present, err := coerceNumber(value)
		if !present {
			if required {
				return fail(fmt.Sprintf("%s is required", label))
			}
			return ok()
		}
		if err != nil {
			return fail(fmt.Sprintf("%s must be a number", label))
		}
		if !allowDecimals && num != math.Trunc(num) {
			return fail(fmt.Sprintf("%s must be an integer", label))
		}
		if bounds.Min != nil && num < *bounds.Min {
			return fail(fmt.Sprintf("%s must be at least %s", label, formatNumber(*bounds.Min)))
		}
		if bounds.Max != nil && num > *bounds.Max {
			return fail(fmt.Sprintf("%s must be at most %s", label, formatNumber(*bounds.Max)))
		}
		if checkLatitude && (num < -90 || num > 90) {
			return fail(fmt.Sprintf("%s must be a valid latitude", label))
		}
		if checkLongitude && (num < -180 || num > 180) {
			return fail(fmt.Sprintf("%s must be a valid longitude", label))
		}
		return ok()
	}
}

// DefaultNumber extracts a numeric default from the field metadata. A number
// passes through, a numeric-looking string is parsed, anything else yields
// nil. Nil means "no default", which is distinct from a default of zero.
func DefaultNumber(field Field) *float64 {
	num, present, err := coerceNumber(field.Default)
	if !present || err != nil {
		return nil
	}
	return &num
}

// coerceNumber maps a raw value to (number, present, parse error). Absent
// covers nil and blank strings; NaN from any source counts as a parse error.
func coerceNumber(value any) (float64, bool, error) {
	switch v := value.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return guardNaN(v)
	case float32:
		return guardNaN(float64(v))
	case int:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false, nil
		}
		num, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, true, err
		}
		return guardNaN(num)
	default:
		return 0, true, fmt.Errorf("validate: unsupported value type %T", value)
	}
}

func guardNaN(num float64) (float64, bool, error) {
	if math.IsNaN(num) {
		return 0, true, fmt.Errorf("validate: value is NaN")
	}
	return num, true, nil
}

func formatNumber(num float64) string {
	return strconv.FormatFloat(num, 'f', -1, 64)
}
