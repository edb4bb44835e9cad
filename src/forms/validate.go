package forms

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Error messages shown under the corresponding input. These are part of the
// public contract and render verbatim, so keep the wording stable.
const (
	MsgRequired      = "This field is required"
	MsgInvalidEmail  = "Please enter a valid email address"
	MsgInvalidNumber = "Please enter a valid number"
)

// Deliberately looser than RFC 5322: one @, no whitespace, dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateField checks one candidate value against its field definition and
// returns an error message, or "" when the value passes. It is pure: no
// state, no I/O, same verdict for the same inputs.
func ValidateField(field Field, value any) string {
	if field.Required {
		if field.Type == FieldCheckbox {
			if collectionLen(value) == 0 {
				return MsgRequired
			}
		} else if isBlank(value) {
			return MsgRequired
		}
	}

	if isBlank(value) {
		return ""
	}

	switch field.Type {
	case FieldEmail:
		if !emailPattern.MatchString(coerceString(value)) {
			return MsgInvalidEmail
		}
	case FieldNumber:
		n, ok := toNumber(value)
		if !ok {
			return MsgInvalidNumber
		}
		if field.Validation != nil {
			if min, ok := toNumber(field.Validation.Min); ok && n < min {
				return fmt.Sprintf("Minimum value is %s", formatNumber(min))
			}
			if max, ok := toNumber(field.Validation.Max); ok && n > max {
				return fmt.Sprintf("Maximum value is %s", formatNumber(max))
			}
		}
	}

	return ""
}

// ValidateForm runs ValidateField for every field against the corresponding
// entry in values and returns a message per failing field id. An empty map
// means the whole form is valid. All failures are reported, not just the
// first, so a renderer can show every error at once.
func ValidateForm(fields []Field, values map[string]any) map[string]string {
	errs := map[string]string{}
	for _, field := range fields {
		var value any
		if values != nil {
			value = values[field.ID]
		}
		if msg := ValidateField(field, value); msg != "" {
			errs[field.ID] = msg
		}
	}
	return errs
}

// isBlank reports whether a value counts as "no answer": nil, or blank once
// coerced to a string. Collections are blank only when empty.
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case bool:
		return !v
	default:
		return strings.TrimSpace(coerceString(value)) == ""
	}
}

// collectionLen returns the element count for array-shaped values and 0 for
// everything else, which makes non-arrays fail a required checkbox group.
func collectionLen(value any) int {
	switch v := value.(type) {
	case []any:
		return len(v)
	case []string:
		return len(v)
	}
	return 0
}

// coerceString renders scalars the way JSON consumers display them. Anything
// non-scalar comes back empty and is ignored by the callers.
func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// toNumber coerces a submitted value or a declared bound to a float. Strings
// are trimmed and parsed; anything else that is not already numeric is
// reported as not-a-number and the caller ignores it.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
