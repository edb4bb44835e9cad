package forms_test

import (
	"testing"

	"github.com/formpilot/formpilot/src/forms"
	"github.com/stretchr/testify/assert"
)

func TestValidateFieldRequired(t *testing.T) {
	field := forms.Field{ID: "name", Type: forms.FieldText, Required: true}

	assert.Equal(t, forms.MsgRequired, forms.ValidateField(field, nil))
	assert.Equal(t, forms.MsgRequired, forms.ValidateField(field, ""))
	assert.Equal(t, forms.MsgRequired, forms.ValidateField(field, "   "))
	assert.Empty(t, forms.ValidateField(field, "Jane"))

	optional := forms.Field{ID: "name", Type: forms.FieldText}
	assert.Empty(t, forms.ValidateField(optional, nil))
	assert.Empty(t, forms.ValidateField(optional, ""))
}

func TestValidateFieldRequiredCheckboxGroup(t *testing.T) {
	field := forms.Field{
		ID:       "topics",
		Type:     forms.FieldCheckbox,
		Required: true,
		Options:  []string{"Go", "SQL"},
	}

	assert.Equal(t, forms.MsgRequired, forms.ValidateField(field, nil))
	assert.Equal(t, forms.MsgRequired, forms.ValidateField(field, []any{}))
	assert.Equal(t, forms.MsgRequired, forms.ValidateField(field, "Go"))
	assert.Empty(t, forms.ValidateField(field, []any{"Go"}))
	assert.Empty(t, forms.ValidateField(field, []string{"Go", "SQL"}))
}

func TestValidateFieldEmail(t *testing.T) {
	field := forms.Field{ID: "email", Type: forms.FieldEmail, Required: true}

	assert.Equal(t, forms.MsgRequired, forms.ValidateField(field, ""))
	assert.Equal(t, forms.MsgInvalidEmail, forms.ValidateField(field, "not-an-email"))
	assert.Equal(t, forms.MsgInvalidEmail, forms.ValidateField(field, "a b@c.com"))
	assert.Equal(t, forms.MsgInvalidEmail, forms.ValidateField(field, "a@b"))
	assert.Empty(t, forms.ValidateField(field, "a@b.com"))

	// Optional email fields still reject malformed values once non-empty.
	optional := forms.Field{ID: "email", Type: forms.FieldEmail}
	assert.Empty(t, forms.ValidateField(optional, ""))
	assert.Equal(t, forms.MsgInvalidEmail, forms.ValidateField(optional, "nope"))
}

func TestValidateFieldNumber(t *testing.T) {
	field := forms.Field{
		ID:         "age",
		Type:       forms.FieldNumber,
		Validation: &forms.Bounds{Min: float64(0), Max: float64(100)},
	}

	assert.Equal(t, forms.MsgInvalidNumber, forms.ValidateField(field, "abc"))
	assert.Equal(t, "Maximum value is 100", forms.ValidateField(field, "150"))
	assert.Equal(t, "Minimum value is 0", forms.ValidateField(field, "-3"))
	assert.Empty(t, forms.ValidateField(field, "50"))
	assert.Empty(t, forms.ValidateField(field, float64(50)))
	assert.Empty(t, forms.ValidateField(field, "0"))
	assert.Empty(t, forms.ValidateField(field, "100"))
}

func TestValidateFieldNumberMalformedBounds(t *testing.T) {
	// Bounds that do not coerce to numbers are treated as absent.
	field := forms.Field{
		ID:         "n",
		Type:       forms.FieldNumber,
		Validation: &forms.Bounds{Min: "abc", Max: map[string]any{}},
	}
	assert.Empty(t, forms.ValidateField(field, "12345"))

	// String-typed bounds from JSON payloads still apply when numeric.
	strBounds := forms.Field{
		ID:         "n",
		Type:       forms.FieldNumber,
		Validation: &forms.Bounds{Max: "10"},
	}
	assert.Equal(t, "Maximum value is 10", forms.ValidateField(strBounds, "11"))
}

func TestValidateFieldNoIntrinsicFormats(t *testing.T) {
	for _, ft := range []forms.FieldType{forms.FieldText, forms.FieldTextarea, forms.FieldDate, forms.FieldSelect, forms.FieldRadio} {
		field := forms.Field{ID: "f", Type: ft}
		assert.Empty(t, forms.ValidateField(field, "anything at all"), "type %s", ft)
	}
}

func TestValidateForm(t *testing.T) {
	fields := []forms.Field{
		{ID: "name", Type: forms.FieldText, Required: true},
		{ID: "email", Type: forms.FieldEmail, Required: true},
		{ID: "age", Type: forms.FieldNumber, Validation: &forms.Bounds{Max: float64(120)}},
	}

	errs := forms.ValidateForm(fields, map[string]any{
		"email": "bad",
		"age":   "200",
	})

	assert.Len(t, errs, 3)
	assert.Equal(t, forms.MsgRequired, errs["name"])
	assert.Equal(t, forms.MsgInvalidEmail, errs["email"])
	assert.Equal(t, "Maximum value is 120", errs["age"])

	ok := forms.ValidateForm(fields, map[string]any{
		"name":  "Jane",
		"email": "jane@example.com",
		"age":   "30",
	})
	assert.Empty(t, ok)
}

func TestValidateFormEmptyFieldsAndNilValues(t *testing.T) {
	assert.Empty(t, forms.ValidateForm(nil, nil))
	assert.Empty(t, forms.ValidateForm([]forms.Field{}, map[string]any{"x": 1}))

	fields := []forms.Field{{ID: "name", Type: forms.FieldText, Required: true}}
	errs := forms.ValidateForm(fields, nil)
	assert.Equal(t, forms.MsgRequired, errs["name"])
}

func TestValidateFormDeterministic(t *testing.T) {
	fields := []forms.Field{
		{ID: "email", Type: forms.FieldEmail, Required: true},
		{ID: "age", Type: forms.FieldNumber, Validation: &forms.Bounds{Min: float64(1)}},
	}
	values := map[string]any{"email": "oops", "age": "0"}

	first := forms.ValidateForm(fields, values)
	second := forms.ValidateForm(fields, values)
	assert.Equal(t, first, second)
}
