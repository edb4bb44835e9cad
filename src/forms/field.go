package forms

// FieldType is the closed set of input kinds a form can contain. Validation
// and aggregation both dispatch on it, so adding a type means touching both.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
)

// Bounds holds optional numeric limits for number fields. The values are kept
// untyped because schemas arrive as JSON from the builder; anything that does
// not coerce to a number is treated as an absent bound.
type Bounds struct {
	Min any `json:"min,omitempty"`
	Max any `json:"max,omitempty"`
}

// Field describes one form input. Options only matter for select, radio and
// checkbox fields; Validation only matters for number fields. Consumers must
// tolerate both being absent.
type Field struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Validation  *Bounds   `json:"validation,omitempty"`
}

// DisplayLabel returns the label, falling back to the builder placeholder for
// unlabeled fields.
func (f Field) DisplayLabel() string {
	if f.Label == "" {
		return "New Field"
	}
	return f.Label
}

// HasOptions reports whether the field is a choice-type field with at least
// one declared option, which is what qualifies it for a distribution chart.
func (f Field) HasOptions() bool {
	switch f.Type {
	case FieldSelect, FieldRadio, FieldCheckbox:
		return len(f.Options) > 0
	}
	return false
}

// FieldByID looks a field up by id. Duplicate ids are tolerated and the last
// match wins, matching the lookup behavior the builder relies on.
func FieldByID(fields []Field, id string) (Field, bool) {
	var found Field
	ok := false
	for _, f := range fields {
		if f.ID == id {
			found = f
			ok = true
		}
	}
	return found, ok
}

// Schema is an ordered field list plus form-level metadata. Field order is
// significant: it drives both the builder list and public rendering.
type Schema struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsActive    bool    `json:"isActive"`
	Fields      []Field `json:"fields"`
}
