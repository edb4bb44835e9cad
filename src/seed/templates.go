package seed

import (
	"errors"
	"os"

	"github.com/formpilot/formpilot/src/forms"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

// FieldTemplate is one field archetype in the demo catalog. Field ids are
// generated at instantiation time so every seeded form gets fresh ids.
type FieldTemplate struct {
	Type        string   `yaml:"type"`
	Label       string   `yaml:"label"`
	Placeholder string   `yaml:"placeholder"`
	Required    bool     `yaml:"required"`
	Options     []string `yaml:"options"`
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
}

type FormTemplate struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Fields      []FieldTemplate `yaml:"fields"`
}

type Catalog struct {
	Forms []FormTemplate `yaml:"forms"`
}

func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, err
	}
	if len(catalog.Forms) == 0 {
		return nil, errors.New("seed catalog contains no form templates")
	}
	return &catalog, nil
}

func (t FieldTemplate) ToField() forms.Field {
	field := forms.Field{
		ID:          uuid.NewString(),
		Type:        forms.FieldType(t.Type),
		Label:       t.Label,
		Placeholder: t.Placeholder,
		Required:    t.Required,
		Options:     t.Options,
	}
	if t.Min != nil || t.Max != nil {
		bounds := &forms.Bounds{}
		if t.Min != nil {
			bounds.Min = *t.Min
		}
		if t.Max != nil {
			bounds.Max = *t.Max
		}
		field.Validation = bounds
	}
	return field
}

func (t FormTemplate) ToFields() []forms.Field {
	fields := make([]forms.Field, 0, len(t.Fields))
	for _, ft := range t.Fields {
		fields = append(fields, ft.ToField())
	}
	return fields
}
