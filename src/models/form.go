package models

import (
	"encoding/json"

	"github.com/formpilot/formpilot/src/forms"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Form stores the schema authored in the builder. Fields is the ordered
// field-definition array as JSONB; edits replace the whole array rather than
// patching individual entries.
type Form struct {
	gorm.Model
	UserID      uint           `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	Fields      datatypes.JSON `json:"fields"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// FieldDefs decodes the stored schema. A form saved before any field was
// added decodes to an empty slice rather than failing.
func (f *Form) FieldDefs() []forms.Field {
	var defs []forms.Field
	if len(f.Fields) == 0 {
		return defs
	}
	if err := json.Unmarshal(f.Fields, &defs); err != nil {
		return nil
	}
	return defs
}

// SetFieldDefs encodes the field array into the JSONB column.
func (f *Form) SetFieldDefs(defs []forms.Field) error {
	if defs == nil {
		defs = []forms.Field{}
	}
	raw, err := json.Marshal(defs)
	if err != nil {
		return err
	}
	f.Fields = datatypes.JSON(raw)
	return nil
}
