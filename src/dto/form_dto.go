package dto

import "github.com/formpilot/formpilot/src/forms"

type CreateFormDTO struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Fields      []forms.Field `json:"fields"`
}

// UpdateFormDTO replaces the whole field array; the builder always sends the
// complete schema rather than patches.
type UpdateFormDTO struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Fields      []forms.Field `json:"fields"`
}

type SetActiveDTO struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
