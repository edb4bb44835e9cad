package models

import (
	"encoding/json"
	"strconv"

	"github.com/formpilot/formpilot/src/forms"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission is one respondent's answers, keyed by field id. Created once on
// public submit and never mutated; deleted only when its form is deleted.
type Submission struct {
	gorm.Model
	FormID uint           `json:"form_id" gorm:"index"`
	Data   datatypes.JSON `json:"data"`
	Form   Form           `json:"-" gorm:"foreignKey:FormID"`
}

// DataMap decodes the raw answer payload. Unreadable payloads come back nil,
// which the analytics engine treats as "no response" for every field.
func (s *Submission) DataMap() map[string]any {
	if len(s.Data) == 0 {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal(s.Data, &data); err != nil {
		return nil
	}
	return data
}

// AsAnalytics converts stored rows into the shape the aggregation engine
// consumes.
func AsAnalytics(submissions []Submission) []forms.Submission {
	out := make([]forms.Submission, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, forms.Submission{
			ID:        strconv.FormatUint(uint64(s.ID), 10),
			Data:      s.DataMap(),
			CreatedAt: s.CreatedAt,
		})
	}
	return out
}

// FormSubmissionCount backs the dashboard list view that shows each form with
// its response count.
type FormSubmissionCount struct {
	FormID uint  `json:"form_id"`
	Count  int64 `json:"count"`
}

func (FormSubmissionCount) TableName() string {
	return "form_submission_counts"
}
