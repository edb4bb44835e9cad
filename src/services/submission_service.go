package services

import (
	"encoding/json"
	"errors"

	"github.com/formpilot/formpilot/src/feed"
	"github.com/formpilot/formpilot/src/forms"
	"github.com/formpilot/formpilot/src/models"
	"github.com/formpilot/formpilot/src/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrFormInactive = errors.New("form not available")

// ErrValidationFailed carries the per-field error map back to the handler so
// the renderer can show every failing field at once.
type ErrValidationFailed struct {
	Fields map[string]string
}

func (e *ErrValidationFailed) Error() string {
	return "submission failed validation"
}

type SubmissionService struct {
	forms       repositories.FormRepo
	submissions repositories.SubmissionRepo
	hub         *feed.Hub
}

func NewSubmissionService(formRepo repositories.FormRepo, submissionRepo repositories.SubmissionRepo, hub *feed.Hub) *SubmissionService {
	return &SubmissionService{forms: formRepo, submissions: submissionRepo, hub: hub}
}

// PublicForm returns the schema a respondent may see: active forms only,
// never including stored submissions.
func (s *SubmissionService) PublicForm(formID uint) (models.Form, error) {
	form, err := s.forms.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return form, ErrFormNotFound
		}
		return form, err
	}
	if !form.IsActive {
		return form, ErrFormInactive
	}
	return form, nil
}

// Create validates the payload against the form's schema and stores it.
// Inactive forms reject submissions. On success, watchers of the form get a
// live-feed event.
func (s *SubmissionService) Create(formID uint, data map[string]any) (*models.Submission, error) {
	form, err := s.forms.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if !form.IsActive {
		return nil, ErrFormInactive
	}

	if errs := forms.ValidateForm(form.FieldDefs(), data); len(errs) > 0 {
		return nil, &ErrValidationFailed{Fields: errs}
	}

	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	submission := &models.Submission{
		FormID: formID,
		Data:   datatypes.JSON(raw),
	}
	if err := s.submissions.Create(submission); err != nil {
		return nil, err
	}

	s.broadcast(submission)
	return submission, nil
}

func (s *SubmissionService) ListForOwner(userID, formID uint) ([]models.Submission, error) {
	form, err := s.forms.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.UserID != userID {
		return nil, ErrNotOwner
	}
	return s.submissions.FindByFormID(formID)
}

func (s *SubmissionService) broadcast(submission *models.Submission) {
	if s.hub == nil {
		return
	}
	event, err := json.Marshal(map[string]any{
		"submission_id": submission.ID,
		"created_at":    submission.CreatedAt,
	})
	if err != nil {
		return
	}
	s.hub.Broadcast(submission.FormID, event)
}
