package services

import (
	"errors"
	"fmt"

	"github.com/formpilot/formpilot/src/config"
	"github.com/formpilot/formpilot/src/dto"
	"github.com/formpilot/formpilot/src/models"
	"github.com/formpilot/formpilot/src/repositories"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound = errors.New("form not found")
	ErrNotOwner     = errors.New("access denied")
)

type FormService struct {
	repo        repositories.FormRepo
	submissions repositories.SubmissionRepo
}

func NewFormService(repo repositories.FormRepo, submissionRepo repositories.SubmissionRepo) *FormService {
	return &FormService{repo: repo, submissions: submissionRepo}
}

// FormListItem is the dashboard list entry: form metadata plus its response
// count, newest first.
type FormListItem struct {
	models.Form
	SubmissionCount int64 `json:"submission_count"`
}

func (s *FormService) CreateForm(userID uint, input dto.CreateFormDTO) (*models.Form, error) {
	form := &models.Form{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		IsActive:    true,
	}
	if err := form.SetFieldDefs(input.Fields); err != nil {
		return nil, err
	}
	return form, s.repo.Create(form)
}

func (s *FormService) GetUserForms(userID uint) ([]FormListItem, error) {
	forms, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(forms))
	for _, f := range forms {
		ids = append(ids, f.ID)
	}
	counts, err := s.repo.SubmissionCounts(ids)
	if err != nil {
		return nil, err
	}

	items := make([]FormListItem, 0, len(forms))
	for _, f := range forms {
		items = append(items, FormListItem{Form: f, SubmissionCount: counts[f.ID]})
	}
	return items, nil
}

// GetOwnedForm returns the form only to its owner.
func (s *FormService) GetOwnedForm(userID, formID uint) (models.Form, error) {
	form, err := s.repo.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return form, ErrFormNotFound
		}
		return form, err
	}
	if form.UserID != userID {
		return form, ErrNotOwner
	}
	return form, nil
}

// FormDetail is the builder's single-form view: the schema plus every
// response collected so far.
type FormDetail struct {
	models.Form
	Submissions []models.Submission `json:"submissions"`
}

// GetFormDetail returns the form together with its submissions, owner only.
func (s *FormService) GetFormDetail(userID, formID uint) (*FormDetail, error) {
	form, err := s.GetOwnedForm(userID, formID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissions.FindByFormID(formID)
	if err != nil {
		return nil, err
	}
	return &FormDetail{Form: form, Submissions: submissions}, nil
}

// UpdateForm replaces title, description and the whole field array.
func (s *FormService) UpdateForm(userID, formID uint, input dto.UpdateFormDTO) (*models.Form, error) {
	form, err := s.GetOwnedForm(userID, formID)
	if err != nil {
		return nil, err
	}

	form.Title = input.Title
	form.Description = input.Description
	if err := form.SetFieldDefs(input.Fields); err != nil {
		return nil, err
	}
	return &form, s.repo.Update(&form)
}

// SetActive toggles the publish gate independently of field edits.
func (s *FormService) SetActive(userID, formID uint, isActive bool) (*models.Form, error) {
	form, err := s.GetOwnedForm(userID, formID)
	if err != nil {
		return nil, err
	}
	form.IsActive = isActive
	return &form, s.repo.Update(&form)
}

// DeleteForm removes the form together with all its submissions.
func (s *FormService) DeleteForm(userID, formID uint) error {
	if _, err := s.GetOwnedForm(userID, formID); err != nil {
		return err
	}
	return s.repo.DeleteWithSubmissions(formID)
}

// EmbedCode returns the iframe snippet for placing the public form on an
// external site.
func (s *FormService) EmbedCode(userID, formID uint) (string, string, error) {
	if _, err := s.GetOwnedForm(userID, formID); err != nil {
		return "", "", err
	}
	url := fmt.Sprintf("%s/form/%d", config.PublicBaseURL, formID)
	code := fmt.Sprintf(`<iframe src="%s" width="100%%" height="600" frameborder="0"></iframe>`, url)
	return url, code, nil
}
