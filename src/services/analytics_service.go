package services

import (
	"errors"
	"time"

	"github.com/formpilot/formpilot/src/forms"
	"github.com/formpilot/formpilot/src/models"
	"github.com/formpilot/formpilot/src/repositories"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	forms       repositories.FormRepo
	submissions repositories.SubmissionRepo
}

func NewAnalyticsService(formRepo repositories.FormRepo, submissionRepo repositories.SubmissionRepo) *AnalyticsService {
	return &AnalyticsService{forms: formRepo, submissions: submissionRepo}
}

// FormAnalytics is the full analytics payload for one form.
type FormAnalytics struct {
	Summary       forms.Summary             `json:"summary"`
	TimeSeries    []forms.TimeSeriesPoint   `json:"time_series"`
	Distributions []forms.FieldDistribution `json:"distributions"`
}

// ForForm loads the form and its submissions and runs the aggregation
// engine. Only the owner may see analytics.
func (s *AnalyticsService) ForForm(userID, formID uint, now time.Time) (*FormAnalytics, error) {
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

	stored, err := s.submissions.FindByFormID(formID)
	if err != nil {
		return nil, err
	}

	subs := models.AsAnalytics(stored)
	fields := form.FieldDefs()

	return &FormAnalytics{
		Summary:       forms.ComputeSummary(subs, now),
		TimeSeries:    forms.ComputeTimeSeries(subs),
		Distributions: forms.ComputeFieldDistributions(fields, subs),
	}, nil
}
