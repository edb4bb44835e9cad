package repositories

import (
	"github.com/formpilot/formpilot/src/db"
	"github.com/formpilot/formpilot/src/models"
)

//go:generate mockgen -source=submission_repository.go -destination=mock_repositories/mock_submission_repository.go -package=mock_repositories

type SubmissionRepo interface {
	Create(submission *models.Submission) error
	FindByFormID(formID uint) ([]models.Submission, error)
	CountByFormID(formID uint) (int64, error)
}

type DBSubmissionRepo struct{}

func (r *DBSubmissionRepo) Create(submission *models.Submission) error {
	return db.DB.Create(submission).Error
}

func (r *DBSubmissionRepo) FindByFormID(formID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.DB.Where("form_id = ?", formID).Order("created_at desc").Find(&submissions).Error
	return submissions, err
}

func (r *DBSubmissionRepo) CountByFormID(formID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Submission{}).Where("form_id = ?", formID).Count(&count).Error
	return count, err
}
