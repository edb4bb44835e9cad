package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/formpilot/formpilot/src/export"
	"github.com/formpilot/formpilot/src/minio"
	"github.com/formpilot/formpilot/src/models"
	"github.com/formpilot/formpilot/src/repositories"
	minioSDK "github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

type ExportService struct {
	forms       repositories.FormRepo
	submissions repositories.SubmissionRepo
}

func NewExportService(formRepo repositories.FormRepo, submissionRepo repositories.SubmissionRepo) *ExportService {
	return &ExportService{forms: formRepo, submissions: submissionRepo}
}

type ExportResult struct {
	Object string
	URL    string
}

// ExportCSV renders a form's submissions to CSV, stores the file in object
// storage and returns a presigned download link valid for 24 hours.
func (s *ExportService) ExportCSV(ctx context.Context, userID, formID uint) (*ExportResult, error) {
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

	csv, err := export.BuildCSV(form.FieldDefs(), models.AsAnalytics(stored))
	if err != nil {
		return nil, err
	}

	object := fmt.Sprintf("forms/%d/submissions-%d.csv", formID, time.Now().Unix())
	_, err = minio.Client.PutObject(ctx, minio.BucketName, object,
		strings.NewReader(csv), int64(len(csv)),
		minioSDK.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return nil, err
	}

	reqParams := url.Values{}
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, slug(form.Title)))
	presigned, err := minio.Client.PresignedGetObject(ctx, minio.BucketName, object, 24*time.Hour, reqParams)
	if err != nil {
		return nil, err
	}

	return &ExportResult{Object: object, URL: presigned.String()}, nil
}

func slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.Join(strings.Fields(s), "-")
	if s == "" {
		return "form"
	}
	return s
}
