package services_test

import (
	"errors"
	"testing"

	"github.com/formpilot/formpilot/src/config"
	"github.com/formpilot/formpilot/src/dto"
	"github.com/formpilot/formpilot/src/forms"
	"github.com/formpilot/formpilot/src/models"
	"github.com/formpilot/formpilot/src/repositories/mock_repositories"
	"github.com/formpilot/formpilot/src/services"
	"github.com/golang/mock/gomock"
	"gorm.io/gorm"
)

func setupFormMocks(t *testing.T) (*services.FormService, *mock_repositories.MockFormRepo, *mock_repositories.MockSubmissionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockSubmission := mock_repositories.NewMockSubmissionRepo(ctrl)
	svc := services.NewFormService(mockForm, mockSubmission)
	return svc, mockForm, mockSubmission
}

func ownedForm(id, userID uint) models.Form {
	form := models.Form{UserID: userID, Title: "Survey"}
	form.ID = id
	return form
}

func TestFormServiceCRUD(t *testing.T) {
	svc, mockForm, mockSubmission := setupFormMocks(t)

	t.Run("CreateForm success", func(t *testing.T) {
		input := dto.CreateFormDTO{
			Title: "Survey",
			Fields: []forms.Field{
				{ID: "f1", Type: forms.FieldText, Label: "Name"},
			},
		}

		mockForm.EXPECT().Create(gomock.Any()).Return(nil)

		form, err := svc.CreateForm(1, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.Title != "Survey" {
			t.Fatalf("expected Survey, got %s", form.Title)
		}
		if !form.IsActive {
			t.Fatal("new forms should start active")
		}
		defs := form.FieldDefs()
		if len(defs) != 1 || defs[0].Label != "Name" {
			t.Fatalf("field defs not stored: %+v", defs)
		}
	})

	t.Run("GetUserForms attaches counts", func(t *testing.T) {
		stored := []models.Form{ownedForm(1, 1), ownedForm(2, 1)}
		mockForm.EXPECT().FindByUserID(uint(1)).Return(stored, nil)
		mockForm.EXPECT().SubmissionCounts([]uint{1, 2}).Return(map[uint]int64{1: 5}, nil)

		items, err := svc.GetUserForms(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].SubmissionCount != 5 || items[1].SubmissionCount != 0 {
			t.Fatalf("counts wrong: %+v", items)
		}
	})

	t.Run("GetFormDetail includes submissions", func(t *testing.T) {
		sub := models.Submission{FormID: 1}
		sub.ID = 10
		mockForm.EXPECT().FindByID(uint(1)).Return(ownedForm(1, 1), nil)
		mockSubmission.EXPECT().FindByFormID(uint(1)).Return([]models.Submission{sub}, nil)

		detail, err := svc.GetFormDetail(1, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detail.Submissions) != 1 || detail.Submissions[0].ID != 10 {
			t.Fatalf("submissions not attached: %+v", detail.Submissions)
		}
	})

	t.Run("GetFormDetail rejects non-owner", func(t *testing.T) {
		mockForm.EXPECT().FindByID(uint(1)).Return(ownedForm(1, 2), nil)

		if _, err := svc.GetFormDetail(1, 1); !errors.Is(err, services.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("UpdateForm replaces field array", func(t *testing.T) {
		mockForm.EXPECT().FindByID(uint(1)).Return(ownedForm(1, 1), nil)
		mockForm.EXPECT().Update(gomock.Any()).Return(nil)

		input := dto.UpdateFormDTO{
			Title:  "Renamed",
			Fields: []forms.Field{{ID: "f2", Type: forms.FieldEmail, Label: "Email"}},
		}
		form, err := svc.UpdateForm(1, 1, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.Title != "Renamed" {
			t.Fatalf("expected Renamed, got %s", form.Title)
		}
		defs := form.FieldDefs()
		if len(defs) != 1 || defs[0].ID != "f2" {
			t.Fatalf("field array not replaced: %+v", defs)
		}
	})

	t.Run("UpdateForm rejects non-owner", func(t *testing.T) {
		mockForm.EXPECT().FindByID(uint(1)).Return(ownedForm(1, 2), nil)

		_, err := svc.UpdateForm(1, 1, dto.UpdateFormDTO{Title: "x"})
		if !errors.Is(err, services.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("UpdateForm not found", func(t *testing.T) {
		mockForm.EXPECT().FindByID(uint(99)).Return(models.Form{}, gorm.ErrRecordNotFound)

		_, err := svc.UpdateForm(1, 99, dto.UpdateFormDTO{Title: "x"})
		if !errors.Is(err, services.ErrFormNotFound) {
			t.Fatalf("expected ErrFormNotFound, got %v", err)
		}
	})

	t.Run("SetActive toggles gate", func(t *testing.T) {
		mockForm.EXPECT().FindByID(uint(1)).Return(ownedForm(1, 1), nil)
		mockForm.EXPECT().Update(gomock.Any()).Return(nil)

		form, err := svc.SetActive(1, 1, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.IsActive {
			t.Fatal("expected form to be inactive")
		}
	})

	t.Run("DeleteForm cascades", func(t *testing.T) {
		mockForm.EXPECT().FindByID(uint(1)).Return(ownedForm(1, 1), nil)
		mockForm.EXPECT().DeleteWithSubmissions(uint(1)).Return(nil)

		if err := svc.DeleteForm(1, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteForm rejects non-owner before touching data", func(t *testing.T) {
		mockForm.EXPECT().FindByID(uint(1)).Return(ownedForm(1, 2), nil)

		if err := svc.DeleteForm(1, 1); !errors.Is(err, services.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})
}

func TestFormServiceEmbedCode(t *testing.T) {
	svc, mockForm, _ := setupFormMocks(t)
	config.PublicBaseURL = "https://forms.example.com"

	mockForm.EXPECT().FindByID(uint(7)).Return(ownedForm(7, 1), nil)

	url, code, err := svc.EmbedCode(1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://forms.example.com/form/7" {
		t.Fatalf("unexpected url: %s", url)
	}
	if code != `<iframe src="https://forms.example.com/form/7" width="100%" height="600" frameborder="0"></iframe>` {
		t.Fatalf("unexpected embed code: %s", code)
	}
}
