package services

import (
	"encoding/json"
	"errors"
	"math/rand"

	"github.com/formpilot/formpilot/src/config"
	"github.com/formpilot/formpilot/src/db"
	"github.com/formpilot/formpilot/src/models"
	"github.com/formpilot/formpilot/src/repositories"
	"github.com/formpilot/formpilot/src/seed"
	"github.com/formpilot/formpilot/src/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	demoUsername = "demo"
	demoPassword = "demo-password"
)

type SeedService struct {
	users       repositories.UserRepo
	forms       repositories.FormRepo
	submissions repositories.SubmissionRepo
}

func NewSeedService(userRepo repositories.UserRepo, formRepo repositories.FormRepo, submissionRepo repositories.SubmissionRepo) *SeedService {
	return &SeedService{users: userRepo, forms: formRepo, submissions: submissionRepo}
}

type SeedResult struct {
	Username    string `json:"username"`
	Forms       int    `json:"forms"`
	Submissions int    `json:"submissions"`
}

// Run creates the demo user, one form per catalog template and a randomized
// batch of valid submissions spread over the last 30 days.
func (s *SeedService) Run() (*SeedResult, error) {
	catalog, err := seed.LoadCatalog(config.SeedTemplatePath)
	if err != nil {
		return nil, err
	}

	user, err := s.demoUser()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(rand.Int63()))
	result := &SeedResult{Username: user.Username}

	for _, template := range catalog.Forms {
		fields := template.ToFields()

		form := &models.Form{
			UserID:      user.ID,
			Title:       template.Title,
			Description: template.Description,
			IsActive:    true,
		}
		if err := form.SetFieldDefs(fields); err != nil {
			return nil, err
		}
		if err := s.forms.Create(form); err != nil {
			return nil, err
		}
		result.Forms++

		count := 10 + rng.Intn(40)
		for i := 0; i < count; i++ {
			raw, err := json.Marshal(seed.GenerateAnswers(fields, rng))
			if err != nil {
				return nil, err
			}
			submission := &models.Submission{FormID: form.ID, Data: datatypes.JSON(raw)}
			if err := s.submissions.Create(submission); err != nil {
				return nil, err
			}
			// Backdate directly; CreatedAt is set by gorm on insert.
			createdAt := seed.RandomCreatedAt(submission.CreatedAt, rng)
			if err := db.DB.Model(submission).UpdateColumn("created_at", createdAt).Error; err != nil {
				return nil, err
			}
			result.Submissions++
		}
	}

	return result, nil
}

func (s *SeedService) demoUser() (models.User, error) {
	user, err := s.users.FindByUsername(demoUsername)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	hashed, err := utils.HashPassword(demoPassword)
	if err != nil {
		return user, err
	}
	user = models.User{Username: demoUsername, Password: hashed}
	return user, s.users.Create(&user)
}
