package services

import (
	"github.com/formpilot/formpilot/src/feed"
	"github.com/formpilot/formpilot/src/repositories"
)

type Services struct {
	User       *UserService
	Form       *FormService
	Submission *SubmissionService
	Analytics  *AnalyticsService
	Export     *ExportService
	Seed       *SeedService
	Hub        *feed.Hub
}

func New(repos *repositories.Repos) *Services {
	hub := feed.NewHub()
	return &Services{
		User:       NewUserService(repos.User),
		Form:       NewFormService(repos.Form, repos.Submission),
		Submission: NewSubmissionService(repos.Form, repos.Submission, hub),
		Analytics:  NewAnalyticsService(repos.Form, repos.Submission),
		Export:     NewExportService(repos.Form, repos.Submission),
		Seed:       NewSeedService(repos.User, repos.Form, repos.Submission),
		Hub:        hub,
	}
}
