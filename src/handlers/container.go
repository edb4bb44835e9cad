package handlers

import (
	"github.com/formpilot/formpilot/src/services"
)

type Handlers struct {
	User       *UserHandler
	Form       *FormHandler
	Submission *SubmissionHandler
	Analytics  *AnalyticsHandler
	Export     *ExportHandler
	Seed       *SeedHandler
	Feed       *FeedHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Form:       NewFormHandler(svc.Form),
		Submission: NewSubmissionHandler(svc.Submission),
		Analytics:  NewAnalyticsHandler(svc.Analytics),
		Export:     NewExportHandler(svc.Export),
		Seed:       NewSeedHandler(svc.Seed),
		Feed:       NewFeedHandler(svc.Hub),
	}
}
