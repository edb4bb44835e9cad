package dto

type CreateSubmissionDTO struct {
	Data map[string]any `json:"data"`
}
