package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data any `json:"data"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
}

// ValidationErrorResponse carries the per-field error map produced when a
// public submission fails server-side validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type ExportResponse struct {
	Object string `json:"object"`
	URL    string `json:"url"`
}

type EmbedResponse struct {
	FormID uint   `json:"form_id"`
	URL    string `json:"url"`
	Code   string `json:"code"`
}
