package handlers

import (
	"errors"
	"net/http"

	"github.com/formpilot/formpilot/src/dto"
	"github.com/formpilot/formpilot/src/response"
	"github.com/formpilot/formpilot/src/services"
	"github.com/formpilot/formpilot/src/utils"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	service *services.SubmissionService
}

func NewSubmissionHandler(service *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// GetPublicForm godoc
// @Summary Fetch an active form for public rendering
// @Tags public
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Form not available"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /public/forms/{id} [get]
func (h *SubmissionHandler) GetPublicForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	form, err := h.service.PublicForm(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFormNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		case errors.Is(err, services.ErrFormInactive):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Form not available"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: form})
}

// CreateSubmission godoc
// @Summary Submit answers to a public form
// @Tags public
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body dto.CreateSubmissionDTO true "Answers keyed by field id"
// @Success 201 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Form not available"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 422 {object} response.ValidationErrorResponse "Validation failed"
// @Router /public/forms/{id}/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.CreateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	submission, err := h.service.Create(id, input.Data)
	if err != nil {
		var vErr *services.ErrValidationFailed
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, response.ValidationErrorResponse{
				Error:  "Validation failed",
				Fields: vErr.Fields,
			})
		case errors.Is(err, services.ErrFormNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		case errors.Is(err, services.ErrFormInactive):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Form not available"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: submission})
}

// ListSubmissions godoc
// @Summary List a form's submissions (owner only)
// @Tags submissions
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	submissions, err := h.service.ListForOwner(userID, id)
	if err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: submissions})
}
