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

type FormHandler struct {
	service *services.FormService
}

func NewFormHandler(service *services.FormService) *FormHandler {
	return &FormHandler{service: service}
}

func formError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Access denied"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Param input body dto.CreateFormDTO true "Form schema"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := h.service.CreateForm(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: form})
}

// GetMyForms godoc
// @Summary List own forms with submission counts
// @Tags forms
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /forms [get]
func (h *FormHandler) GetMyForms(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.service.GetUserForms(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: items})
}

// GetForm godoc
// @Summary Get one of your forms with its submissions
// @Tags forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
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

	detail, err := h.service.GetFormDetail(userID, id)
	if err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: detail})
}

// UpdateForm godoc
// @Summary Update a form schema
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body dto.UpdateFormDTO true "Full replacement schema"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := h.service.UpdateForm(userID, id, input)
	if err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: form})
}

// SetActive godoc
// @Summary Toggle the publish gate
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body dto.SetActiveDTO true "Active flag"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/active [patch]
func (h *FormHandler) SetActive(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.SetActiveDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := h.service.SetActive(userID, id, *input.IsActive)
	if err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: form})
}

// DeleteForm godoc
// @Summary Delete a form and all its submissions
// @Tags forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
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

	if err := h.service.DeleteForm(userID, id); err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted successfully"})
}

// EmbedCode godoc
// @Summary Get the iframe embed snippet for a form
// @Tags forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.EmbedResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/embed [get]
func (h *FormHandler) EmbedCode(c *gin.Context) {
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

	url, code, err := h.service.EmbedCode(userID, id)
	if err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.EmbedResponse{FormID: id, URL: url, Code: code})
}
