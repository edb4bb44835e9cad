package handlers

import (
	"net/http"

	"github.com/formpilot/formpilot/src/response"
	"github.com/formpilot/formpilot/src/services"
	"github.com/formpilot/formpilot/src/utils"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// ExportSubmissions godoc
// @Summary Export a form's submissions as CSV
// @Tags submissions
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.ExportResponse "Presigned download link"
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/export [post]
func (h *ExportHandler) ExportSubmissions(c *gin.Context) {
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

	result, err := h.service.ExportCSV(c.Request.Context(), userID, id)
	if err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ExportResponse{Object: result.Object, URL: result.URL})
}
