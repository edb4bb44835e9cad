package handlers

import (
	"net/http"
	"time"

	"github.com/formpilot/formpilot/src/response"
	"github.com/formpilot/formpilot/src/services"
	"github.com/formpilot/formpilot/src/utils"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service *services.AnalyticsService
}

func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetFormAnalytics godoc
// @Summary Summary counters, time series and option distributions for a form
// @Tags analytics
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/analytics [get]
func (h *AnalyticsHandler) GetFormAnalytics(c *gin.Context) {
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

	analytics, err := h.service.ForForm(userID, id, time.Now())
	if err != nil {
		formError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: analytics})
}
