package handlers

import (
	"net/http"

	"github.com/formpilot/formpilot/src/response"
	"github.com/formpilot/formpilot/src/services"
	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	service *services.SeedService
}

func NewSeedHandler(service *services.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// Seed godoc
// @Summary Create demo forms and randomized submissions
// @Tags admin
// @Produce json
// @Success 201 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.service.Run()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: result})
}
